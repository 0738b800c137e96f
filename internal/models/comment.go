package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Poster    uuid.UUID `json:"poster" db:"poster"`
	Task      uuid.UUID `json:"task" db:"task"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const MaxCommentLen = 280
