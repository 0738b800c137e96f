package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

const (
	MinUsernameLen = 3
	MaxUsernameLen = 24
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidUsername - 3-24 символа, только буквы, цифры, подчёркивания и дефисы
func ValidUsername(username string) bool {
	if len(username) < MinUsernameLen || len(username) > MaxUsernameLen {
		return false
	}
	return usernamePattern.MatchString(username)
}
