package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity - публичная лента событий, в отличие от Notification видна всем
type Activity struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	User      uuid.UUID    `json:"user" db:"user_id"`
	Type      ActivityType `json:"type" db:"type"`
	Task      *uuid.UUID   `json:"task,omitempty" db:"task"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

type ActivityType string

const (
	ActivityNewTask          ActivityType = "NTSK"
	ActivityNewComment       ActivityType = "NCMT"
	ActivityTaskStatusChange ActivityType = "TKSC"
	ActivityUnknown          ActivityType = "UKWN"
)

var activityTypeLabels = map[ActivityType]string{
	ActivityNewTask:          "New Task",
	ActivityNewComment:       "New Comment",
	ActivityTaskStatusChange: "Task Status Change",
	ActivityUnknown:          "Unknown",
}

func (a ActivityType) Label() string {
	if label, ok := activityTypeLabels[a]; ok {
		return label
	}
	return string(a)
}
