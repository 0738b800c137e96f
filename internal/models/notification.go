package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	Receiver  uuid.UUID        `json:"receiver" db:"receiver"`
	Message   string           `json:"message" db:"message"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	Type      NotificationType `json:"type" db:"type"`
	Location  string           `json:"location" db:"location"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotificationMessage NotificationType = "MSG"
	NotificationTask    NotificationType = "TSK"
)

var notificationTypeLabels = map[NotificationType]string{
	NotificationMessage: "Message",
	NotificationTask:    "Task",
}

func (n NotificationType) Label() string {
	if label, ok := notificationTypeLabels[n]; ok {
		return label
	}
	return string(n)
}
