package derive

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/models"

	"github.com/google/uuid"
)

type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
}

type UserStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// NotificationDeriver создаёт уведомление автору задачи на каждый новый комментарий
type NotificationDeriver struct {
	notifications NotificationStore
	tasks         TaskStore
	users         UserStore
}

func NewNotificationDeriver(notifications NotificationStore, tasks TaskStore, users UserStore) *NotificationDeriver {
	return &NotificationDeriver{
		notifications: notifications,
		tasks:         tasks,
		users:         users,
	}
}

func (d *NotificationDeriver) Name() string {
	return "notifications"
}

func (d *NotificationDeriver) TaskSaved(ctx context.Context, ev TaskEvent) error {
	return nil
}

func (d *NotificationDeriver) CommentSaved(ctx context.Context, ev CommentEvent) error {
	task, err := d.tasks.GetTaskByID(ctx, ev.Comment.Task)
	if err != nil {
		return fmt.Errorf("загрузка задачи комментария: %w", err)
	}

	poster, err := d.users.GetUserByID(ctx, ev.Comment.Poster)
	if err != nil {
		return fmt.Errorf("загрузка автора комментария: %w", err)
	}

	message := poster.Username + " has posted a comment on your task: " + task.Summary

	// известный пробел: тип остаётся MSG и location пустой, поэтому
	// уведомления о комментариях не кликабельны на клиенте
	notification := &models.Notification{
		ID:        uuid.New(),
		Receiver:  task.Author,
		Message:   message,
		IsRead:    false,
		Type:      models.NotificationMessage,
		CreatedAt: time.Now(),
	}

	if err := d.notifications.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("создание уведомления: %w", err)
	}
	return nil
}
