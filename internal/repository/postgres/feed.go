package postgres

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/logger"
	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Storage) CreateNotification(ctx context.Context, notification *models.Notification) error {
	start := time.Now()
	defer warnIfSlow(start, "create_notification")

	query := `INSERT INTO notifications (id, receiver, message, is_read, type, location, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.pool.Exec(ctx, query,
		notification.ID,
		notification.Receiver,
		notification.Message,
		notification.IsRead,
		notification.Type,
		notification.Location,
		notification.CreatedAt,
	)
	if err != nil {
		logger.Error("Repository: Не удалось добавить уведомление", err)
		return fmt.Errorf("добавление уведомления: %w", err)
	}
	return nil
}

func (s *Storage) ListNotificationsByReceiver(ctx context.Context, receiver uuid.UUID) ([]*models.Notification, error) {
	start := time.Now()
	defer warnIfSlow(start, "list_notifications")

	query := `SELECT id, receiver, message, is_read, type, location, created_at
				FROM notifications
				WHERE receiver = $1
				ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, receiver)
	if err != nil {
		logger.Error("Repository: Не удалось получить уведомления", err)
		return nil, fmt.Errorf("получение уведомлений: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.Receiver,
			&n.Message,
			&n.IsRead,
			&n.Type,
			&n.Location,
			&n.CreatedAt,
		)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования уведомления", zap.Error(err))
			continue
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}
	return notifications, nil
}

func (s *Storage) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	defer warnIfSlow(start, "mark_notification_read")

	tag, err := s.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		logger.Error("Repository: Не удалось отметить уведомление", err)
		return fmt.Errorf("отметка уведомления: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (s *Storage) CreateActivity(ctx context.Context, activity *models.Activity) error {
	start := time.Now()
	defer warnIfSlow(start, "create_activity")

	query := `INSERT INTO activity (id, user_id, type, task, created_at)
				VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, query,
		activity.ID,
		activity.User,
		activity.Type,
		activity.Task,
		activity.CreatedAt,
	)
	if err != nil {
		logger.Error("Repository: Не удалось добавить запись активности", err)
		return fmt.Errorf("добавление записи активности: %w", err)
	}
	return nil
}

func (s *Storage) ListActivityByUser(ctx context.Context, userID uuid.UUID) ([]*models.Activity, error) {
	start := time.Now()
	defer warnIfSlow(start, "list_activity")

	query := `SELECT id, user_id, type, task, created_at
				FROM activity
				WHERE user_id = $1
				ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		logger.Error("Repository: Не удалось получить активность", err)
		return nil, fmt.Errorf("получение активности: %w", err)
	}
	defer rows.Close()

	entries := []*models.Activity{}
	for rows.Next() {
		a := &models.Activity{}
		err := rows.Scan(
			&a.ID,
			&a.User,
			&a.Type,
			&a.Task,
			&a.CreatedAt,
		)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования активности", zap.Error(err))
			continue
		}
		entries = append(entries, a)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}
	return entries, nil
}
