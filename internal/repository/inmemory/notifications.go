package inmemory

import (
	"context"
	"sort"

	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
)

func (s *Storage) CreateNotification(ctx context.Context, notification *models.Notification) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.notifications[notification.ID] = notification
	return nil
}

func (s *Storage) ListNotificationsByReceiver(ctx context.Context, receiver uuid.UUID) ([]*models.Notification, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	notifications := []*models.Notification{}
	for _, n := range s.notifications {
		if n.Receiver == receiver {
			notifications = append(notifications, n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

// MarkNotificationRead - единственная разрешённая мутация уведомления
func (s *Storage) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	notification, ok := s.notifications[id]
	if !ok {
		return repo.ErrNotFound
	}
	notification.IsRead = true
	return nil
}
