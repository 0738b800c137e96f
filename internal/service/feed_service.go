package service

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
)

// FeedService отдаёт приватные уведомления и публичную ленту активности
type FeedService struct {
	notifications NotificationRepository
	activity      ActivityRepository
	users         UserRepository
}

func NewFeedService(notifications NotificationRepository, activity ActivityRepository, users UserRepository) FeedService {
	return FeedService{
		notifications: notifications,
		activity:      activity,
		users:         users,
	}
}

func (s *FeedService) NotificationsFor(ctx context.Context, username string) ([]*models.Notification, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("пользователь", username)
		}
		return nil, fmt.Errorf("получение пользователя: %w", err)
	}

	notifications, err := s.notifications.ListNotificationsByReceiver(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("получение уведомлений: %w", err)
	}
	return notifications, nil
}

func (s *FeedService) ActivityFor(ctx context.Context, username string) ([]*models.Activity, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("пользователь", username)
		}
		return nil, fmt.Errorf("получение пользователя: %w", err)
	}

	entries, err := s.activity.ListActivityByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("получение активности: %w", err)
	}
	return entries, nil
}

func (s *FeedService) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	if err := s.notifications.MarkNotificationRead(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound("уведомление", id.String())
		}
		return fmt.Errorf("отметка уведомления: %w", err)
	}
	return nil
}
