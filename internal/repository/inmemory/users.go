package inmemory

import (
	"context"

	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
)

func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, exists := s.usernames[user.Username]; exists {
		return repo.ErrAlreadyExists
	}

	s.users[user.ID] = user
	s.usernames[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return s.users[id], nil
}
