package inmemory

import (
	"context"
	"sort"

	"taskboard/internal/models"

	"github.com/google/uuid"
)

func (s *Storage) CreateActivity(ctx context.Context, activity *models.Activity) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.activity[activity.ID] = activity
	return nil
}

func (s *Storage) ListActivityByUser(ctx context.Context, userID uuid.UUID) ([]*models.Activity, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	entries := []*models.Activity{}
	for _, a := range s.activity {
		if a.User == userID {
			entries = append(entries, a)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}
