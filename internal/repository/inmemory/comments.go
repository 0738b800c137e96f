package inmemory

import (
	"context"
	"sort"

	"taskboard/internal/models"

	"github.com/google/uuid"
)

func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.comments[comment.ID] = comment
	return nil
}

// ListComments - все комментарии, новые первыми
func (s *Storage) ListComments(ctx context.Context) ([]*models.Comment, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	comments := make([]*models.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		comments = append(comments, c)
	}
	sortCommentsDesc(comments)
	return comments, nil
}

func (s *Storage) ListCommentsByTask(ctx context.Context, taskID uuid.UUID) ([]*models.Comment, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	comments := []*models.Comment{}
	for _, c := range s.comments {
		if c.Task == taskID {
			comments = append(comments, c)
		}
	}
	sortCommentsDesc(comments)
	return comments, nil
}

func sortCommentsDesc(comments []*models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}
