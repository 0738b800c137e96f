package postgres

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/logger"
	"taskboard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) error {
	start := time.Now()
	defer warnIfSlow(start, "create_comment")

	query := `INSERT INTO comments (id, poster, task, content, created_at)
				VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, query,
		comment.ID,
		comment.Poster,
		comment.Task,
		comment.Content,
		comment.CreatedAt,
	)
	if err != nil {
		logger.Error("Repository: Не удалось добавить комментарий", err)
		return fmt.Errorf("добавление комментария: %w", err)
	}
	return nil
}

func (s *Storage) ListComments(ctx context.Context) ([]*models.Comment, error) {
	query := `SELECT id, poster, task, content, created_at FROM comments
				ORDER BY created_at DESC`
	return s.listComments(ctx, query)
}

func (s *Storage) ListCommentsByTask(ctx context.Context, taskID uuid.UUID) ([]*models.Comment, error) {
	query := `SELECT id, poster, task, content, created_at FROM comments
				WHERE task = $1
				ORDER BY created_at DESC`
	return s.listComments(ctx, query, taskID)
}

func (s *Storage) listComments(ctx context.Context, query string, args ...any) ([]*models.Comment, error) {
	start := time.Now()
	defer warnIfSlow(start, "list_comments")

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("Repository: Не удалось получить комментарии", err)
		return nil, fmt.Errorf("получение комментариев: %w", err)
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.Poster,
			&comment.Task,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования комментария", zap.Error(err))
			continue
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}
	return comments, nil
}
