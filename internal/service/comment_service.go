package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/derive"
	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
)

type CommentService struct {
	comments CommentRepository
	tasks    TaskRepository
	engine   *derive.Engine
}

func NewCommentService(comments CommentRepository, tasks TaskRepository, engine *derive.Engine) CommentService {
	return CommentService{
		comments: comments,
		tasks:    tasks,
		engine:   engine,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, poster uuid.UUID, taskID uuid.UUID, content string) (*models.Comment, error) {
	fields := map[string]any{}
	if strings.TrimSpace(content) == "" {
		fields["content"] = "не может быть пустым"
	}
	if len(content) > models.MaxCommentLen {
		fields["content"] = fmt.Sprintf("длиннее %d символов", models.MaxCommentLen)
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	if _, err := s.tasks.GetTaskByID(ctx, taskID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("задача", taskID.String())
		}
		return nil, fmt.Errorf("проверка задачи: %w", err)
	}

	comment := &models.Comment{
		ID:        uuid.New(),
		Poster:    poster,
		Task:      taskID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("создание комментария: %w", err)
	}

	// уведомление автору задачи и запись активности, сбои там не
	// откатывают и не валят этот запрос
	s.engine.CommentSaved(ctx, derive.CommentEvent{Comment: comment})

	return comment, nil
}

// ListComments - без taskID все комментарии, новые первыми
func (s *CommentService) ListComments(ctx context.Context, taskID *uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	var err error

	if taskID != nil {
		comments, err = s.comments.ListCommentsByTask(ctx, *taskID)
	} else {
		comments, err = s.comments.ListComments(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("получение комментариев: %w", err)
	}
	return comments, nil
}
