package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/logger"
	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const taskColumns = `id, summary, description, author, project, type, status, created_at, edited_at`

func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	start := time.Now()
	defer warnIfSlow(start, "create_task")

	query := `INSERT INTO tasks
				(id, summary, description, author, project, type, status, created_at, edited_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
				RETURNING created_at`

	err := s.pool.QueryRow(ctx, query,
		task.ID,
		task.Summary,
		task.Description,
		task.Author,
		task.Project,
		task.Type,
		task.Status,
		time.Now(),
	).Scan(&task.CreatedAt)

	if err != nil {
		logger.Error("Repository: Не удалось добавить задачу", err)
		return fmt.Errorf("добавление задачи: %w", err)
	}
	return nil
}

// последняя запись побеждает, edited_at всегда обновляется
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) error {
	start := time.Now()
	defer warnIfSlow(start, "update_task")

	query := `UPDATE tasks
			SET summary = $1,
				description = $2,
				project = $3,
				type = $4,
				status = $5,
				edited_at = NOW()
			WHERE id = $6
			RETURNING edited_at`

	err := s.pool.QueryRow(ctx, query,
		task.Summary,
		task.Description,
		task.Project,
		task.Type,
		task.Status,
		task.ID,
	).Scan(&task.EditedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось обновить задачу", err)
		return fmt.Errorf("обновление задачи: %w", err)
	}
	return nil
}

func (s *Storage) GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	start := time.Now()
	defer warnIfSlow(start, "get_task")

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task := &models.Task{}
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.Summary,
		&task.Description,
		&task.Author,
		&task.Project,
		&task.Type,
		&task.Status,
		&task.CreatedAt,
		&task.EditedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить задачу", err)
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return task, nil
}

func (s *Storage) ListTasks(ctx context.Context, sortBy models.TaskSort) ([]*models.Task, error) {
	start := time.Now()
	defer warnIfSlow(start, "list_tasks")

	orderBy := "created_at DESC"
	if sortBy == models.SortEdited {
		orderBy = "edited_at DESC"
	}

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY ` + orderBy

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		logger.Error("Repository: Не удалось получить задачи", err)
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task := &models.Task{}
		err := rows.Scan(
			&task.ID,
			&task.Summary,
			&task.Description,
			&task.Author,
			&task.Project,
			&task.Type,
			&task.Status,
			&task.CreatedAt,
			&task.EditedAt,
		)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования задачи", zap.Error(err))
			continue
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}
	return tasks, nil
}

// комментарии и активность задачи удаляются каскадом на уровне схемы
func (s *Storage) DeleteTask(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	defer warnIfSlow(start, "delete_task")

	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		logger.Error("Repository: Не удалось удалить задачу", err)
		return fmt.Errorf("удаление задачи: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
