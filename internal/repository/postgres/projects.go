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
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

func (s *Storage) CreateProject(ctx context.Context, project *models.Project) error {
	start := time.Now()
	defer warnIfSlow(start, "create_project")

	query := `INSERT INTO projects (id, name, summary, type, created_at)
				VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Summary,
		project.Type,
		project.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repo.ErrAlreadyExists
		}
		logger.Error("Repository: Не удалось добавить проект", err)
		return fmt.Errorf("добавление проекта: %w", err)
	}
	return nil
}

func (s *Storage) GetProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.getProject(ctx, `SELECT id, name, summary, type, created_at FROM projects WHERE id = $1`, id)
}

func (s *Storage) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	return s.getProject(ctx, `SELECT id, name, summary, type, created_at FROM projects WHERE name = $1`, name)
}

func (s *Storage) getProject(ctx context.Context, query string, arg any) (*models.Project, error) {
	start := time.Now()
	defer warnIfSlow(start, "get_project")

	project := &models.Project{}
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&project.ID,
		&project.Name,
		&project.Summary,
		&project.Type,
		&project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить проект", err)
		return nil, fmt.Errorf("получение проекта: %w", err)
	}
	return project, nil
}

func (s *Storage) ListProjects(ctx context.Context) ([]*models.Project, error) {
	start := time.Now()
	defer warnIfSlow(start, "list_projects")

	rows, err := s.pool.Query(ctx, `SELECT id, name, summary, type, created_at FROM projects ORDER BY name`)
	if err != nil {
		logger.Error("Repository: Не удалось получить проекты", err)
		return nil, fmt.Errorf("получение проектов: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project := &models.Project{}
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Summary,
			&project.Type,
			&project.CreatedAt,
		)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования проекта", zap.Error(err))
			continue
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}
	return projects, nil
}

// задачи проекта (и их комментарии с активностью) удаляются каскадом схемы
func (s *Storage) DeleteProject(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	defer warnIfSlow(start, "delete_project")

	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		logger.Error("Repository: Не удалось удалить проект", err)
		return fmt.Errorf("удаление проекта: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
