package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/logger"
	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProjectService struct {
	projects ProjectRepository
}

func NewProjectService(projects ProjectRepository) ProjectService {
	return ProjectService{projects: projects}
}

func (s *ProjectService) CreateProject(ctx context.Context, name, summary string, projectType models.ProjectType) (*models.Project, error) {
	fields := map[string]any{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "не может быть пустым"
	}
	if projectType != "" && !projectType.Valid() {
		fields["type"] = "неизвестный тип проекта"
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	if projectType == "" {
		projectType = models.ProjectOther
	}

	project := &models.Project{
		ID:        uuid.New(),
		Name:      name,
		Summary:   summary,
		Type:      projectType,
		CreatedAt: time.Now(),
	}

	if err := s.projects.CreateProject(ctx, project); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, NewAlreadyExists("проект", name)
		}
		return nil, fmt.Errorf("создание проекта: %w", err)
	}
	return project, nil
}

func (s *ProjectService) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	project, err := s.projects.GetProjectByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("проект", name)
		}
		return nil, fmt.Errorf("получение проекта: %w", err)
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение проектов: %w", err)
	}
	return projects, nil
}

// NameByID - разрешение ссылки для слоя отображения, ошибок не возвращает:
// промах деградирует до пустой строки, маппинг в "None" делает dto
func (s *ProjectService) NameByID(ctx context.Context, id uuid.UUID) (string, error) {
	project, err := s.projects.GetProjectByID(ctx, id)
	if err != nil {
		return "", err
	}
	return project.Name, nil
}

// DeleteProject каскадно удаляет задачи проекта, политика строго
// разрушительная (мягкое удаление сознательно не реализовано)
func (s *ProjectService) DeleteProject(ctx context.Context, name string) error {
	project, err := s.projects.GetProjectByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound("проект", name)
		}
		return fmt.Errorf("получение проекта: %w", err)
	}

	if err := s.projects.DeleteProject(ctx, project.ID); err != nil {
		return fmt.Errorf("удаление проекта: %w", err)
	}

	logger.Info("Service: Проект удалён вместе с задачами",
		zap.String("project", name),
		zap.String("project_id", project.ID.String()))
	return nil
}
