package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/derive"
	"taskboard/internal/logger"
	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// проверка бизнес-правил задач происходит здесь,
// производные записи создаёт derive.Engine после коммита

type TaskService struct {
	tasks    TaskRepository
	projects ProjectRepository
	engine   *derive.Engine
}

func NewTaskService(tasks TaskRepository, projects ProjectRepository, engine *derive.Engine) TaskService {
	return TaskService{
		tasks:    tasks,
		projects: projects,
		engine:   engine,
	}
}

type CreateTaskInput struct {
	Summary     string
	Description string
	Type        models.TaskType
	Status      models.TaskStatus
	ProjectName string
}

// CreateTask разрешает имя проекта в ссылку на этапе записи:
// пустое имя - задача без проекта, неизвестное имя - NOT_FOUND
func (s *TaskService) CreateTask(ctx context.Context, author uuid.UUID, input CreateTaskInput) (*models.Task, error) {
	if fields := validateTaskInput(input); len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	if input.Type == "" {
		input.Type = models.TypeTask
	}
	if input.Status == "" {
		input.Status = models.StatusToDo
	}

	var projectID *uuid.UUID
	if name := strings.TrimSpace(input.ProjectName); name != "" {
		project, err := s.projects.GetProjectByName(ctx, name)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				logger.Info("Service: Проект для задачи не найден", zap.String("project", name))
				return nil, NewNotFound("проект", name)
			}
			return nil, fmt.Errorf("разрешение проекта: %w", err)
		}
		projectID = &project.ID
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New(),
		Summary:     input.Summary,
		Description: input.Description,
		Author:      author,
		Project:     projectID,
		Type:        input.Type,
		Status:      input.Status,
		CreatedAt:   now,
		EditedAt:    now,
	}

	if err := s.tasks.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	// запись зафиксирована, теперь производные эффекты
	s.engine.TaskSaved(ctx, derive.TaskEvent{
		Task:    task,
		Actor:   author,
		Created: true,
	})

	return task, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("задача", id.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, sortBy models.TaskSort) ([]*models.Task, error) {
	tasks, err := s.tasks.ListTasks(ctx, sortBy)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, actor uuid.UUID, options ...models.TaskOption) (*models.Task, error) {
	task, err := s.tasks.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("задача", id.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	oldStatus := task.Status
	for _, opt := range options {
		opt(task)
	}

	if fields := validateTaskFields(task); len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	if err := s.tasks.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("обновление задачи: %w", err)
	}

	s.engine.TaskSaved(ctx, derive.TaskEvent{
		Task:      task,
		Actor:     actor,
		OldStatus: oldStatus,
	})

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.tasks.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound("задача", id.String())
		}
		return fmt.Errorf("удаление задачи: %w", err)
	}
	return nil
}

func validateTaskInput(input CreateTaskInput) map[string]any {
	fields := map[string]any{}
	if strings.TrimSpace(input.Summary) == "" {
		fields["summary"] = "не может быть пустым"
	}
	if len(input.Summary) > models.MaxSummaryLen {
		fields["summary"] = fmt.Sprintf("длиннее %d символов", models.MaxSummaryLen)
	}
	if len(input.Description) > models.MaxDescriptionLen {
		fields["description"] = fmt.Sprintf("длиннее %d символов", models.MaxDescriptionLen)
	}
	if input.Type != "" && !input.Type.Valid() {
		fields["type"] = "неизвестный тип задачи"
	}
	if input.Status != "" && !input.Status.Valid() {
		fields["status"] = "неизвестный статус задачи"
	}
	return fields
}

func validateTaskFields(task *models.Task) map[string]any {
	fields := map[string]any{}
	if strings.TrimSpace(task.Summary) == "" {
		fields["summary"] = "не может быть пустым"
	}
	if len(task.Summary) > models.MaxSummaryLen {
		fields["summary"] = fmt.Sprintf("длиннее %d символов", models.MaxSummaryLen)
	}
	if len(task.Description) > models.MaxDescriptionLen {
		fields["description"] = fmt.Sprintf("длиннее %d символов", models.MaxDescriptionLen)
	}
	if !task.Type.Valid() {
		fields["type"] = "неизвестный тип задачи"
	}
	if !task.Status.Valid() {
		fields["status"] = "неизвестный статус задачи"
	}
	return fields
}
