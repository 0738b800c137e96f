package handlers

import (
	"context"

	"taskboard/internal/models"
	"taskboard/internal/service"

	"github.com/google/uuid"
)

type TaskService interface {
	CreateTask(ctx context.Context, author uuid.UUID, input service.CreateTaskInput) (*models.Task, error)
	GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context, sortBy models.TaskSort) ([]*models.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, actor uuid.UUID, options ...models.TaskOption) (*models.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type ProjectService interface {
	CreateProject(ctx context.Context, name, summary string, projectType models.ProjectType) (*models.Project, error)
	GetProjectByName(ctx context.Context, name string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	NameByID(ctx context.Context, id uuid.UUID) (string, error)
	DeleteProject(ctx context.Context, name string) error
}

type CommentService interface {
	CreateComment(ctx context.Context, poster uuid.UUID, taskID uuid.UUID, content string) (*models.Comment, error)
	ListComments(ctx context.Context, taskID *uuid.UUID) ([]*models.Comment, error)
}

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameByID(ctx context.Context, id uuid.UUID) (string, error)
}

type FeedService interface {
	NotificationsFor(ctx context.Context, username string) ([]*models.Notification, error)
	ActivityFor(ctx context.Context, username string) ([]*models.Activity, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
}
