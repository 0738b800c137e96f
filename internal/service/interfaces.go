package service

import (
	"context"

	"taskboard/internal/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(context.Context, *models.User) error
	GetUserByID(context.Context, uuid.UUID) (*models.User, error)
	GetUserByUsername(context.Context, string) (*models.User, error)
}

type ProjectRepository interface {
	CreateProject(context.Context, *models.Project) error
	GetProjectByID(context.Context, uuid.UUID) (*models.Project, error)
	GetProjectByName(context.Context, string) (*models.Project, error)
	ListProjects(context.Context) ([]*models.Project, error)
	DeleteProject(context.Context, uuid.UUID) error
}

type TaskRepository interface {
	CreateTask(context.Context, *models.Task) error
	UpdateTask(context.Context, *models.Task) error
	GetTaskByID(context.Context, uuid.UUID) (*models.Task, error)
	ListTasks(context.Context, models.TaskSort) ([]*models.Task, error)
	DeleteTask(context.Context, uuid.UUID) error
}

type CommentRepository interface {
	CreateComment(context.Context, *models.Comment) error
	ListComments(context.Context) ([]*models.Comment, error)
	ListCommentsByTask(context.Context, uuid.UUID) ([]*models.Comment, error)
}

type NotificationRepository interface {
	CreateNotification(context.Context, *models.Notification) error
	ListNotificationsByReceiver(context.Context, uuid.UUID) ([]*models.Notification, error)
	MarkNotificationRead(context.Context, uuid.UUID) error
}

type ActivityRepository interface {
	CreateActivity(context.Context, *models.Activity) error
	ListActivityByUser(context.Context, uuid.UUID) ([]*models.Activity, error)
}
