// Package dto формирует клиентские представления сущностей.
// Ссылки по id разрешаются в отображаемые строки через резолверы,
// промах разрешения деградирует до сентинела и никогда не ошибка.
package dto

import (
	"context"
	"time"

	"taskboard/internal/models"

	"github.com/google/uuid"
)

// сентинелы при недоступной ссылке
const (
	NoProject   = "None"
	UnknownUser = "unknown"
)

type UserResolver func(ctx context.Context, id uuid.UUID) (string, error)
type ProjectResolver func(ctx context.Context, id uuid.UUID) (string, error)

// TaskOverview - списочное представление: тип задачи схлопнут
// в префикс summary, сырое поле type наружу не отдаётся
type TaskOverview struct {
	ID      uuid.UUID `json:"id"`
	Summary string    `json:"summary"`
}

func FromTaskOverview(t *models.Task) TaskOverview {
	return TaskOverview{
		ID:      t.ID,
		Summary: "[" + t.Type.Label() + "] " + t.Summary,
	}
}

func FromTaskList(tasks []*models.Task) []TaskOverview {
	result := make([]TaskOverview, len(tasks))
	for i, t := range tasks {
		result[i] = FromTaskOverview(t)
	}
	return result
}

type TaskDetail struct {
	ID          uuid.UUID      `json:"id"`
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	Author      string         `json:"author"`
	Project     string         `json:"project"`
	Comments    []CommentShape `json:"comments"`
}

// FromTaskDetail разворачивает enum-коды в отображаемые метки и разрешает
// ссылки. Проект задачи типа Project всегда "None" независимо от
// хранимого значения - инвариант держится и на слое отображения.
func FromTaskDetail(ctx context.Context, t *models.Task, comments []*models.Comment, users UserResolver, projects ProjectResolver) TaskDetail {
	project := NoProject
	if t.Type.Label() != "Project" && t.Project != nil {
		if name, err := projects(ctx, *t.Project); err == nil {
			project = name
		}
	}

	return TaskDetail{
		ID:          t.ID,
		Summary:     t.Summary,
		Description: t.Description,
		Type:        t.Type.Label(),
		Status:      t.Status.Label(),
		CreatedAt:   t.CreatedAt,
		Author:      resolveUser(ctx, users, t.Author),
		Project:     project,
		Comments:    FromCommentList(ctx, comments, users),
	}
}

type CommentShape struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Poster    string    `json:"poster"`
}

func FromComment(ctx context.Context, c *models.Comment, users UserResolver) CommentShape {
	return CommentShape{
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Poster:    resolveUser(ctx, users, c.Poster),
	}
}

func FromCommentList(ctx context.Context, comments []*models.Comment, users UserResolver) []CommentShape {
	result := make([]CommentShape, len(comments))
	for i, c := range comments {
		result[i] = FromComment(ctx, c, users)
	}
	return result
}

// ProjectNames - списки проектов отдаются плоским массивом имён
func ProjectNames(projects []*models.Project) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names
}

type ProjectDetail struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Summary   string    `json:"summary"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProject(p *models.Project) ProjectDetail {
	return ProjectDetail{
		ID:        p.ID,
		Name:      p.Name,
		Summary:   p.Summary,
		Type:      p.Type.Label(),
		CreatedAt: p.CreatedAt,
	}
}

// NotificationShape не содержит receiver: получатель задан самим
// запросом, чужие id наружу не утекают
type NotificationShape struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
	Location  string    `json:"location,omitempty"`
	IsRead    bool      `json:"is_read"`
}

func FromNotification(n *models.Notification) NotificationShape {
	return NotificationShape{
		ID:        n.ID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		Type:      n.Type.Label(),
		Location:  n.Location,
		IsRead:    n.IsRead,
	}
}

func FromNotificationList(notifications []*models.Notification) []NotificationShape {
	result := make([]NotificationShape, len(notifications))
	for i, n := range notifications {
		result[i] = FromNotification(n)
	}
	return result
}

type ActivityShape struct {
	Type      string     `json:"type"`
	Task      *uuid.UUID `json:"task,omitempty"`
	User      string     `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromActivity(ctx context.Context, a *models.Activity, users UserResolver) ActivityShape {
	return ActivityShape{
		Type:      a.Type.Label(),
		Task:      a.Task,
		User:      resolveUser(ctx, users, a.User),
		CreatedAt: a.CreatedAt,
	}
}

func FromActivityList(ctx context.Context, entries []*models.Activity, users UserResolver) []ActivityShape {
	result := make([]ActivityShape, len(entries))
	for i, a := range entries {
		result[i] = FromActivity(ctx, a, users)
	}
	return result
}

// EnumShape - код и метка для клиентских форм
type EnumShape struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func TaskTypeShapes() []EnumShape {
	types := models.TaskTypes()
	result := make([]EnumShape, len(types))
	for i, t := range types {
		result[i] = EnumShape{Code: string(t), Label: t.Label()}
	}
	return result
}

func TaskStatusShapes() []EnumShape {
	statuses := models.TaskStatuses()
	result := make([]EnumShape, len(statuses))
	for i, s := range statuses {
		result[i] = EnumShape{Code: string(s), Label: s.Label()}
	}
	return result
}

func resolveUser(ctx context.Context, users UserResolver, id uuid.UUID) string {
	if users == nil {
		return UnknownUser
	}
	username, err := users(ctx, id)
	if err != nil {
		return UnknownUser
	}
	return username
}
