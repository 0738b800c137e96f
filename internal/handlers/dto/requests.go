package dto

import (
	"taskboard/internal/models"

	"github.com/google/uuid"
)

// поле author/poster в телах запросов отсутствует намеренно:
// автор берётся только из аутентифицированного принципала

type CreateTaskRequest struct {
	Summary     string            `json:"summary"`
	Description string            `json:"description"`
	Type        models.TaskType   `json:"type"`
	Status      models.TaskStatus `json:"status"`
	Project     string            `json:"project"`
}

type UpdateTaskRequest struct {
	Summary     *string            `json:"summary,omitempty"`
	Description *string            `json:"description,omitempty"`
	Type        *models.TaskType   `json:"type,omitempty"`
	Status      *models.TaskStatus `json:"status,omitempty"`
}

type CreateProjectRequest struct {
	Name    string             `json:"name"`
	Summary string             `json:"summary"`
	Type    models.ProjectType `json:"type"`
}

type CreateCommentRequest struct {
	Task    uuid.UUID `json:"task"`
	Content string    `json:"content"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
