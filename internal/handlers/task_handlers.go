package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"taskboard/internal/handlers/dto"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskHandler struct {
	TaskService    TaskService
	CommentService CommentService
	Users          dto.UserResolver
	Projects       dto.ProjectResolver
}

func NewTaskHandler(taskService TaskService, commentService CommentService, users dto.UserResolver, projects dto.ProjectResolver) TaskHandler {
	return TaskHandler{
		TaskService:    taskService,
		CommentService: commentService,
		Users:          users,
		Projects:       projects,
	}
}

// GET /tasks?sort={created|edited}
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	sortBy := models.ParseTaskSort(r.URL.Query().Get("sort"))

	tasks, err := h.TaskService.ListTasks(r.Context(), sortBy)
	if err != nil {
		respondServiceError(w, err, "list_tasks")
		return
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.Int("count", len(tasks)),
		zap.String("sort", string(sortBy)),
		zap.Duration("ms", time.Since(start)))

	responseShape(w, http.StatusOK, dto.FromTaskList(tasks))
}

// GET /tasks/{id}
func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "не удалось получить id: "+err.Error())
		return
	}

	task, err := h.TaskService.GetTaskByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "get_task")
		return
	}

	detail := h.taskDetail(r, task)

	logger.Info("HTTP_OUT: Задача получена",
		zap.String("task_id", task.ID.String()),
		zap.Duration("ms", time.Since(start)))

	responseShape(w, http.StatusOK, detail)
}

// POST /tasks - автор подставляется из принципала, клиентский author игнорируется
func (h *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	var request dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	task, err := h.TaskService.CreateTask(r.Context(), principal.ID, service.CreateTaskInput{
		Summary:     request.Summary,
		Description: request.Description,
		Type:        request.Type,
		Status:      request.Status,
		ProjectName: request.Project,
	})
	if err != nil {
		respondServiceError(w, err, "create_task")
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.String("task_id", task.ID.String()),
		zap.String("author", principal.Username),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseShape(w, http.StatusCreated, h.taskDetail(r, task))
}

// PUT /tasks/{id}
func (h *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		responseWithError(w, http.StatusBadRequest, "не удалось получить id: "+err.Error())
		return
	}

	var request dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверно переданы параметры обновления: "+err.Error())
		return
	}

	options := []models.TaskOption{}
	if request.Summary != nil {
		options = append(options, models.WithSummary(*request.Summary))
	}
	if request.Description != nil {
		options = append(options, models.WithDescription(*request.Description))
	}
	if request.Type != nil {
		options = append(options, models.WithType(*request.Type))
	}
	if request.Status != nil {
		options = append(options, models.WithStatus(*request.Status))
	}

	task, err := h.TaskService.UpdateTask(r.Context(), id, principal.ID, options...)
	if err != nil {
		respondServiceError(w, err, "update_task")
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.String("task_id", task.ID.String()),
		zap.Duration("ms", time.Since(start)))

	responseShape(w, http.StatusOK, h.taskDetail(r, task))
}

// DELETE /tasks/{id}
func (h *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		responseWithError(w, http.StatusBadRequest, "не удалось получить id: "+err.Error())
		return
	}

	if err := h.TaskService.DeleteTask(r.Context(), id); err != nil {
		respondServiceError(w, err, "delete_task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /task-types
func (h *TaskHandler) GetTaskTypes(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")
	responseShape(w, http.StatusOK, dto.TaskTypeShapes())
}

// GET /task-statuses
func (h *TaskHandler) GetTaskStatuses(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")
	responseShape(w, http.StatusOK, dto.TaskStatusShapes())
}

func (h *TaskHandler) taskDetail(r *http.Request, task *models.Task) dto.TaskDetail {
	comments, err := h.CommentService.ListComments(r.Context(), &task.ID)
	if err != nil {
		// деталка важнее комментариев: отдаём задачу с пустым списком
		logger.Warn("HTTP: Не удалось получить комментарии задачи",
			zap.String("task_id", task.ID.String()),
			zap.Error(err))
		comments = []*models.Comment{}
	}
	return dto.FromTaskDetail(r.Context(), task, comments, h.Users, h.Projects)
}
