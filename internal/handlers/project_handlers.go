package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"taskboard/internal/handlers/dto"
	"taskboard/internal/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	ProjectService ProjectService
}

func NewProjectHandler(projectService ProjectService) ProjectHandler {
	return ProjectHandler{ProjectService: projectService}
}

// GET /projects - плоский список имён, не объектов
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projects, err := h.ProjectService.ListProjects(r.Context())
	if err != nil {
		respondServiceError(w, err, "list_projects")
		return
	}

	responseShape(w, http.StatusOK, dto.ProjectNames(projects))
}

// GET /projects/{name}
func (h *ProjectHandler) GetProjectByName(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	name := chi.URLParam(r, "name")

	project, err := h.ProjectService.GetProjectByName(r.Context(), name)
	if err != nil {
		respondServiceError(w, err, "get_project")
		return
	}

	responseShape(w, http.StatusOK, dto.FromProject(project))
}

// POST /projects
func (h *ProjectHandler) PostProject(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	project, err := h.ProjectService.CreateProject(r.Context(), request.Name, request.Summary, request.Type)
	if err != nil {
		respondServiceError(w, err, "create_project")
		return
	}

	logger.Info("HTTP_OUT: Проект создан",
		zap.String("project", project.Name),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseShape(w, http.StatusCreated, dto.FromProject(project))
}

// DELETE /projects/{name} - каскадно удаляет задачи проекта
func (h *ProjectHandler) DeleteProjectByName(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	name := chi.URLParam(r, "name")

	if err := h.ProjectService.DeleteProject(r.Context(), name); err != nil {
		respondServiceError(w, err, "delete_project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
