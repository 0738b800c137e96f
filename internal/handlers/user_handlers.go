package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"taskboard/internal/handlers/dto"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService UserService
	FeedService FeedService
	Users       dto.UserResolver
}

func NewUserHandler(userService UserService, feedService FeedService, users dto.UserResolver) UserHandler {
	return UserHandler{
		UserService: userService,
		FeedService: feedService,
		Users:       users,
	}
}

// POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	user, err := h.UserService.Register(r.Context(), request.Username, request.Password)
	if err != nil {
		respondServiceError(w, err, "register")
		return
	}

	logger.Info("HTTP_OUT: Пользователь создан",
		zap.String("username", user.Username),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated,
		toPayload("id", user.ID),
		toPayload("username", user.Username),
	)
}

// POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	token, err := h.UserService.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		respondServiceError(w, err, "login")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("token", token))
}

// GET /auth/status - 200 если токен валиден
func (h *UserHandler) LoginStatus(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("username", principal.Username))
}

// GET /users/{username}/notifications
func (h *UserHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	username := chi.URLParam(r, "username")

	notifications, err := h.FeedService.NotificationsFor(r.Context(), username)
	if err != nil {
		respondServiceError(w, err, "get_notifications")
		return
	}

	responseShape(w, http.StatusOK, dto.FromNotificationList(notifications))
}

// POST /notifications/{id}/read - единственная мутация уведомления
func (h *UserHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		responseWithError(w, http.StatusBadRequest, "не удалось получить id: "+err.Error())
		return
	}

	if err := h.FeedService.MarkNotificationRead(r.Context(), id); err != nil {
		respondServiceError(w, err, "mark_notification_read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /users/{username}/activity
func (h *UserHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	username := chi.URLParam(r, "username")

	entries, err := h.FeedService.ActivityFor(r.Context(), username)
	if err != nil {
		respondServiceError(w, err, "get_activity")
		return
	}

	responseShape(w, http.StatusOK, dto.FromActivityList(r.Context(), entries, h.Users))
}

// GET /health
func (h *UserHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")
	responseWithJSON(w, http.StatusOK, toPayload("status", "ok"))
}
