package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"taskboard/internal/handlers/dto"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentHandler struct {
	CommentService CommentService
	Users          dto.UserResolver
}

func NewCommentHandler(commentService CommentService, users dto.UserResolver) CommentHandler {
	return CommentHandler{
		CommentService: commentService,
		Users:          users,
	}
}

// GET /comments?task={id} - без параметра все комментарии, новые первыми
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var taskID *uuid.UUID
	if raw := r.URL.Query().Get("task"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("HTTP: Неверное значение параметра",
				zap.String("query", "task"),
				zap.Error(err),
				zap.String("client_ip", r.RemoteAddr))
			responseWithError(w, http.StatusBadRequest, "неверное значение task: "+err.Error())
			return
		}
		taskID = &id
	}

	comments, err := h.CommentService.ListComments(r.Context(), taskID)
	if err != nil {
		respondServiceError(w, err, "list_comments")
		return
	}

	logger.Info("HTTP_OUT: Комментарии получены",
		zap.Int("count", len(comments)),
		zap.Duration("ms", time.Since(start)))

	responseShape(w, http.StatusOK, dto.FromCommentList(r.Context(), comments, h.Users))
}

// POST /comments - poster подставляется из принципала
func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	var request dto.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), principal.ID, request.Task, request.Content)
	if err != nil {
		respondServiceError(w, err, "create_comment")
		return
	}

	logger.Info("HTTP_OUT: Комментарий создан",
		zap.String("comment_id", comment.ID.String()),
		zap.String("task_id", comment.Task.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseShape(w, http.StatusCreated, comment)
}
