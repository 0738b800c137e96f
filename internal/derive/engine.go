package derive

import (
	"context"

	"taskboard/internal/logger"
	"taskboard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskEvent - зафиксированная запись задачи, Created=true при первом сохранении,
// OldStatus - статус до обновления (для обновлений)
type TaskEvent struct {
	Task      *models.Task
	Actor     uuid.UUID
	OldStatus models.TaskStatus
	Created   bool
}

type CommentEvent struct {
	Comment *models.Comment
}

// Handler - обработчик производных записей, вызывается после коммита первичной записи.
// Ошибки обработчиков логируются и никогда не доходят до вызывающего запроса.
type Handler interface {
	Name() string
	TaskSaved(ctx context.Context, ev TaskEvent) error
	CommentSaved(ctx context.Context, ev CommentEvent) error
}

type TaskStore interface {
	GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
}

// Engine - явный реестр обработчиков вместо скрытых глобальных сигналов:
// сервис сам дёргает TaskSaved/CommentSaved, полный набор эффектов записи
// виден в месте вызова
type Engine struct {
	handlers []Handler
	tasks    TaskStore
	repairs  chan uuid.UUID
}

func NewEngine(tasks TaskStore, handlers ...Handler) *Engine {
	return &Engine{
		handlers: handlers,
		tasks:    tasks,
		repairs:  make(chan uuid.UUID, 64),
	}
}

// TaskSaved вызывается сервисом строго после успешного коммита задачи
func (e *Engine) TaskSaved(ctx context.Context, ev TaskEvent) {
	for _, h := range e.handlers {
		if err := h.TaskSaved(ctx, ev); err != nil {
			logger.Warn("Derive: Обработчик завершился с ошибкой",
				zap.String("handler", h.Name()),
				zap.String("task_id", ev.Task.ID.String()),
				zap.Error(err))
		}
	}

	if ev.Task.NeedsRepair() {
		e.scheduleRepair(ev.Task.ID)
	}
}

func (e *Engine) CommentSaved(ctx context.Context, ev CommentEvent) {
	for _, h := range e.handlers {
		if err := h.CommentSaved(ctx, ev); err != nil {
			logger.Warn("Derive: Обработчик завершился с ошибкой",
				zap.String("handler", h.Name()),
				zap.String("comment_id", ev.Comment.ID.String()),
				zap.Error(err))
		}
	}
}

func (e *Engine) scheduleRepair(id uuid.UUID) {
	select {
	case e.repairs <- id:
	default:
		logger.Warn("Derive: Очередь починки переполнена, задача пропущена",
			zap.String("task_id", id.String()))
	}
}

// Start запускает фоновую обработку очереди починки, блокируется до отмены ctx
func (e *Engine) Start(ctx context.Context) {
	logger.Info("Derive: Фоновая починка инварианта запущена")
	for {
		select {
		case id := <-e.repairs:
			e.Repair(ctx, id)
		case <-ctx.Done():
			logger.Info("Derive: Фоновая починка останавливается")
			return
		}
	}
}

// Repair - идемпотентная корректировка: задача типа Project не может
// ссылаться на проект. Повторная проверка условия защищает от рекурсии:
// второй запуск находит инвариант выполненным и ничего не делает.
func (e *Engine) Repair(ctx context.Context, id uuid.UUID) {
	task, err := e.tasks.GetTaskByID(ctx, id)
	if err != nil {
		logger.Warn("Derive: Не удалось загрузить задачу для починки",
			zap.String("task_id", id.String()),
			zap.Error(err))
		return
	}

	if !task.NeedsRepair() {
		return
	}

	logger.Info("Derive: Задача типа Project ссылается на проект, поле project будет сброшено",
		zap.String("task_id", id.String()))

	task.Project = nil
	if err := e.tasks.UpdateTask(ctx, task); err != nil {
		logger.Warn("Derive: Не удалось сохранить починку",
			zap.String("task_id", id.String()),
			zap.Error(err))
	}
}
