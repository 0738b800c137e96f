package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/derive"
	"taskboard/internal/handlers"
	"taskboard/internal/handlers/dto"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/repository/inmemory"
	"taskboard/internal/repository/postgres"
	"taskboard/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// repositories - полный набор хранилищ, inmemory.Storage и
// postgres.Storage реализуют его целиком
type repositories interface {
	service.UserRepository
	service.ProjectRepository
	service.TaskRepository
	service.CommentRepository
	service.NotificationRepository
	service.ActivityRepository
	HealthCheck(ctx context.Context) error
}

type App struct {
	config    *config.Config
	router    *chi.Mux
	server    *http.Server
	engine    *derive.Engine
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	repos, err := a.initRepositories(ctx)
	if err != nil {
		return err
	}

	authService := auth.New(a.config.Auth.Secret, a.config.Auth.TokenTTL)

	// производные записи: уведомления и лента, плюс очередь починки инварианта
	a.engine = derive.NewEngine(repos,
		derive.NewNotificationDeriver(repos, repos, repos),
		derive.NewActivityDeriver(repos),
	)

	userService := service.NewUserService(repos, authService)
	projectService := service.NewProjectService(repos)
	taskService := service.NewTaskService(repos, repos, a.engine)
	commentService := service.NewCommentService(repos, repos, a.engine)
	feedService := service.NewFeedService(repos, repos, repos)

	userResolver := dto.UserResolver(func(ctx context.Context, id uuid.UUID) (string, error) {
		return userService.UsernameByID(ctx, id)
	})
	projectResolver := dto.ProjectResolver(func(ctx context.Context, id uuid.UUID) (string, error) {
		return projectService.NameByID(ctx, id)
	})

	taskHandler := handlers.NewTaskHandler(&taskService, &commentService, userResolver, projectResolver)
	projectHandler := handlers.NewProjectHandler(&projectService)
	commentHandler := handlers.NewCommentHandler(&commentService, userResolver)
	userHandler := handlers.NewUserHandler(&userService, &feedService, userResolver)

	a.router = buildRouter(a.config, authService, taskHandler, projectHandler, commentHandler, userHandler)
	a.server = &http.Server{
		Addr:         a.config.ServerAddr(),
		Handler:      a.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	return nil
}

func (a *App) initRepositories(ctx context.Context) (repositories, error) {
	switch a.config.Repository.Type {
	case "postgres":
		storage, err := postgres.New(ctx, a.config.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("подключение к PostgreSQL: %w", err)
		}
		if err := storage.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("миграции: %w", err)
		}
		a.shutdowns = append(a.shutdowns, storage.Close)
		return storage, nil
	default:
		return inmemory.New(), nil
	}
}

// Run блокируется до отмены ctx, затем аккуратно гасит сервер
func (a *App) Run(ctx context.Context) error {
	engineCtx, cancelEngine := context.WithCancel(context.Background())
	go a.engine.Start(engineCtx)
	a.shutdowns = append(a.shutdowns, cancelEngine)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Сервер запущен: " + a.config.ServerAddr())
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.Shutdown()
		return fmt.Errorf("сервер: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", err)
	}

	a.Shutdown()
	return nil
}

// Shutdown выполняет накопленные функции завершения в обратном порядке
func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = a.shutdowns[:0]
}

func (a *App) Router() *chi.Mux {
	return a.router
}

func buildRouter(cfg *config.Config, authService *auth.Service, taskHandler handlers.TaskHandler, projectHandler handlers.ProjectHandler, commentHandler handlers.CommentHandler, userHandler handlers.UserHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(cfg.Server.RateLimit))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
	}))

	authRequired := middleware.Auth(authService)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks) // ?sort={created|edited}
		r.With(authRequired).Post("/", taskHandler.PostTask)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)
			r.With(authRequired).Put("/", taskHandler.UpdateTaskByID)
			r.With(authRequired).Delete("/", taskHandler.DeleteTaskByID)
		})
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", projectHandler.ListProjects) // плоский список имён
		r.With(authRequired).Post("/", projectHandler.PostProject)

		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", projectHandler.GetProjectByName)
			r.With(authRequired).Delete("/", projectHandler.DeleteProjectByName)
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/", commentHandler.ListComments) // ?task={id}
		r.With(authRequired).Post("/", commentHandler.PostComment)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Get("/{username}/notifications", userHandler.GetNotifications)
		r.Get("/{username}/activity", userHandler.GetActivity)
	})

	r.With(authRequired).Post("/notifications/{id}/read", userHandler.MarkNotificationRead)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", userHandler.Login)
		r.With(authRequired).Get("/status", userHandler.LoginStatus)
	})

	r.Get("/task-types", taskHandler.GetTaskTypes)
	r.Get("/task-statuses", taskHandler.GetTaskStatuses)
	r.Get("/health", userHandler.HealthCheck)

	return r
}
