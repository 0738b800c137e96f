package inmemory

import (
	"context"
	"sync"

	"taskboard/internal/logger"
	"taskboard/internal/models"

	"github.com/google/uuid"
)

// Storage - потокобезопасное хранилище всех сущностей в памяти,
// для разработки и тестов вместо PostgreSQL
type Storage struct {
	mtx sync.RWMutex

	users         map[uuid.UUID]*models.User
	usernames     map[string]uuid.UUID
	projects      map[uuid.UUID]*models.Project
	projectNames  map[string]uuid.UUID
	tasks         map[uuid.UUID]*models.Task
	comments      map[uuid.UUID]*models.Comment
	notifications map[uuid.UUID]*models.Notification
	activity      map[uuid.UUID]*models.Activity
}

func New() *Storage {
	return &Storage{
		users:         make(map[uuid.UUID]*models.User),
		usernames:     make(map[string]uuid.UUID),
		projects:      make(map[uuid.UUID]*models.Project),
		projectNames:  make(map[string]uuid.UUID),
		tasks:         make(map[uuid.UUID]*models.Task),
		comments:      make(map[uuid.UUID]*models.Comment),
		notifications: make(map[uuid.UUID]*models.Notification),
		activity:      make(map[uuid.UUID]*models.Activity),
	}
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: Хранилище в памяти доступно")
	return nil
}
