package inmemory

import (
	"context"
	"sort"
	"time"

	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
)

func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks[task.ID] = task
	return nil
}

// Update - последняя запись побеждает, без проверки версий
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return repo.ErrNotFound
	}

	task.EditedAt = time.Now()
	s.tasks[task.ID] = task
	return nil
}

func (s *Storage) GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	copied := *task
	return &copied, nil
}

func (s *Storage) ListTasks(ctx context.Context, sortBy models.TaskSort) ([]*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	tasks := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if sortBy == models.SortEdited {
			return tasks[i].EditedAt.After(tasks[j].EditedAt)
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (s *Storage) DeleteTask(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return repo.ErrNotFound
	}
	s.deleteTaskLocked(id)
	return nil
}

// deleteTaskLocked каскадно удаляет комментарии и активность задачи,
// вызывать только под заблокированным mtx
func (s *Storage) deleteTaskLocked(id uuid.UUID) {
	for commentID, c := range s.comments {
		if c.Task == id {
			delete(s.comments, commentID)
		}
	}
	for activityID, a := range s.activity {
		if a.Task != nil && *a.Task == id {
			delete(s.activity, activityID)
		}
	}
	delete(s.tasks, id)
}
