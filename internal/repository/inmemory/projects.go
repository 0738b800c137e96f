package inmemory

import (
	"context"
	"sort"

	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
)

func (s *Storage) CreateProject(ctx context.Context, project *models.Project) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, exists := s.projectNames[project.Name]; exists {
		return repo.ErrAlreadyExists
	}

	s.projects[project.ID] = project
	s.projectNames[project.Name] = project.ID
	return nil
}

func (s *Storage) GetProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return project, nil
}

func (s *Storage) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	id, ok := s.projectNames[name]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return s.projects[id], nil
}

func (s *Storage) ListProjects(ctx context.Context) ([]*models.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	projects := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects, nil
}

// DeleteProject каскадно удаляет задачи проекта вместе с их
// комментариями и записями активности
func (s *Storage) DeleteProject(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return repo.ErrNotFound
	}

	for taskID, t := range s.tasks {
		if t.Project != nil && *t.Project == id {
			s.deleteTaskLocked(taskID)
		}
	}

	delete(s.projectNames, project.Name)
	delete(s.projects, id)
	return nil
}
