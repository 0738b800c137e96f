package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/derive"
	"taskboard/internal/models"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTaskRepository - мок репозитория задач
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) CreateTask(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasks(ctx context.Context, sortBy models.TaskSort) ([]*models.Task, error) {
	args := m.Called(ctx, sortBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectRepository - мок репозитория проектов
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) CreateProject(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]*models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository - мок репозитория комментариев
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListComments(ctx context.Context) ([]*models.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListCommentsByTask(ctx context.Context, taskID uuid.UUID) ([]*models.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

// MockUserRepository - мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockNotificationRepository - мок репозитория уведомлений
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByReceiver(ctx context.Context, receiver uuid.UUID) ([]*models.Notification, error) {
	args := m.Called(ctx, receiver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockActivityRepository - мок репозитория активности
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CreateActivity(ctx context.Context, activity *models.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListActivityByUser(ctx context.Context, userID uuid.UUID) ([]*models.Activity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Activity), args.Error(1)
}

var _ service.TaskRepository = (*MockTaskRepository)(nil)
var _ service.ProjectRepository = (*MockProjectRepository)(nil)
var _ service.CommentRepository = (*MockCommentRepository)(nil)
var _ service.UserRepository = (*MockUserRepository)(nil)
var _ service.NotificationRepository = (*MockNotificationRepository)(nil)
var _ service.ActivityRepository = (*MockActivityRepository)(nil)

// двигатель без обработчиков, производные эффекты тут не проверяются
func emptyEngine(tasks derive.TaskStore) *derive.Engine {
	return derive.NewEngine(tasks)
}

// TestTaskService_CreateTask тестирует создание задачи
func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()
	projectID := uuid.New()

	t.Run("success - project name resolved to reference", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockProjects := new(MockProjectRepository)

		mockProjects.On("GetProjectByName", mock.Anything, "Acme Site").Return(&models.Project{
			ID:   projectID,
			Name: "Acme Site",
		}, nil)
		mockTasks.On("CreateTask", mock.Anything, mock.MatchedBy(func(task *models.Task) bool {
			return task.Project != nil && *task.Project == projectID && task.Author == author
		})).Return(nil)

		svc := service.NewTaskService(mockTasks, mockProjects, emptyEngine(mockTasks))
		result, err := svc.CreateTask(ctx, author, service.CreateTaskInput{
			Summary:     "Deploy landing page",
			Type:        models.TypeFeature,
			ProjectName: "Acme Site",
		})

		require.NoError(t, err)
		assert.Equal(t, models.TypeFeature, result.Type)
		assert.Equal(t, models.StatusToDo, result.Status)
		mockTasks.AssertExpectations(t)
		mockProjects.AssertExpectations(t)
	})

	t.Run("error - unknown project name", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockProjects := new(MockProjectRepository)

		mockProjects.On("GetProjectByName", mock.Anything, "Ghost").Return(nil, repository.ErrNotFound)

		svc := service.NewTaskService(mockTasks, mockProjects, emptyEngine(mockTasks))
		_, err := svc.CreateTask(ctx, author, service.CreateTaskInput{
			Summary:     "Task for missing project",
			ProjectName: "Ghost",
		})

		require.Error(t, err)
		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "NOT_FOUND", businessErr.Code)
		mockTasks.AssertNotCalled(t, "CreateTask")
	})

	t.Run("success - empty project name means no lookup", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockProjects := new(MockProjectRepository)

		mockTasks.On("CreateTask", mock.Anything, mock.MatchedBy(func(task *models.Task) bool {
			return task.Project == nil
		})).Return(nil)

		svc := service.NewTaskService(mockTasks, mockProjects, emptyEngine(mockTasks))
		result, err := svc.CreateTask(ctx, author, service.CreateTaskInput{
			Summary: "Orphan task",
		})

		require.NoError(t, err)
		assert.Equal(t, models.TypeTask, result.Type)
		mockProjects.AssertNotCalled(t, "GetProjectByName")
	})

	t.Run("error - validation collects field map", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockProjects := new(MockProjectRepository)

		svc := service.NewTaskService(mockTasks, mockProjects, emptyEngine(mockTasks))
		_, err := svc.CreateTask(ctx, author, service.CreateTaskInput{
			Summary:     "",
			Description: strings.Repeat("x", models.MaxDescriptionLen+1),
			Type:        models.TaskType("XXXX"),
		})

		require.Error(t, err)
		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)
		assert.Contains(t, businessErr.Details, "summary")
		assert.Contains(t, businessErr.Details, "description")
		assert.Contains(t, businessErr.Details, "type")
		mockTasks.AssertNotCalled(t, "CreateTask")
	})
}

// TestTaskService_UpdateTask тестирует частичное обновление
func TestTaskService_UpdateTask(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New()
	actor := uuid.New()

	t.Run("success - options applied before save", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockProjects := new(MockProjectRepository)

		mockTasks.On("GetTaskByID", mock.Anything, taskID).Return(&models.Task{
			ID:      taskID,
			Summary: "Old summary",
			Type:    models.TypeTask,
			Status:  models.StatusToDo,
		}, nil)
		mockTasks.On("UpdateTask", mock.Anything, mock.MatchedBy(func(task *models.Task) bool {
			return task.Summary == "New summary" && task.Status == models.StatusComplete
		})).Return(nil)

		svc := service.NewTaskService(mockTasks, mockProjects, emptyEngine(mockTasks))
		result, err := svc.UpdateTask(ctx, taskID, actor,
			models.WithSummary("New summary"),
			models.WithStatus(models.StatusComplete),
		)

		require.NoError(t, err)
		assert.Equal(t, "New summary", result.Summary)
		mockTasks.AssertExpectations(t)
	})

	t.Run("error - task not found", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockProjects := new(MockProjectRepository)

		mockTasks.On("GetTaskByID", mock.Anything, taskID).Return(nil, repository.ErrNotFound)

		svc := service.NewTaskService(mockTasks, mockProjects, emptyEngine(mockTasks))
		_, err := svc.UpdateTask(ctx, taskID, actor, models.WithSummary("x"))

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "NOT_FOUND", businessErr.Code)
	})

	t.Run("error - update cannot blank the summary", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockProjects := new(MockProjectRepository)

		mockTasks.On("GetTaskByID", mock.Anything, taskID).Return(&models.Task{
			ID:      taskID,
			Summary: "Valid",
			Type:    models.TypeTask,
			Status:  models.StatusToDo,
		}, nil)

		svc := service.NewTaskService(mockTasks, mockProjects, emptyEngine(mockTasks))
		_, err := svc.UpdateTask(ctx, taskID, actor, models.WithSummary("   "))

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)
		mockTasks.AssertNotCalled(t, "UpdateTask")
	})
}

// TestCommentService_CreateComment тестирует создание комментария
func TestCommentService_CreateComment(t *testing.T) {
	ctx := context.Background()
	poster := uuid.New()
	taskID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockTasks := new(MockTaskRepository)

		mockTasks.On("GetTaskByID", mock.Anything, taskID).Return(&models.Task{ID: taskID}, nil)
		mockComments.On("CreateComment", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.Poster == poster && c.Task == taskID && c.Content == "First!"
		})).Return(nil)

		svc := service.NewCommentService(mockComments, mockTasks, emptyEngine(mockTasks))
		comment, err := svc.CreateComment(ctx, poster, taskID, "First!")

		require.NoError(t, err)
		assert.Equal(t, "First!", comment.Content)
		mockComments.AssertExpectations(t)
	})

	t.Run("error - empty content", func(t *testing.T) {
		svc := service.NewCommentService(new(MockCommentRepository), new(MockTaskRepository), emptyEngine(new(MockTaskRepository)))
		_, err := svc.CreateComment(ctx, poster, taskID, "   ")

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)
		assert.Contains(t, businessErr.Details, "content")
	})

	t.Run("error - content over limit", func(t *testing.T) {
		svc := service.NewCommentService(new(MockCommentRepository), new(MockTaskRepository), emptyEngine(new(MockTaskRepository)))
		_, err := svc.CreateComment(ctx, poster, taskID, strings.Repeat("a", models.MaxCommentLen+1))

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)
	})

	t.Run("error - task does not exist", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockTasks := new(MockTaskRepository)

		mockTasks.On("GetTaskByID", mock.Anything, taskID).Return(nil, repository.ErrNotFound)

		svc := service.NewCommentService(mockComments, mockTasks, emptyEngine(mockTasks))
		_, err := svc.CreateComment(ctx, poster, taskID, "dangling")

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "NOT_FOUND", businessErr.Code)
		mockComments.AssertNotCalled(t, "CreateComment")
	})
}

// TestUserService_Register тестирует регистрацию
func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	authService := auth.New("test-secret", time.Hour)

	t.Run("success", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "alice" && u.PasswordHash != "" && u.PasswordHash != "secret123"
		})).Return(nil)

		svc := service.NewUserService(mockUsers, authService)
		user, err := svc.Register(ctx, "alice", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		mockUsers.AssertExpectations(t)
	})

	t.Run("error - invalid username", func(t *testing.T) {
		svc := service.NewUserService(new(MockUserRepository), authService)
		_, err := svc.Register(ctx, "a b", "secret123")

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)
		assert.Contains(t, businessErr.Details, "username")
	})

	t.Run("error - empty password", func(t *testing.T) {
		svc := service.NewUserService(new(MockUserRepository), authService)
		_, err := svc.Register(ctx, "alice", "")

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Contains(t, businessErr.Details, "password")
	})

	t.Run("error - duplicate username", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("CreateUser", mock.Anything, mock.Anything).Return(repository.ErrAlreadyExists)

		svc := service.NewUserService(mockUsers, authService)
		_, err := svc.Register(ctx, "alice", "secret123")

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "ALREADY_EXISTS", businessErr.Code)
	})
}

// TestUserService_Login - неверное имя и неверный пароль неразличимы
func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	authService := auth.New("test-secret", time.Hour)

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: hash,
	}

	t.Run("success - token issued and verifiable", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("GetUserByUsername", mock.Anything, "alice").Return(storedUser, nil)

		svc := service.NewUserService(mockUsers, authService)
		token, err := svc.Login(ctx, "alice", "secret123")

		require.NoError(t, err)
		principal, err := authService.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, storedUser.ID, principal.ID)
		assert.Equal(t, "alice", principal.Username)
	})

	t.Run("unknown user and wrong password produce the same error", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)
		mockUsers.On("GetUserByUsername", mock.Anything, "alice").Return(storedUser, nil)

		svc := service.NewUserService(mockUsers, authService)

		_, errUnknown := svc.Login(ctx, "ghost", "secret123")
		_, errWrongPass := svc.Login(ctx, "alice", "wrong")

		require.Error(t, errUnknown)
		require.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})
}

// TestProjectService_CreateProject тестирует создание проекта
func TestProjectService_CreateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("success - type defaults to Other", func(t *testing.T) {
		mockProjects := new(MockProjectRepository)
		mockProjects.On("CreateProject", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
			return p.Name == "Side Quest" && p.Type == models.ProjectOther
		})).Return(nil)

		svc := service.NewProjectService(mockProjects)
		project, err := svc.CreateProject(ctx, "Side Quest", "", "")

		require.NoError(t, err)
		assert.Equal(t, models.ProjectOther, project.Type)
		mockProjects.AssertExpectations(t)
	})

	t.Run("error - duplicate name", func(t *testing.T) {
		mockProjects := new(MockProjectRepository)
		mockProjects.On("CreateProject", mock.Anything, mock.Anything).Return(repository.ErrAlreadyExists)

		svc := service.NewProjectService(mockProjects)
		_, err := svc.CreateProject(ctx, "Side Quest", "", models.ProjectGame)

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "ALREADY_EXISTS", businessErr.Code)
	})

	t.Run("error - unknown project type", func(t *testing.T) {
		svc := service.NewProjectService(new(MockProjectRepository))
		_, err := svc.CreateProject(ctx, "Side Quest", "", models.ProjectType("ZZZZ"))

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)
	})
}

// TestFeedService_NotificationsFor тестирует выдачу уведомлений
func TestFeedService_NotificationsFor(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockNotifications := new(MockNotificationRepository)
		mockActivity := new(MockActivityRepository)
		mockUsers := new(MockUserRepository)

		mockUsers.On("GetUserByUsername", mock.Anything, "alice").Return(&models.User{ID: userID, Username: "alice"}, nil)
		mockNotifications.On("ListNotificationsByReceiver", mock.Anything, userID).Return([]*models.Notification{
			{ID: uuid.New(), Receiver: userID, Message: "bob has posted a comment on your task: Fix login page"},
		}, nil)

		svc := service.NewFeedService(mockNotifications, mockActivity, mockUsers)
		notifications, err := svc.NotificationsFor(ctx, "alice")

		require.NoError(t, err)
		assert.Len(t, notifications, 1)
	})

	t.Run("error - unknown user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		svc := service.NewFeedService(new(MockNotificationRepository), new(MockActivityRepository), mockUsers)
		_, err := svc.NotificationsFor(ctx, "ghost")

		var businessErr *service.BusinessError
		require.True(t, errors.As(err, &businessErr))
		assert.Equal(t, "NOT_FOUND", businessErr.Code)
	})
}
