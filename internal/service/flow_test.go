package service_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/derive"
	"taskboard/internal/models"
	"taskboard/internal/repository/inmemory"
	"taskboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// полная связка сервисов поверх хранилища в памяти,
// как её собирает приложение
type fixture struct {
	storage  *inmemory.Storage
	engine   *derive.Engine
	tasks    service.TaskService
	projects service.ProjectService
	comments service.CommentService
	users    service.UserService
	feed     service.FeedService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	storage := inmemory.New()
	engine := derive.NewEngine(storage,
		derive.NewNotificationDeriver(storage, storage, storage),
		derive.NewActivityDeriver(storage),
	)
	authService := auth.New("test-secret", time.Hour)

	return &fixture{
		storage:  storage,
		engine:   engine,
		tasks:    service.NewTaskService(storage, storage, engine),
		projects: service.NewProjectService(storage),
		comments: service.NewCommentService(storage, storage, engine),
		users:    service.NewUserService(storage, authService),
		feed:     service.NewFeedService(storage, storage, storage),
	}
}

// TestFlow_CommentNotifiesTaskAuthor - комментарий рождает уведомление
// автору задачи и две записи в ленте
func TestFlow_CommentNotifiesTaskAuthor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice, err := f.users.Register(ctx, "alice", "secret123")
	require.NoError(t, err)
	bob, err := f.users.Register(ctx, "bob", "secret123")
	require.NoError(t, err)

	task, err := f.tasks.CreateTask(ctx, alice.ID, service.CreateTaskInput{
		Summary: "Fix login page",
		Type:    models.TypeIssue,
	})
	require.NoError(t, err)

	_, err = f.comments.CreateComment(ctx, bob.ID, task.ID, "looks broken on mobile")
	require.NoError(t, err)

	notifications, err := f.feed.NotificationsFor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "bob has posted a comment on your task: Fix login page", notifications[0].Message)
	assert.Equal(t, models.NotificationMessage, notifications[0].Type)
	assert.False(t, notifications[0].IsRead)
	assert.Empty(t, notifications[0].Location)

	// комментатор сам себе уведомление не получает
	own, err := f.feed.NotificationsFor(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, own)

	// лента: создание задачи за alice, комментарий за bob
	aliceFeed, err := f.feed.ActivityFor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceFeed, 1)
	assert.Equal(t, models.ActivityNewTask, aliceFeed[0].Type)

	bobFeed, err := f.feed.ActivityFor(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobFeed, 1)
	assert.Equal(t, models.ActivityNewComment, bobFeed[0].Type)
}

// TestFlow_StatusChangeHitsTheFeed - смена статуса попадает в ленту,
// обычная правка нет
func TestFlow_StatusChangeHitsTheFeed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice, err := f.users.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	task, err := f.tasks.CreateTask(ctx, alice.ID, service.CreateTaskInput{
		Summary: "Compose soundtrack",
	})
	require.NoError(t, err)

	_, err = f.tasks.UpdateTask(ctx, task.ID, alice.ID, models.WithDescription("just a note"))
	require.NoError(t, err)

	_, err = f.tasks.UpdateTask(ctx, task.ID, alice.ID, models.WithStatus(models.StatusComplete))
	require.NoError(t, err)

	feed, err := f.feed.ActivityFor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, feed, 2)

	types := []models.ActivityType{feed[0].Type, feed[1].Type}
	assert.Contains(t, types, models.ActivityNewTask)
	assert.Contains(t, types, models.ActivityTaskStatusChange)
}

// TestFlow_ProjectTaskRepair - задача типа Project со ссылкой на проект
// чинится фоновым циклом
func TestFlow_ProjectTaskRepair(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := newFixture(t)
	go f.engine.Start(ctx)

	alice, err := f.users.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, err = f.projects.CreateProject(ctx, "Rhythm Game", "", models.ProjectGame)
	require.NoError(t, err)

	task, err := f.tasks.CreateTask(ctx, alice.ID, service.CreateTaskInput{
		Summary:     "Rhythm Game",
		Type:        models.TypeProject,
		ProjectName: "Rhythm Game",
	})
	require.NoError(t, err)
	require.NotNil(t, task.Project)

	assert.Eventually(t, func() bool {
		stored, err := f.storage.GetTaskByID(ctx, task.ID)
		return err == nil && stored.Project == nil
	}, 2*time.Second, 10*time.Millisecond, "поле project так и не сброшено")
}

// TestFlow_TaskUsesProjectName - имя проекта разрешается при создании,
// переименование проекта ссылку не меняет
func TestFlow_TaskUsesProjectName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice, err := f.users.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	project, err := f.projects.CreateProject(ctx, "Acme Site", "", models.ProjectWebsite)
	require.NoError(t, err)

	task, err := f.tasks.CreateTask(ctx, alice.ID, service.CreateTaskInput{
		Summary:     "Deploy landing page",
		Type:        models.TypeFeature,
		ProjectName: "Acme Site",
	})
	require.NoError(t, err)
	require.NotNil(t, task.Project)
	assert.Equal(t, project.ID, *task.Project)

	name, err := f.projects.NameByID(ctx, *task.Project)
	require.NoError(t, err)
	assert.Equal(t, "Acme Site", name)
}
