package derive

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/models"

	"github.com/google/uuid"
)

type ActivityStore interface {
	CreateActivity(ctx context.Context, activity *models.Activity) error
}

// ActivityDeriver пишет запись в публичную ленту на создание задачи,
// создание комментария и смену статуса задачи
type ActivityDeriver struct {
	activity ActivityStore
}

func NewActivityDeriver(activity ActivityStore) *ActivityDeriver {
	return &ActivityDeriver{activity: activity}
}

func (d *ActivityDeriver) Name() string {
	return "activity"
}

func (d *ActivityDeriver) TaskSaved(ctx context.Context, ev TaskEvent) error {
	var activityType models.ActivityType
	switch {
	case ev.Created:
		activityType = models.ActivityNewTask
	case ev.OldStatus != ev.Task.Status:
		activityType = models.ActivityTaskStatusChange
	default:
		// обычное редактирование ленту не трогает
		return nil
	}

	taskID := ev.Task.ID
	entry := &models.Activity{
		ID:        uuid.New(),
		User:      ev.Actor,
		Type:      activityType,
		Task:      &taskID,
		CreatedAt: time.Now(),
	}

	if err := d.activity.CreateActivity(ctx, entry); err != nil {
		return fmt.Errorf("создание записи активности: %w", err)
	}
	return nil
}

func (d *ActivityDeriver) CommentSaved(ctx context.Context, ev CommentEvent) error {
	taskID := ev.Comment.Task
	entry := &models.Activity{
		ID:        uuid.New(),
		User:      ev.Comment.Poster,
		Type:      models.ActivityNewComment,
		Task:      &taskID,
		CreatedAt: time.Now(),
	}

	if err := d.activity.CreateActivity(ctx, entry); err != nil {
		return fmt.Errorf("создание записи активности: %w", err)
	}
	return nil
}
