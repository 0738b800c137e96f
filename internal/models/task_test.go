package models_test

import (
	"testing"

	"taskboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestTaskType_Label тестирует метки типов задач
func TestTaskType_Label(t *testing.T) {
	tests := []struct {
		taskType models.TaskType
		label    string
	}{
		{models.TypeTask, "Task"},
		{models.TypeFeature, "Feature"},
		{models.TypeProject, "Project"},
		{models.TypeIssue, "Issue"},
	}

	for _, tt := range tests {
		t.Run(string(tt.taskType), func(t *testing.T) {
			assert.Equal(t, tt.label, tt.taskType.Label())
			assert.True(t, tt.taskType.Valid())
		})
	}

	t.Run("unknown code falls back to raw value", func(t *testing.T) {
		unknown := models.TaskType("XXXX")
		assert.Equal(t, "XXXX", unknown.Label())
		assert.False(t, unknown.Valid())
	})
}

// TestTaskStatus_Label тестирует метки статусов
func TestTaskStatus_Label(t *testing.T) {
	tests := []struct {
		status models.TaskStatus
		label  string
	}{
		{models.StatusToDo, "To Do"},
		{models.StatusInProgress, "In Progress"},
		{models.StatusReviewing, "Reviewing"},
		{models.StatusComplete, "Complete"},
		{models.StatusRejected, "Rejected"},
		{models.StatusCancelled, "Cancelled"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.label, tt.status.Label())
			assert.True(t, tt.status.Valid())
		})
	}

	t.Run("unknown status is invalid", func(t *testing.T) {
		assert.False(t, models.TaskStatus("NEW").Valid())
	})
}

// TestParseTaskSort тестирует разбор параметра сортировки
func TestParseTaskSort(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected models.TaskSort
	}{
		{"created", "created", models.SortCreated},
		{"edited", "edited", models.SortEdited},
		{"empty falls back to created", "", models.SortCreated},
		{"unknown falls back to created", "priority", models.SortCreated},
		{"case sensitive", "Edited", models.SortCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, models.ParseTaskSort(tt.raw))
		})
	}
}

// TestTask_NeedsRepair тестирует условие починки инварианта
func TestTask_NeedsRepair(t *testing.T) {
	projectID := uuid.New()

	t.Run("project task with project reference", func(t *testing.T) {
		task := &models.Task{Type: models.TypeProject, Project: &projectID}
		assert.True(t, task.NeedsRepair())
	})

	t.Run("project task without project reference", func(t *testing.T) {
		task := &models.Task{Type: models.TypeProject}
		assert.False(t, task.NeedsRepair())
	})

	t.Run("regular task with project reference", func(t *testing.T) {
		task := &models.Task{Type: models.TypeFeature, Project: &projectID}
		assert.False(t, task.NeedsRepair())
	})
}

// TestValidUsername тестирует правила имени пользователя
func TestValidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"simple", "alice", true},
		{"with digits and dash", "user-42", true},
		{"with underscore", "under_score", true},
		{"too short", "ab", false},
		{"too long", "abcdefghijklmnopqrstuvwxy", false},
		{"spaces", "bad name", false},
		{"cyrillic", "пользователь", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, models.ValidUsername(tt.username))
		})
	}
}

// TestTaskTypes_Order проверяет фиксированный порядок для клиентских форм
func TestTaskTypes_Order(t *testing.T) {
	types := models.TaskTypes()
	assert.Equal(t, []models.TaskType{
		models.TypeTask, models.TypeFeature, models.TypeProject, models.TypeIssue,
	}, types)

	statuses := models.TaskStatuses()
	assert.Len(t, statuses, 6)
	assert.Equal(t, models.StatusToDo, statuses[0])
}
