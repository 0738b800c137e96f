package models

import "github.com/google/uuid"

// TaskOption - функция частичного обновления задачи,
// сервис применяет их к загруженному экземпляру перед записью
type TaskOption func(*Task)

func WithSummary(summary string) TaskOption {
	return func(t *Task) {
		t.Summary = summary
	}
}

func WithDescription(description string) TaskOption {
	return func(t *Task) {
		t.Description = description
	}
}

func WithType(taskType TaskType) TaskOption {
	return func(t *Task) {
		t.Type = taskType
	}
}

func WithStatus(status TaskStatus) TaskOption {
	return func(t *Task) {
		t.Status = status
	}
}

func WithProject(project *uuid.UUID) TaskOption {
	return func(t *Task) {
		t.Project = project
	}
}
