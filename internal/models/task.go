package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Summary     string     `json:"summary" db:"summary"`
	Description string     `json:"description" db:"description"`
	Author      uuid.UUID  `json:"author" db:"author"`
	Project     *uuid.UUID `json:"project,omitempty" db:"project"`
	Type        TaskType   `json:"type" db:"type"`
	Status      TaskStatus `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	EditedAt    time.Time  `json:"edited_at" db:"edited_at"`
}

type TaskType string
type TaskStatus string

const (
	TypeTask    TaskType = "TASK"
	TypeFeature TaskType = "FETR"
	TypeProject TaskType = "PROJ"
	TypeIssue   TaskType = "ISSU"
)

// канонический набор статусов: Reviewing ровно один, по умолчанию To Do
const (
	StatusToDo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "WORK"
	StatusReviewing  TaskStatus = "REVW"
	StatusComplete   TaskStatus = "DONE"
	StatusRejected   TaskStatus = "NOPE"
	StatusCancelled  TaskStatus = "STOP"
)

const (
	MaxSummaryLen     = 255
	MaxDescriptionLen = 1000
)

var taskTypeLabels = map[TaskType]string{
	TypeTask:    "Task",
	TypeFeature: "Feature",
	TypeProject: "Project",
	TypeIssue:   "Issue",
}

var taskStatusLabels = map[TaskStatus]string{
	StatusToDo:       "To Do",
	StatusInProgress: "In Progress",
	StatusReviewing:  "Reviewing",
	StatusComplete:   "Complete",
	StatusRejected:   "Rejected",
	StatusCancelled:  "Cancelled",
}

func (t TaskType) Label() string {
	if label, ok := taskTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t TaskType) Valid() bool {
	_, ok := taskTypeLabels[t]
	return ok
}

func (s TaskStatus) Label() string {
	if label, ok := taskStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s TaskStatus) Valid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

// порядок фиксирован для клиентских форм
func TaskTypes() []TaskType {
	return []TaskType{TypeTask, TypeFeature, TypeProject, TypeIssue}
}

func TaskStatuses() []TaskStatus {
	return []TaskStatus{StatusToDo, StatusInProgress, StatusReviewing, StatusComplete, StatusRejected, StatusCancelled}
}

// NeedsRepair - нарушен ли инвариант "задача типа Project не ссылается на проект"
func (t *Task) NeedsRepair() bool {
	return t.Type == TypeProject && t.Project != nil
}

type TaskSort string

const (
	SortCreated TaskSort = "created"
	SortEdited  TaskSort = "edited"
)

// ParseTaskSort - неизвестные значения молча откатываются к сортировке по created_at
func ParseTaskSort(s string) TaskSort {
	if TaskSort(s) == SortEdited {
		return SortEdited
	}
	return SortCreated
}
