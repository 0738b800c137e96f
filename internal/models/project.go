package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Summary   string      `json:"summary" db:"summary"`
	Type      ProjectType `json:"type" db:"type"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

type ProjectType string

const (
	ProjectGame        ProjectType = "GAME"
	ProjectMusic       ProjectType = "MUSC"
	ProjectWebsite     ProjectType = "SITE"
	ProjectApplication ProjectType = "APPS"
	ProjectOther       ProjectType = "OTHR"
)

var projectTypeLabels = map[ProjectType]string{
	ProjectGame:        "Game",
	ProjectMusic:       "Music",
	ProjectWebsite:     "Website",
	ProjectApplication: "Application",
	ProjectOther:       "Other",
}

func (p ProjectType) Label() string {
	if label, ok := projectTypeLabels[p]; ok {
		return label
	}
	return string(p)
}

func (p ProjectType) Valid() bool {
	_, ok := projectTypeLabels[p]
	return ok
}
