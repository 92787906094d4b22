package project

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("project not found")

// Status values a project moves through.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusDone   = "done"
)

// Project belongs to a workspace.
type Project struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Details adds per-project counters to the base entity. The counters stay at
// zero until story/task tracking is wired to real tables.
type Details struct {
	Project
	Stats map[string]int `json:"stats"`
}

// Repository is the persistence port for projects.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	ListByWorkspace(ctx context.Context, workspaceID int64, limit, offset int) ([]Project, error)
	GetByID(ctx context.Context, id int64) (Project, error)
}

// ValidStatus reports whether s is one of the allowed project states.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusDone:
		return true
	}
	return false
}
