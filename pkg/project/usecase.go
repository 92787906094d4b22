package project

import (
	"context"
	"strings"
	"time"

	"github.com/arkode/arkode-backend/pkg/workspace"
)

// UseCase exposes project application operations.
type UseCase interface {
	Create(ctx context.Context, workspaceID int64, name string) (Project, error)
	ListByWorkspace(ctx context.Context, workspaceID int64, limit, offset int) ([]Project, error)
	GetDetails(ctx context.Context, id int64) (Details, error)
}

type service struct {
	repo       Repository
	workspaces workspace.Repository
}

func NewService(repo Repository, workspaces workspace.Repository) UseCase {
	return &service{repo: repo, workspaces: workspaces}
}

func (s *service) Create(ctx context.Context, workspaceID int64, name string) (Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Project{}, ErrValidation("name is required")
	}
	if _, err := s.workspaces.GetByID(ctx, workspaceID); err != nil {
		return Project{}, err
	}
	p := Project{
		WorkspaceID: workspaceID,
		Name:        name,
		Status:      StatusDraft,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *service) ListByWorkspace(ctx context.Context, workspaceID int64, limit, offset int) ([]Project, error) {
	return s.repo.ListByWorkspace(ctx, workspaceID, limit, offset)
}

func (s *service) GetDetails(ctx context.Context, id int64) (Details, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Details{}, err
	}
	return Details{
		Project: p,
		Stats:   map[string]int{"stories": 0, "tasks": 0},
	}, nil
}

// ErrValidation is a simple input validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
