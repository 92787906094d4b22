package workspace

import (
	"context"
	"strings"
	"time"
)

// UseCase exposes workspace application operations.
type UseCase interface {
	Create(ctx context.Context, name string) (Workspace, error)
	List(ctx context.Context, limit, offset int) ([]Workspace, error)
	GetByID(ctx context.Context, id int64) (Workspace, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, name string) (Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Workspace{}, ErrValidation("name is required")
	}
	slug := Slugify(name)
	if slug == "" {
		return Workspace{}, ErrValidation("name must contain letters or digits")
	}
	w := Workspace{
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &w); err != nil {
		return Workspace{}, err
	}
	return w, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Workspace, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) GetByID(ctx context.Context, id int64) (Workspace, error) {
	return s.repo.GetByID(ctx, id)
}

// ErrValidation is a simple input validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
