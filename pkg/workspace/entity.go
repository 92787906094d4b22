package workspace

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrNotFound  = errors.New("workspace not found")
	ErrSlugTaken = errors.New("workspace slug already exists")
)

// Workspace groups projects under a unique slug.
type Workspace struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository is the persistence port for workspaces.
type Repository interface {
	// Create inserts the workspace and fills in the storage-assigned ID.
	// Returns ErrSlugTaken when the slug unique constraint fires.
	Create(ctx context.Context, w *Workspace) error
	List(ctx context.Context, limit, offset int) ([]Workspace, error)
	GetByID(ctx context.Context, id int64) (Workspace, error)
}

var slugCollapse = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a workspace name: lowercase with
// runs of non-alphanumerics collapsed to single dashes.
func Slugify(name string) string {
	s := slugCollapse.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(s, "-")
}
