package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/arkode/arkode-backend/pkg/workspace"
)

// WorkspaceRepository implements workspace.Repository backed by PostgreSQL.
type WorkspaceRepository struct {
	db DB
}

func NewWorkspaceRepository(db DB) (*WorkspaceRepository, error) {
	repo := &WorkspaceRepository{db: db}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *WorkspaceRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS workspaces (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *WorkspaceRepository) Create(ctx context.Context, w *workspace.Workspace) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO workspaces (name, slug, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, w.Name, w.Slug, w.CreatedAt)
	if err := row.Scan(&w.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return workspace.ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *WorkspaceRepository) List(ctx context.Context, limit, offset int) ([]workspace.Workspace, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, created_at
		FROM workspaces ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []workspace.Workspace
	for rows.Next() {
		var w workspace.Workspace
		var createdAt time.Time
		if err := rows.Scan(&w.ID, &w.Name, &w.Slug, &createdAt); err != nil {
			return nil, err
		}
		w.CreatedAt = createdAt.UTC()
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WorkspaceRepository) GetByID(ctx context.Context, id int64) (workspace.Workspace, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, slug, created_at
		FROM workspaces WHERE id = $1
	`, id)
	var w workspace.Workspace
	var createdAt time.Time
	if err := row.Scan(&w.ID, &w.Name, &w.Slug, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workspace.Workspace{}, workspace.ErrNotFound
		}
		return workspace.Workspace{}, err
	}
	w.CreatedAt = createdAt.UTC()
	return w, nil
}
