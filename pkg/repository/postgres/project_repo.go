package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/arkode/arkode-backend/pkg/project"
)

// ProjectRepository implements project.Repository backed by PostgreSQL.
type ProjectRepository struct {
	db DB
}

func NewProjectRepository(db DB) (*ProjectRepository, error) {
	repo := &ProjectRepository{db: db}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ProjectRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id BIGSERIAL PRIMARY KEY,
			workspace_id BIGINT NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'draft',
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_projects_workspace ON projects(workspace_id);
	`)
	return err
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO projects (workspace_id, name, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.WorkspaceID, p.Name, p.Status, p.CreatedAt)
	return row.Scan(&p.ID)
}

func (r *ProjectRepository) ListByWorkspace(ctx context.Context, workspaceID int64, limit, offset int) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, workspace_id, name, status, created_at
		FROM projects WHERE workspace_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, workspaceID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []project.Project
	for rows.Next() {
		var p project.Project
		var createdAt time.Time
		if err := rows.Scan(&p.ID, &p.WorkspaceID, &p.Name, &p.Status, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = createdAt.UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (project.Project, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, workspace_id, name, status, created_at
		FROM projects WHERE id = $1
	`, id)
	var p project.Project
	var createdAt time.Time
	if err := row.Scan(&p.ID, &p.WorkspaceID, &p.Name, &p.Status, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	p.CreatedAt = createdAt.UTC()
	return p, nil
}
