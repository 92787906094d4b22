package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkode/arkode-backend/pkg/workspace"
)

func newWorkspaceRepo(t *testing.T) (*WorkspaceRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS workspaces").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	repo, err := NewWorkspaceRepository(mock)
	require.NoError(t, err)
	return repo, mock
}

func TestWorkspaceRepository_Create_SlugConflict(t *testing.T) {
	repo, mock := newWorkspaceRepo(t)

	mock.ExpectQuery("INSERT INTO workspaces").
		WithArgs("ARKODE Studio", "arkode-studio", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	w := workspace.Workspace{Name: "ARKODE Studio", Slug: "arkode-studio", CreatedAt: time.Now()}
	err := repo.Create(context.Background(), &w)
	assert.ErrorIs(t, err, workspace.ErrSlugTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkspaceRepository_List(t *testing.T) {
	repo, mock := newWorkspaceRepo(t)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, name, slug, created_at").
		WithArgs(50, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "slug", "created_at"}).
			AddRow(int64(1), "ARKODE Studio", "arkode-studio", created).
			AddRow(int64(2), "Client Projects", "client-projects", created))

	ws, err := repo.List(context.Background(), 50, 0)
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, "arkode-studio", ws[0].Slug)
	assert.Equal(t, int64(2), ws[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
