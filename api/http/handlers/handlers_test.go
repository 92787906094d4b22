package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	apihttp "github.com/arkode/arkode-backend/api/http"
	"github.com/arkode/arkode-backend/api/http/handlers"
	"github.com/arkode/arkode-backend/pkg/auth"
	"github.com/arkode/arkode-backend/pkg/health"
	"github.com/arkode/arkode-backend/pkg/orion"
	"github.com/arkode/arkode-backend/pkg/project"
	"github.com/arkode/arkode-backend/pkg/security/jwt"
	"github.com/arkode/arkode-backend/pkg/workspace"
)

const (
	testSecret = "test-secret-key-at-least-32-chars-long"
	testIssuer = "arkode-backend"
)

// In-memory repositories so the full HTTP surface can be exercised without
// Postgres.

type memUserRepo struct {
	users  map[string]auth.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]auth.User{}, nextID: 1}
}

func (m *memUserRepo) Create(_ context.Context, user *auth.User) error {
	key := strings.ToLower(user.Email)
	if _, ok := m.users[key]; ok {
		return auth.ErrEmailTaken
	}
	user.ID = m.nextID
	m.nextID++
	m.users[key] = *user
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (auth.User, error) {
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

type memWorkspaceRepo struct {
	items []workspace.Workspace
}

func (m *memWorkspaceRepo) Create(_ context.Context, w *workspace.Workspace) error {
	for _, it := range m.items {
		if it.Slug == w.Slug {
			return workspace.ErrSlugTaken
		}
	}
	w.ID = int64(len(m.items) + 1)
	m.items = append(m.items, *w)
	return nil
}

func (m *memWorkspaceRepo) List(_ context.Context, limit, offset int) ([]workspace.Workspace, error) {
	if offset >= len(m.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[offset:end], nil
}

func (m *memWorkspaceRepo) GetByID(_ context.Context, id int64) (workspace.Workspace, error) {
	for _, w := range m.items {
		if w.ID == id {
			return w, nil
		}
	}
	return workspace.Workspace{}, workspace.ErrNotFound
}

type memProjectRepo struct {
	items []project.Project
}

func (m *memProjectRepo) Create(_ context.Context, p *project.Project) error {
	p.ID = int64(len(m.items) + 1)
	m.items = append(m.items, *p)
	return nil
}

func (m *memProjectRepo) ListByWorkspace(_ context.Context, workspaceID int64, _, _ int) ([]project.Project, error) {
	var out []project.Project
	for _, p := range m.items {
		if p.WorkspaceID == workspaceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProjectRepo) GetByID(_ context.Context, id int64) (project.Project, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, project.ErrNotFound
}

// newTestApp wires the real router with real services over in-memory storage.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()

	issuer := jwt.NewIssuer(testSecret, testIssuer, 30*time.Minute)
	verifier := jwt.NewVerifier(testSecret, testIssuer)

	authUC := auth.NewService(newMemUserRepo(), auth.NewBcryptHasher(), issuer)
	wsRepo := &memWorkspaceRepo{}

	apihttp.Register(
		app,
		handlers.NewAuthHandler(authUC),
		handlers.NewHealthHandler(health.NewService()),
		handlers.NewWorkspaceHandler(workspace.NewService(wsRepo)),
		handlers.NewProjectHandler(project.NewService(&memProjectRepo{}, wsRepo)),
		handlers.NewOrionHandler(orion.NewService(nil, "")),
		handlers.NewStubHandler(),
		jwt.NewAuthMiddleware(verifier),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}
