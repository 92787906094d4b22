package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arkode/arkode-backend/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. authMW guards
// everything under /api except the auth endpoints themselves.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	workspaces *handlers.WorkspaceHandler,
	projects *handlers.ProjectHandler,
	orion *handlers.OrionHandler,
	stubs *handlers.StubHandler,
	authMW fiber.Handler,
) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/", health.Root)
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")

	a := api.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Everything below requires a valid bearer token.
	ws := api.Group("/workspaces", authMW)
	ws.Get("/", workspaces.List)
	ws.Post("/", workspaces.Create)

	pr := api.Group("/projects", authMW)
	pr.Get("/", projects.List)
	pr.Post("/", projects.Create)
	pr.Get("/:id", projects.GetByID)

	api.Post("/orion/generate", authMW, orion.Generate)

	api.Get("/agency/leads", authMW, stubs.Leads)
	api.Get("/kb/articles", authMW, stubs.Articles)
	api.Get("/studio/", authMW, stubs.StudioProjects)
}
