package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arkode/arkode-backend/api/http/presenter"
	"github.com/arkode/arkode-backend/pkg/project"
	"github.com/arkode/arkode-backend/pkg/workspace"
)

type ProjectHandler struct {
	uc project.UseCase
}

func NewProjectHandler(uc project.UseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

type createProjectRequest struct {
	WorkspaceID int64  `json:"workspace_id"`
	Name        string `json:"name"`
}

// Create adds a project to a workspace.
// @Summary Create project
// @Tags    projects
// @Accept  json
// @Produce json
// @Param   input body createProjectRequest true "project payload"
// @Security BearerAuth
// @Success 201 {object} project.Project
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req createProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Create(c.Context(), req.WorkspaceID, req.Name)
	if err != nil {
		var verr project.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, workspace.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "workspace not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to create project")
		}
	}
	return presenter.JSON(c, http.StatusCreated, p)
}

// List returns the projects of one workspace.
// @Summary List projects
// @Tags    projects
// @Produce json
// @Param   workspace_id query int true "workspace id"
// @Security BearerAuth
// @Success 200 {array} project.Project
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	workspaceID, err := strconv.ParseInt(c.Query("workspace_id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "workspace_id is required")
	}
	limit, offset := parseLimitOffset(c, 50)
	ps, err := h.uc.ListByWorkspace(c.Context(), workspaceID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list projects")
	}
	if ps == nil {
		ps = []project.Project{}
	}
	return presenter.JSON(c, http.StatusOK, ps)
}

// GetByID returns project details with stats counters.
// @Summary Get project
// @Tags    projects
// @Produce json
// @Param   id path int true "project id"
// @Security BearerAuth
// @Success 200 {object} project.Details
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid project id")
	}
	details, err := h.uc.GetDetails(c.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "project not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get project")
	}
	return presenter.JSON(c, http.StatusOK, details)
}
