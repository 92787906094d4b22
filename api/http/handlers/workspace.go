package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/arkode/arkode-backend/api/http/presenter"
	"github.com/arkode/arkode-backend/pkg/workspace"
)

type WorkspaceHandler struct {
	uc workspace.UseCase
}

func NewWorkspaceHandler(uc workspace.UseCase) *WorkspaceHandler {
	return &WorkspaceHandler{uc: uc}
}

type createWorkspaceRequest struct {
	Name string `json:"name"`
}

// Create makes a new workspace with a derived unique slug.
// @Summary Create workspace
// @Tags    workspaces
// @Accept  json
// @Produce json
// @Param   input body createWorkspaceRequest true "workspace payload"
// @Security BearerAuth
// @Success 201 {object} workspace.Workspace
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /workspaces [post]
func (h *WorkspaceHandler) Create(c *fiber.Ctx) error {
	var req createWorkspaceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	w, err := h.uc.Create(c.Context(), req.Name)
	if err != nil {
		var verr workspace.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, workspace.ErrSlugTaken):
			return presenter.Error(c, http.StatusConflict, "workspace already exists")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to create workspace")
		}
	}
	return presenter.JSON(c, http.StatusCreated, w)
}

// List returns all workspaces.
// @Summary List workspaces
// @Tags    workspaces
// @Produce json
// @Security BearerAuth
// @Success 200 {array} workspace.Workspace
// @Router  /workspaces [get]
func (h *WorkspaceHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	ws, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list workspaces")
	}
	if ws == nil {
		ws = []workspace.Workspace{}
	}
	return presenter.JSON(c, http.StatusOK, ws)
}
