package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/arkode/arkode-backend/api/http/presenter"
	"github.com/arkode/arkode-backend/pkg/orion"
)

type OrionHandler struct {
	uc orion.UseCase
}

func NewOrionHandler(uc orion.UseCase) *OrionHandler { return &OrionHandler{uc: uc} }

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// Generate produces a content draft with Orion AI.
// @Summary Generate content
// @Tags    orion
// @Accept  json
// @Produce json
// @Param   input body generateRequest false "generation prompt"
// @Security BearerAuth
// @Success 200 {object} orion.Draft
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /orion/generate [post]
func (h *OrionHandler) Generate(c *fiber.Ctx) error {
	var req generateRequest
	// An empty body is allowed; the service falls back to the placeholder.
	_ = c.BodyParser(&req)

	draft, err := h.uc.Generate(c.Context(), req.Prompt)
	if err != nil {
		return presenter.Error(c, http.StatusBadGateway, "content generation failed")
	}
	return presenter.JSON(c, http.StatusOK, draft)
}
