package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/arkode/arkode-backend/api/http/presenter"
)

// StubHandler serves the not-yet-implemented content surfaces. Each endpoint
// returns the same static placeholder payload the original backend shipped.
type StubHandler struct{}

func NewStubHandler() *StubHandler { return &StubHandler{} }

// Leads lists agency leads.
// @Summary Agency leads (placeholder)
// @Tags    agency
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router  /agency/leads [get]
func (h *StubHandler) Leads(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Agency leads endpoint"})
}

// Articles lists knowledge base articles.
// @Summary Knowledge base articles (placeholder)
// @Tags    knowledge
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router  /kb/articles [get]
func (h *StubHandler) Articles(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Knowledge base articles"})
}

// StudioProjects lists studio projects.
// @Summary Studio projects (placeholder)
// @Tags    studio
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router  /studio [get]
func (h *StubHandler) StudioProjects(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Studio projects endpoint"})
}
