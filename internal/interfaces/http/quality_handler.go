package http

import "github.com/gofiber/fiber/v2"

// QualityHandler answers the quality-checklist routes. Checklist storage is
// not implemented yet; both verbs return an empty list so existing frontends
// render an empty checklist instead of failing.
type QualityHandler struct{}

// NewQualityHandler builds the handler.
func NewQualityHandler() *QualityHandler {
	return &QualityHandler{}
}

// List godoc
// @Summary      List quality checklists
// @Tags         quality
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]string}
// @Router       /api/quality [get]
func (h *QualityHandler) List(c *fiber.Ctx) error {
	return ok(c, []any{})
}

// Create godoc
// @Summary      Record a quality checklist
// @Tags         quality
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]string}
// @Router       /api/quality [post]
func (h *QualityHandler) Create(c *fiber.Ctx) error {
	return ok(c, []any{})
}
