package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
)

// DashboardHandler serves the landing-screen summary.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the handler with the use case.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Dashboard summary
// @Description  Entity counts plus this month's revenue figures.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.DashboardSummaryDTO}
// @Failure      500  {object}  dto.Response
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}
