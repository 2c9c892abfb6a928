package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
)

// EstimateHandler serves the estimate resource.
type EstimateHandler struct {
	uc *usecase.EstimateUseCase
}

// NewEstimateHandler builds the handler with the use case.
func NewEstimateHandler(uc *usecase.EstimateUseCase) *EstimateHandler {
	return &EstimateHandler{uc: uc}
}

// Create godoc
// @Summary      Create an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEstimateRequest  true  "Estimate fields"
// @Success      201   {object}  dto.Response{data=dto.EstimateResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/estimates [post]
func (h *EstimateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// GetByID godoc
// @Summary      Get an estimate with its areas
// @Tags         estimates
// @Produce      json
// @Param        id   path  string  true  "Estimate ID"
// @Success      200  {object}  dto.Response{data=dto.EstimateResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/estimates/{id} [get]
func (h *EstimateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "estimate not found")
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Replace the editable fields of an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Estimate ID"
// @Param        body  body  dto.UpdateEstimateRequest  true  "Editable fields"
// @Success      200   {object}  dto.Response{data=dto.EstimateResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/estimates/{id} [patch]
func (h *EstimateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// List godoc
// @Summary      List estimates
// @Tags         estimates
// @Produce      json
// @Param        page    query  int     false  "Page"   default(1)
// @Param        limit   query  int     false  "Limit"  default(20)
// @Param        search  query  string  false  "Matches number, title and client name"
// @Success      200  {object}  dto.Response{data=dto.EstimateListResponse}
// @Router       /api/estimates [get]
func (h *EstimateHandler) List(c *fiber.Ctx) error {
	req := dto.PageRequest{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
		Search: c.Query("search"),
	}
	out, err := h.uc.List(c.Context(), req)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// Convert godoc
// @Summary      Convert an estimate into a draft invoice
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "Estimate ID"
// @Success      201  {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response  "Already converted or declined"
// @Router       /api/estimates/{id}/convert [post]
func (h *EstimateHandler) Convert(c *fiber.Ctx) error {
	out, err := h.uc.ConvertToInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}
