package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/infrastructure/observability"
)

// InvoiceHandler serves the invoice resource.
type InvoiceHandler struct {
	uc      *usecase.InvoiceUseCase
	pdfUC   *usecase.PDFUseCase
	metrics *observability.Metrics
}

// NewInvoiceHandler builds the handler with its use cases.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, pdfUC *usecase.PDFUseCase, metrics *observability.Metrics) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC, metrics: metrics}
}

// Create godoc
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Invoice fields"
// @Success      201   {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
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
// @Summary      Get an invoice with its areas
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "Invoice ID"
// @Success      200  {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "invoice not found")
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Replace the editable fields of an invoice
// @Description  The full editable field set is submitted; totals are
// @Description  recomputed from the areas unless manual_total pins them.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Invoice ID"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Editable fields"
// @Success      200   {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/invoices/{id} [patch]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
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
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        page    query  int     false  "Page"   default(1)
// @Param        limit   query  int     false  "Limit"  default(20)
// @Param        search  query  string  false  "Matches number, title and client name"
// @Success      200  {object}  dto.Response{data=dto.InvoiceListResponse}
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
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

// DownloadPDF godoc
// @Summary      Download the invoice as a PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Response
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	h.metrics.IncrPDFRendered()
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
