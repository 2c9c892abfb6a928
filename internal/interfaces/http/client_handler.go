package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
)

// ClientHandler serves the client roster.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler builds the handler with the use case.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Client fields"
// @Success      201   {object}  dto.Response{data=dto.ClientResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
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
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "Client ID"
// @Success      200  {object}  dto.Response{data=dto.ClientResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "client not found")
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Update a client's contact fields
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Client ID"
// @Param        body  body  dto.UpdateClientRequest  true  "Client fields"
// @Success      200   {object}  dto.Response{data=dto.ClientResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/clients/{id} [patch]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
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
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        page    query  int     false  "Page"   default(1)
// @Param        limit   query  int     false  "Limit"  default(20)
// @Param        search  query  string  false  "Matches name, email and phone"
// @Success      200  {object}  dto.Response{data=dto.ClientListResponse}
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
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
