package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/infrastructure/observability"
)

// SettingsHandler serves the company profile and the logo upload.
type SettingsHandler struct {
	uc      *usecase.SettingsUseCase
	metrics *observability.Metrics
}

// NewSettingsHandler builds the handler with its dependencies.
func NewSettingsHandler(uc *usecase.SettingsUseCase, metrics *observability.Metrics) *SettingsHandler {
	return &SettingsHandler{uc: uc, metrics: metrics}
}

// Get godoc
// @Summary      Get company settings
// @Description  Data is null until the first save.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.SettingsResponse}
// @Router       /api/company-settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	// A typed nil marshals as data:null until the first save.
	return ok(c, out)
}

// Save godoc
// @Summary      Save company settings
// @Description  Creates the profile on first save, overwrites it afterwards.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSettingsRequest  true  "Company profile"
// @Success      200   {object}  dto.Response{data=dto.SettingsResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/company-settings [post]
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	out, err := h.uc.Save(c.Context(), in)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// UploadLogo godoc
// @Summary      Upload a company logo
// @Description  Accepts jpeg, jpg, png and gif up to 5MB. Returns a flat
// @Description  {success, url} body instead of the usual envelope.
// @Tags         settings
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file  true  "Image file"
// @Success      200   {object}  dto.UploadLogoResponse
// @Failure      400   {object}  dto.Response
// @Router       /api/upload-logo [post]
func (h *SettingsHandler) UploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "logo file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "logo file is required")
	}
	defer f.Close()

	url, err := h.uc.UploadLogo(c.Context(), fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		return failErr(c, err)
	}
	h.metrics.IncrLogoUploaded()
	return c.Status(fiber.StatusOK).JSON(dto.UploadLogoResponse{Success: true, URL: url})
}
