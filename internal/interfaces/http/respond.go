package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
)

// Every /api endpoint answers with the dto.Response envelope; these helpers
// keep the handlers to one line per outcome.

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.OK(data))
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.Fail(msg))
}

// failErr maps domain errors onto HTTP statuses. The error text goes out
// verbatim in the envelope's error field.
func failErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrLogoTooLarge),
		errors.Is(err, domain.ErrLogoBadType):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		status = fiber.StatusConflict
	}
	return fail(c, status, err.Error())
}
