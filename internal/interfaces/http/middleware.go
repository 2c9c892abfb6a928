package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/infrastructure/observability"
	"github.com/cindychcheng/paintpro-manager-sub001/pkg/logger"
)

// RequestLogger logs every request with zerolog and feeds the Prometheus
// counters. Route templates (not raw paths) label the metrics so IDs do not
// explode the cardinality.
func RequestLogger(log *logger.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fiberErr *fiber.Error
		if err != nil {
			status = fiber.StatusInternalServerError
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		route := c.Route().Path
		elapsed := time.Since(start)
		metrics.ObserveRequest(c.Method(), route, fmt.Sprintf("%dxx", status/100), elapsed)

		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", elapsed).
			Msg("request")
		return err
	}
}
