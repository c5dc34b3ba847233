package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/axlmendieta/POS-APEX/internal/infrastructure/metrics"
)

// MetricsMiddleware registra conteo y latencia por método, ruta y estado.
// Usa la plantilla de la ruta registrada (no el path crudo) para mantener
// acotada la cardinalidad de las etiquetas.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
