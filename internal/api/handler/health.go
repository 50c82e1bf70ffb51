package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// ReadinessChecker reports whether a backing dependency can serve requests.
// *pgxpool.Pool satisfies it when the registry runs on Postgres.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checker ReadinessChecker
}

// NewHealthHandler creates a health handler. checker may be nil when the
// configured registry has no backing store to probe.
func NewHealthHandler(checker ReadinessChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  "ok",
		Version: "0.1.0",
	})
}

func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.checker != nil {
		if err := h.checker.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{
				Status: "unavailable",
			})
		}
	}

	return c.JSON(HealthResponse{
		Status: "ready",
	})
}
