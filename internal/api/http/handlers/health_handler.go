package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DependencyProbe checks one backing dependency for readiness.
type DependencyProbe struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	probes      []DependencyProbe
}

// NewHealthHandler returns a new handler instance. The memory backend has no
// probes; redis and postgres backends register one each.
func NewHealthHandler(serviceName, version string, probes ...DependencyProbe) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, probes: probes}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	for _, probe := range h.probes {
		if err := probe.Ping(ctx); err != nil {
			depStatus[probe.Name] = err.Error()
			ready = false
		} else {
			depStatus[probe.Name] = "ok"
		}
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"status":       "unavailable",
		"dependencies": depStatus,
	})
}
