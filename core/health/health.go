package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/mvc/core/handler"
	"github.com/dmitrymomot/mvc/core/logger"
	"github.com/dmitrymomot/mvc/core/response"
)

// Check reports whether a dependency is available.
type Check func(ctx context.Context) error

// Controller serves health probes as mvc endpoints.
type Controller struct {
	log    *slog.Logger
	checks []Check
}

// NewController creates a controller running checks on readiness probes.
func NewController(log *slog.Logger, checks ...Check) *Controller {
	if log == nil {
		log = logger.Discard()
	}
	return &Controller{log: log, checks: checks}
}

// Live indicates the process is running. No dependency checks.
func (c *Controller) Live() handler.Response {
	return response.String("ALIVE")
}

// Ready returns "READY" when every check passes, 503 Service Unavailable otherwise.
func (c *Controller) Ready(ctx context.Context) error {
	for _, check := range c.checks {
		if err := check(ctx); err != nil {
			c.log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
			return response.ErrServiceUnavailable
		}
	}
	return nil
}
