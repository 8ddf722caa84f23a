package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Check probes one dependency; nil means healthy.
type Check func(ctx context.Context) error

type HealthHandler struct {
	driver string
	checks map[string]Check
}

// NewHealthHandler reports the store driver in use and runs checks on every
// request. checks may be nil.
func NewHealthHandler(driver string, checks map[string]Check) *HealthHandler {
	return &HealthHandler{driver: driver, checks: checks}
}

// Health reports liveness and the status of each dependency check. It is
// served at the root, outside the documented /api base path.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	deps := gin.H{}
	for _, name := range names {
		deps[name] = "connected"
		if err := h.checks[name](ctx); err != nil {
			deps[name] = "error"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, gin.H{
		"ok":    status == http.StatusOK,
		"store": h.driver,
		"deps":  deps,
	})
}
