package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nimbatransit/transit-tracker/internal/cache"
)

type HealthHandler struct {
	pool  *pgxpool.Pool
	cache *cache.Client
}

func NewHealthHandler(pool *pgxpool.Pool, cache *cache.Client) *HealthHandler {
	return &HealthHandler{pool: pool, cache: cache}
}

// Health reports database and, when configured, cache connectivity. The
// cache is best-effort: a dead Redis degrades the report but not the
// status.
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	status := http.StatusOK
	overall := "healthy"

	if err := h.pool.Ping(c.Request.Context()); err != nil {
		dbStatus = "disconnected"
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "connected"
		if err := h.cache.Health(c.Request.Context()); err != nil {
			cacheStatus = "disconnected"
		}
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
