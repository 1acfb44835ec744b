package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db        Pinger
	startTime time.Time
	version   string
	log       *zap.Logger
}

func NewHealthHandler(db Pinger, startTime time.Time, version string, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: startTime,
		version:   version,
		log:       log,
	}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

// Health godoc
// @Summary      Liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  int64(uptime.Seconds()),
	})
}

// Ready godoc
// @Summary      Readiness
// @Description  Pings the database
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Error("readiness check: database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db": gin.H{
				"status": "down",
			},
		})
		return
	}

	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  int64(uptime.Seconds()),
		"db": gin.H{
			"status": "up",
		},
	})
}
