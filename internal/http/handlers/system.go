package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "busexcursion/internal/config"
	"busexcursion/internal/seatlayout"
)

func (h *Handler) Health(c *gin.Context) {
	var err error
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		err = h.DB.PingContext(ctx)
	} else {
		err = intconfig.PingDB(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "message": "database tidak merespon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "layanan ekskursi berjalan"})
}

// StopColor answers GET /api/stops/color?name=.
func (h *Handler) StopColor(c *gin.Context) {
	name := c.Query("name")
	c.JSON(http.StatusOK, gin.H{"name": name, "color": seatlayout.StopColor(name)})
}
