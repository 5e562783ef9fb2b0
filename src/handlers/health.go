package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tuladigital/tula-directory/src/database"
)

var startTime = time.Now()

// HealthHandler handles health check requests
type HealthHandler struct {
	db *database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// HandleHealth returns liveness status with a DB check
func (hh *HealthHandler) HandleHealth(c *gin.Context) {
	if err := hh.db.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"uptime": time.Since(startTime).String(),
	})
}
