// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	dbHealthy := c.dbHealthChecker != nil && c.dbHealthChecker()

	status := "ok"
	httpStatus := http.StatusOK
	if !dbHealthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	ctx.JSON(httpStatus, gin.H{
		"status":   status,
		"database": dbHealthy,
	})
}
