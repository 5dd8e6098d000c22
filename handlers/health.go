package handlers

import (
	"net/http"

	"tutorsched/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last Mongo and Redis probe.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "message": "tutorsched meeting service"})
}
