package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// addPingRoutes exposes a liveness probe that also reports the server time,
// which the sales screen polls for its clock display.
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
}
