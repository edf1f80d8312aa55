package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vibemix/playlist-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports overall service health, token store connectivity, and whether the playlist pipeline is ready to serve requests
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      503 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		code := http.StatusOK

		dbStatus := getDatabaseStatus(deps)
		response["database"] = dbStatus
		if dbStatus["status"] == "unhealthy" {
			response["status"] = "degraded"
			code = http.StatusServiceUnavailable
		}

		// The pipeline is only ready once an authorized video client exists.
		// Not ready is not an outage: /generate reports 503 on its own, so
		// health stays 200 and just surfaces the flag.
		ready := deps != nil && deps.Pipeline != nil && deps.Pipeline.Ready()
		response["pipeline"] = gin.H{"ready": ready}

		c.JSON(code, response)
	}
}

// getDatabaseStatus returns the token store connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
