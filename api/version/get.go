package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Service info
// @Description  Returns service name, version and status
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "VibeMix Playlist API",
			"version":     "1.0.0",
			"description": "Turns song lists and vibe descriptions into YouTube playlists",
			"status":      "running",
		})
	}
}
