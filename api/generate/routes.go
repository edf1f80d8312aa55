package generate

import (
	"github.com/gin-gonic/gin"
	"github.com/vibemix/playlist-api/api/types"
)

// RegisterRoutes registers playlist generation routes on the given group
func RegisterRoutes(group gin.IRoutes, deps *types.Dependencies) {
	group.POST("", Post(deps))
}
