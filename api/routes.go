package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vibemix/playlist-api/api/generate"
	"github.com/vibemix/playlist-api/api/health"
	"github.com/vibemix/playlist-api/api/types"
	"github.com/vibemix/playlist-api/api/version"
	_ "github.com/vibemix/playlist-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Each generation runs a whole chain of upstream calls, so the per-client
	// limit is tight (1 req/s, burst of 2)
	generateLimiter := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2)

	generateGroup := v1.Group("/generate")
	generateGroup.Use(generateLimiter)
	generate.RegisterRoutes(generateGroup, deps)

	// Root-level alias kept for clients of the original deployment
	engine.POST("/generate", generateLimiter, generate.Post(deps))

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
