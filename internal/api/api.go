package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mixmaster/backend/internal/service"
)

// HealthChecker reports whether the store finished loading.
type HealthChecker interface {
	Ready() <-chan struct{}
}

// SetupAPI mounts every handler under /api/v1.
func SetupAPI(router *gin.Engine, mix service.IMixService, health HealthChecker, createGuard ...gin.HandlerFunc) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", Health(health))
		NewRecipeHandler(mix, createGuard...).RegisterRoutes(v1)
		NewProfileHandler(mix).RegisterRoutes(v1)
	}
}

// Health answers 200 with "ok" once hydrated and "loading" before.
func Health(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		if health != nil {
			select {
			case <-health.Ready():
			default:
				status = "loading"
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": status})
	}
}
