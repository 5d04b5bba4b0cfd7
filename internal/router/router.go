package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/mixmaster/backend/internal/api"
	"github.com/pageza/mixmaster/backend/internal/logger"
	"github.com/pageza/mixmaster/backend/internal/middleware"
	"github.com/pageza/mixmaster/backend/internal/service"
)

// Config carries what the router needs to mount the API.
type Config struct {
	Mix         service.IMixService
	Health      api.HealthChecker
	Logger      *logger.Logger
	CORSOrigins []string
	// CreateLimiter guards recipe creation when set.
	CreateLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(cfg Config) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	router := gin.New()
	router.Use(
		middleware.AssignRequestID(),
		middleware.RequestLogger(log),
		middleware.CORS(cfg.CORSOrigins),
		middleware.ErrorHandler(log),
	)

	var createGuard []gin.HandlerFunc
	if cfg.CreateLimiter != nil {
		createGuard = append(createGuard, cfg.CreateLimiter.Middleware())
	}
	api.SetupAPI(router, cfg.Mix, cfg.Health, createGuard...)

	return router
}
