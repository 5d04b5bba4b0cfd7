package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mixmaster/backend/config"
	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/database"
	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/logger"
	"github.com/pageza/mixmaster/backend/internal/middleware"
	"github.com/pageza/mixmaster/backend/internal/router"
	"github.com/pageza/mixmaster/backend/internal/server"
	"github.com/pageza/mixmaster/backend/internal/service"
	"github.com/pageza/mixmaster/backend/internal/store"
)

// hydrateTimeout bounds the initial store load. Writes wait for it.
const hydrateTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLog.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize store
	backend, closeBackend, err := database.OpenBackend(cfg, appLog)
	if err != nil {
		appLog.Error("failed to open store backend", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	mirror := store.NewMirror(backend, appLog)
	hydrateCtx, cancelHydrate := context.WithTimeout(context.Background(), hydrateTimeout)
	mirror.Hydrate(hydrateCtx, store.AllKeys...)
	go func() {
		<-mirror.Ready()
		cancelHydrate()
	}()

	// Initialize services
	recipes, err := catalog.New(mirror)
	if err != nil {
		appLog.Error("failed to load recipe library", "error", err)
		os.Exit(1)
	}
	policy, err := ledger.ParsePolicy(cfg.ModerationPolicy)
	if err != nil {
		appLog.Error("invalid moderation policy", "error", err)
		os.Exit(1)
	}
	mix := service.NewMixService(mirror, recipes, service.Options{
		Policy:         policy,
		SpotlightLimit: cfg.SpotlightLimit,
		Ready:          mirror.Ready(),
	})

	var limiter *middleware.RateLimiter
	if cfg.CreateRateLimit > 0 {
		client, err := database.NewRedisClient(cfg, appLog)
		if err != nil {
			appLog.Warn("recipe creation rate limit disabled", "error", err)
		} else {
			defer client.Close()
			limiter = middleware.NewRecipeCreationRateLimiter(client, cfg.CreateRateLimit, appLog)
		}
	}

	handler := router.SetupRouter(router.Config{
		Mix:           mix,
		Health:        mirror,
		Logger:        appLog,
		CORSOrigins:   cfg.CORSOrigins,
		CreateLimiter: limiter,
	})
	srv := server.New(cfg, handler, appLog)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			appLog.Error("server error", "error", err)
		}
	case sig := <-quit:
		appLog.Info("received signal", "signal", sig.String())
	}

	// Gracefully shutdown the server, then flush pending store writes
	appLog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("server shutdown error", "error", err)
	}
	if err := mirror.Close(ctx); err != nil {
		appLog.Error("store flush did not finish", "error", err)
	}
	if err := closeBackend(); err != nil {
		appLog.Warn("failed to close store backend", "error", err)
	}
	appLog.Info("server stopped")
}
