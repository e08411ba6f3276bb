package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	appmodules "meditrack/app"
	"meditrack/app/inventory"
	"meditrack/app/jobs"
	"meditrack/core/app/activities"
	"meditrack/core/app/authentication"
	"meditrack/core/cache"
	"meditrack/core/config"
	"meditrack/core/database"
	"meditrack/core/email"
	"meditrack/core/emitter"
	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/router"
	"meditrack/core/router/middleware"
	"meditrack/core/websocket"

	coreapp "meditrack/core/app"
)

// @title           Meditrack API
// @version         1.0
// @description     Medical and dental inventory, records and universal search backend
// @BasePath        /api
func main() {
	_ = godotenv.Load()
	cfg := config.NewConfig()

	log, err := logger.NewLogger(logger.Config{
		Environment: cfg.Env,
		LogPath:     "logs",
		Level:       os.Getenv("LOG_LEVEL"),
	})
	if err != nil {
		panic(err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", logger.String("error", err.Error()))
	}

	events := emitter.New()
	cacheStore := cache.New(log)

	emailSender, err := email.NewSender(cfg)
	if err != nil {
		log.Info("email sending disabled", logger.String("reason", err.Error()))
		emailSender = nil
	}

	r := router.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	if cfg.CORSEnabled {
		r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	}

	r.GET("/health", func(ctx *router.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": cfg.Version,
		})
	})

	// Public routes: login and the websocket upgrade
	authGroup := r.Group("/api/auth")

	var hub *websocket.Hub
	if cfg.WebSocketEnabled {
		hub = websocket.InitWebSocketModule(r.Group("/api"))
	}

	// Everything else sits behind the bearer token
	api := r.Group("/api")
	api.Use(authentication.Middleware(cfg.JWTSecret))

	deps := module.Dependencies{
		DB:          db.DB,
		Router:      api,
		Logger:      log,
		Emitter:     events,
		Cache:       cacheStore,
		EmailSender: emailSender,
		Config:      cfg,
		Hub:         hub,
	}

	orchestrator := module.NewOrchestrator(module.NewInitializer(log))
	orchestrator.InitializeCore(&coreapp.CoreProvider{AuthGroup: authGroup}, deps)
	orchestrator.InitializeApp(&appmodules.AppProvider{}, deps)

	inventoryService := inventory.NewInventoryService(db.DB, events, log)
	activityService := activities.NewActivityService(db.DB, log)
	cronScheduler := jobs.SetupScheduler(deps, inventoryService, activityService)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	log.Info("server starting",
		logger.String("port", cfg.ServerPort),
		logger.String("env", cfg.Env),
		logger.String("version", cfg.Version))

	if err := r.Run(cfg.ServerPort); err != nil {
		log.Fatal("server stopped", logger.String("error", err.Error()))
	}
}
