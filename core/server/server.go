package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bebit-api/core/cache"
	"bebit-api/core/config"
	"bebit-api/core/database"
	"bebit-api/core/logger"
	"bebit-api/core/middleware"
	"bebit-api/core/queue"
	"bebit-api/modules/admin"
	"bebit-api/modules/artist"
	"bebit-api/modules/auth"
	"bebit-api/modules/club"
	"bebit-api/modules/event"
	"bebit-api/modules/feedback"
	"bebit-api/modules/invitation"
	"bebit-api/modules/notification"
	"bebit-api/modules/user"
	"bebit-api/modules/wallet"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires every module and serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.Set(cfg)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisCache, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer redisCache.Close()

	queueClient := queue.NewClient(cfg.Redis)

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware(redisCache)
	api := e.Group("/api/v1")

	userSvc := user.Init(api, db, mw)
	auth.Init(api, db, mw, redisCache)
	artistSvc := artist.Init(api, db, mw)
	clubSvc := club.Init(api, db, mw)
	notifSvc, notifWorker := notification.Init(api, db, mw, queueClient)
	eventSvc := event.Init(api, db, mw, clubSvc, artistSvc, notifSvc)
	invitation.Init(api, db, mw, artistSvc, clubSvc, notifSvc)
	feedback.Init(api, db, mw, eventSvc, clubSvc, artistSvc)
	wallet.Init(api, db, mw)
	admin.Init(api, db, mw, userSvc, eventSvc)

	asynqSrv, mux := queue.NewServer(cfg.Redis)
	notifWorker.Register(mux)
	go func() {
		if err := asynqSrv.Run(mux); err != nil {
			logger.Error("Asynq server stopped", "error", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
		}
	}()
	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	asynqSrv.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
