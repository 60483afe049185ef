package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"taskboard/config"
	"taskboard/filters"
	"taskboard/gateway"
	"taskboard/handlers"
	"taskboard/models"
	"taskboard/services"
	"taskboard/session"
	"taskboard/tasklist"
	"taskboard/token"
)

// StartServer wires the whole application and serves the dashboard UI.
func StartServer() {
	// Initialize logger
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})

	logger.Info("Starting taskboard...")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", zap.Error(err))
		os.Exit(1)
	}

	tokens, err := token.Open(cfg.CredentialsDB)
	if err != nil {
		logger.Error("Failed to open credential store", zap.Error(err))
		os.Exit(1)
	}
	defer tokens.Close()

	flash := handlers.NewFlash()
	redirects := handlers.NewRedirects()

	gw := gateway.New(gateway.Config{
		BaseURL:   cfg.APIURL,
		Tokens:    tokens,
		Notifier:  flash,
		Navigator: redirects,
	})

	authSvc := services.NewAuthService(gw)
	taskSvc := services.NewTaskService(gw)
	userSvc := services.NewUserService(gw)

	sess := session.NewManager(tokens, authSvc, redirects)
	board := tasklist.New(taskSvc)
	flt := filters.New(func(params models.QueryParams) {
		board.SetParams(context.Background(), params)
	})

	// Resolve the stored credential before serving anything.
	rehydrateCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	sess.Rehydrate(rehydrateCtx)
	cancel()
	// Startup navigation is meaningless before a page is requested.
	redirects.Consume()

	ui := handlers.New(sess, board, userSvc, flt, flash, redirects)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           ui.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("Taskboard started", zap.String("addr", cfg.ListenAddr), zap.String("api", cfg.APIURL))
	logger.Info("Open the dashboard in a browser", zap.String("url", "http://"+cfg.ListenAddr))

	if err := httpServer.ListenAndServe(); err != nil {
		logger.Error("Server failed", zap.Error(err))
		os.Exit(1)
	}
}
