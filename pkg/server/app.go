package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"QuantScout/internal/domain/repository"
	"QuantScout/internal/handler/api"
	"QuantScout/internal/usecase"
	"QuantScout/pkg/config"
	xhttp "QuantScout/pkg/http"
	applogger "QuantScout/pkg/logger"
)

// App encapsulates the application lifecycle: the scan loop, the HTTP API and
// the optional scan publisher, started together and shut down together.
type App struct {
	cfg        *config.Config
	scanner    *usecase.Scanner
	publisher  repository.Publisher
	logger     *applogger.Logger
	httpServer *xhttp.Server
}

// New creates an App with all dependencies.
func New(cfg *config.Config, scanner *usecase.Scanner, publisher repository.Publisher, logger *applogger.Logger) *App {
	return &App{
		cfg:       cfg,
		scanner:   scanner,
		publisher: publisher,
		logger:    logger,
	}
}

// Run starts the scanner and HTTP server and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(
		[]xhttp.Handler{
			api.NewScansHandler(a.logger, a.scanner),
			api.NewStreamHandler(a.logger, a.scanner),
		},
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	go a.scanner.Run(ctx)
	a.logger.Info("scanner started",
		applogger.Strings("watchlist", a.cfg.Watchlist()),
		applogger.Duration("interval", a.cfg.Scan.Interval))

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	cancel()
	return a.shutdown()
}

func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("publisher close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
