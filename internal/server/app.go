// Package server initializes and runs the asset management server.
// It opens the database pool, applies migrations, handles graceful shutdown
// and starts the HTTP API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/config"
	"github.com/dmitrijs2005/assetkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/assetkeeper/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	assetService *services.AssetService
}

// NewApp wires the application from cfg. No connection is made until Run.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	rm := repomanager.NewPostgresRepositoryManager()

	return &App{
		config:       cfg,
		logger:       logger,
		db:           db,
		repomanager:  rm,
		assetService: services.NewAssetService(db, rm),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) prepareDB(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := app.db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	if !app.config.AutoMigrate {
		return nil
	}
	app.logger.Info(ctx, "Applying migrations...")
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.assetService, app.db, httpapi.Options{
		ReadTimeout:     app.config.ReadTimeout,
		WriteTimeout:    app.config.WriteTimeout,
		ShutdownTimeout: app.config.ShutdownTimeout,
		AllowedOrigins:  app.config.AllowedOrigins,
	})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run blocks until ctx is cancelled or a stop signal arrives, then shuts the
// HTTP server down and closes the pool.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close", "error", err)
		}
	}()

	if err := app.prepareDB(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return runErr
}
