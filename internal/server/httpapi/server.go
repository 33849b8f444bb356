// Package httpapi exposes the asset service over HTTP using echo.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/dmitrijs2005/assetkeeper/internal/server/services"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// AssetService is the part of services.AssetService the handlers use.
type AssetService interface {
	CreateAsset(ctx context.Context, in models.AssetCreate) (*models.Asset, error)
	GetAsset(ctx context.Context, id int64) (*models.Asset, error)
	ListAssets(ctx context.Context, p services.ListParams) (*services.AssetPage, error)
	UpdateAsset(ctx context.Context, id int64, in models.AssetUpdate) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]string, error)
}

// Pinger reports database reachability for /health.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options tunes the listener and the middleware stack.
type Options struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type HTTPServer struct {
	address string
	opts    Options
	assets  AssetService
	db      Pinger
	logger  logging.Logger
	echo    *echo.Echo
}

// NewHTTPServer builds the router. db may be nil, in which case /health
// reports only that the process is up.
func NewHTTPServer(address string, l logging.Logger, svc AssetService, db Pinger, opts Options) *HTTPServer {
	s := &HTTPServer{
		address: address,
		opts:    opts,
		assets:  svc,
		db:      db,
		logger:  l.With("module", "http_server"),
	}
	s.echo = s.newRouter()
	return s
}

// Handler returns the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      s.echo,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		timeout := s.opts.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
