package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/username/leave-planner/internal/config"
)

// Daemon runs the HTTP server until it is stopped or the process receives
// SIGINT/SIGTERM, then drains in-flight requests.
type Daemon struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *zap.Logger
	ctx             context.Context
	cancel          context.CancelFunc

	mu       sync.Mutex
	listener net.Listener
}

// NewDaemon creates a new daemon serving handler with the server settings
func NewDaemon(handler http.Handler, cfg config.ServerConfig, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       cfg.GetReadTimeout(),
			ReadHeaderTimeout: cfg.GetReadTimeout(),
			WriteTimeout:      cfg.GetWriteTimeout(),
			ErrorLog:          zap.NewStdLog(logger),
		},
		shutdownTimeout: cfg.GetShutdownTimeout(),
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// Start listens on the configured address and serves until stopped
func (d *Daemon) Start() error {
	ln, err := net.Listen("tcp", d.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", d.server.Addr, err)
	}
	return d.Serve(ln)
}

// Serve serves on ln until stopped
func (d *Daemon) Serve(ln net.Listener) error {
	d.mu.Lock()
	d.listener = ln
	d.mu.Unlock()

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- d.server.Serve(ln)
	}()

	d.logger.Info("Server started", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)

	case sig := <-sigChan:
		d.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))

	case <-d.ctx.Done():
		d.logger.Info("Daemon stop requested")
	}

	return d.shutdown()
}

func (d *Daemon) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), d.shutdownTimeout)
	defer cancel()

	if err := d.server.Shutdown(ctx); err != nil {
		d.logger.Error("Graceful shutdown failed", zap.Error(err))
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	d.logger.Info("Server stopped")
	return nil
}

// Stop asks a running daemon to shut down
func (d *Daemon) Stop() {
	d.cancel()
}

// Addr returns the bound address once serving, or the configured one
func (d *Daemon) Addr() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listener != nil {
		return d.listener.Addr().String()
	}
	return d.server.Addr
}
