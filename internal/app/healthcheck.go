package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/vk/msgfeatures/internal/ctxlog"
)

// healthHandler reports liveness and how many rows have been processed.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK %d/%d\n", a.rowsDone.Load(), a.rowsTotal.Load())
}

func (a *App) healthMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	return mux
}

// startHealthcheckServer runs the health check HTTP server until the
// returned stop function is called.
func (a *App) startHealthcheckServer(ctx context.Context, port int) (stop func()) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Configuring health check server.")

	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{Addr: addr, Handler: a.healthMux()}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("Health check server failed to listen", "address", addr, "error", err)
		return func() {}
	}

	go func() {
		logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Health check server failed unexpectedly", "error", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Health check server shutdown failed", "error", err)
			return
		}
		logger.Debug("Health check server shut down gracefully.")
	}
}
