package server

//go:generate mockgen -source=health.go -destination=mock_health_test.go -package=server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sbilibin2017/snake-arena/internal/logger"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthRouter serves GET /healthz: 200 when storage answers a ping, 503 otherwise.
func NewHealthRouter(db Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Log.Warnw("health check failed", "error", err)
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

// RunHealthServer serves the health router on addr until ctx is cancelled.
func RunHealthServer(ctx context.Context, addr string, db Pinger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHealthRouter(db),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("Health server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-errChan:
		if ok {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("health server shutdown error", "error", err)
		return err
	}

	logger.Log.Info("Health server stopped gracefully")
	return nil
}
