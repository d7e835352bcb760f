package appstate

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "health check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "health check passed")
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsReady(ctx) {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "readiness check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "readiness check passed")
	}
}
