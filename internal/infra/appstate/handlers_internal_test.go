package appstate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubChecker struct {
	healthy bool
	ready   bool
}

func (c stubChecker) IsHealthy() bool                { return c.healthy }
func (c stubChecker) IsReady(_ context.Context) bool { return c.ready }

func serveAndAssertStatus(t *testing.T, handler http.HandlerFunc, path string, wantCode int) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	handler.ServeHTTP(rec, req)

	if rec.Code != wantCode {
		t.Errorf("want status %d, got %d", wantCode, rec.Code)
	}
}

func TestHandleHealthz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	serveAndAssertStatus(t, HandleHealthz(logger, stubChecker{healthy: true}), "/-/healthz", http.StatusOK)
	serveAndAssertStatus(t, HandleHealthz(logger, stubChecker{}), "/-/healthz", http.StatusServiceUnavailable)
}

func TestHandleReadyz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	serveAndAssertStatus(t, HandleReadyz(logger, stubChecker{ready: true}), "/-/readyz", http.StatusOK)
	serveAndAssertStatus(t, HandleReadyz(logger, stubChecker{}), "/-/readyz", http.StatusServiceUnavailable)
}
