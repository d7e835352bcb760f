package httpserver_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/gce-reservation-helper/internal/httpserver"
	"github.com/skillcoder/gce-reservation-helper/internal/logic/controller"
)

type stubProgress struct {
	snapshot controller.ProgressSnapshot
}

func (p stubProgress) Snapshot() controller.ProgressSnapshot {
	return p.snapshot
}

func newTestProgress() *controller.Progress {
	return controller.NewProgress(controller.Target{
		ProjectID:   "test-project",
		Zone:        "us-central1-a",
		Name:        "test-reservation",
		Count:       3,
		MachineType: "n2-standard-2",
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("empty host and port use defaults", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(logger, newTestProgress(), "", "")
		require.NotNil(t, srv)
		require.Nil(t, srv.Addr())
	})

	t.Run("name", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(logger, newTestProgress(), "127.0.0.1", "9090")
		require.Equal(t, "status-server", srv.Name())
	})
}

type statusCase struct {
	name         string
	giveMethod   string
	givePath     string
	giveSnapshot controller.ProgressSnapshot
	wantCode     int
	wantBody     []string
}

func TestServer_StatusPage(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tests := []statusCase{
		{
			name:         "root before first fetch",
			giveMethod:   http.MethodGet,
			givePath:     "/",
			giveSnapshot: controller.ProgressSnapshot{Name: "test-reservation", Zone: "us-central1-a", Target: 3},
			wantCode:     http.StatusOK,
			wantBody: []string{
				"<title>GCE Reservation Helper</title>",
				"Reservation ID: test-reservation<br/>",
				"Zone: us-central1-a<br/>",
				"VM Count: 0 / 3<br/>",
				"</p></body></html>",
			},
		},
		{
			name:         "any path renders the same page",
			giveMethod:   http.MethodGet,
			givePath:     "/some/other/path?x=1",
			giveSnapshot: controller.ProgressSnapshot{Name: "test-reservation", Zone: "us-central1-a", Observed: 2, Target: 3},
			wantCode:     http.StatusOK,
			wantBody:     []string{"VM Count: 2 / 3<br/>"},
		},
		{
			name:         "values are escaped",
			giveMethod:   http.MethodGet,
			givePath:     "/",
			giveSnapshot: controller.ProgressSnapshot{Name: "<script>", Zone: "z", Target: 1},
			wantCode:     http.StatusOK,
			wantBody:     []string{"Reservation ID: &lt;script&gt;<br/>"},
		},
		{
			name:       "other verbs are rejected",
			giveMethod: http.MethodPost,
			givePath:   "/",
			wantCode:   http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httpserver.New(logger, stubProgress{snapshot: tt.giveSnapshot}, "127.0.0.1", "0")

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.giveMethod, tt.givePath, http.NoBody)

			srv.Handler().ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusOK {
				return
			}

			require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

			for _, want := range tt.wantBody {
				require.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestServer_Start_Shutdown(t *testing.T) {
	t.Parallel()

	logger := slog.Default()
	progress := newTestProgress()
	srv := httpserver.New(logger, progress, "127.0.0.1", "0")

	require.Error(t, srv.Ping(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Start(ctx))

	select {
	case <-srv.Ready():
	case <-time.After(1 * time.Second):
		t.Fatal("server did not become ready")
	}

	require.NoError(t, srv.Ping(t.Context()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+srv.Addr().String()+"/", http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "VM Count: 0 / 3")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
	require.NoError(t, srv.Shutdown(shutdownCtx), "second shutdown is a no-op")

	_, err = net.DialTimeout("tcp", srv.Addr().String(), 200*time.Millisecond)
	require.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_Start_BindFailure(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer occupied.Close()

	_, port, err := net.SplitHostPort(occupied.Addr().String())
	require.NoError(t, err)

	srv := httpserver.New(logger, newTestProgress(), "127.0.0.1", port)
	require.Error(t, srv.Start(t.Context()))
}
