package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	compute "cloud.google.com/go/compute/apiv1"
	"k8s.io/utils/clock"

	"github.com/skillcoder/gce-reservation-helper/internal/adapters/outbound/gce"
	"github.com/skillcoder/gce-reservation-helper/internal/config"
	"github.com/skillcoder/gce-reservation-helper/internal/httpserver"
	"github.com/skillcoder/gce-reservation-helper/internal/infra/shutdown"
	"github.com/skillcoder/gce-reservation-helper/internal/logic/controller"
)

type App struct {
	logger     *slog.Logger
	appState   appstater
	components []component
}

// New creates a new application instance with all dependencies wired.
func New(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
) (*App, error) {
	// Credentials come from Application Default Credentials
	client, err := compute.NewReservationsRESTClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create reservations client: %w", err)
	}

	repo := gce.New(logger, client)

	return newApp(logger, cfg, appState, repo, clock.RealClock{})
}

func newApp(
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	repo controller.Repository,
	clk clock.Clock,
) (*App, error) {
	progress := controller.NewProgress(cfg.Target())

	controllerService := controller.New(
		logger,
		repo,
		progress,
		cfg.ReconcileInterval,
		cfg.FetchErrorPolicy,
		clk,
	)

	statusServer := httpserver.New(logger, progress, cfg.HostName, cfg.Port)
	metricsServer := httpserver.NewMetricsServer(logger, appState, cfg.MetricsPort)

	// Shutdown runs in reverse order: status server, metrics server, controller, client.
	if closer, ok := repo.(shutdown.Shutdowner); ok {
		if err := appState.RegisterShutdowner(closer); err != nil {
			return nil, fmt.Errorf("register repository shutdowner: %w", err)
		}
	}

	components := []component{controllerService, metricsServer, statusServer}

	for _, c := range components {
		if err := appState.RegisterShutdowner(c); err != nil {
			return nil, fmt.Errorf("register %s shutdowner: %w", c.Name(), err)
		}

		if err := appState.RegisterPinger(c); err != nil {
			return nil, fmt.Errorf("register %s pinger: %w", c.Name(), err)
		}
	}

	return &App{
		logger:     logger,
		appState:   appState,
		components: components,
	}, nil
}

// Run starts the application and blocks until a termination signal arrives or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	readyChans := make([]<-chan struct{}, 0, len(a.components))

	// Listeners bind before the controller makes any remote call.
	for i := len(a.components) - 1; i >= 0; i-- {
		c := a.components[i]
		if err := c.Start(ctx); err != nil {
			shutdownErr := a.appState.Shutdown(ctx)

			return errors.Join(fmt.Errorf("start %s: %w", c.Name(), err), shutdownErr)
		}

		readyChans = append(readyChans, c.Ready())
	}

	select {
	case <-allChannelsClose(ctx, a.logger, readyChans...):
	case sig := <-a.appState.Quit():
		a.logger.InfoContext(ctx, "received termination signal during startup", "signal", sig.String())

		return a.shutdown(ctx)
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running application state: %w", err)
	}

	a.logger.InfoContext(ctx, "application running")

	select {
	case sig := <-a.appState.Quit():
		a.logger.InfoContext(ctx, "received termination signal, terminating", "signal", sig.String())
	case <-ctx.Done():
		a.logger.InfoContext(ctx, "terminating due to context done")
	}

	return a.shutdown(ctx)
}

func (a *App) shutdown(ctx context.Context) error {
	if err := a.appState.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown application: %w", err)
	}

	return nil
}

// allChannelsClose returns a channel closed once every input channel is closed
// or ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for i, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.InfoContext(ctx, "context done while waiting for components to become ready",
					"pending", len(chans)-i,
				)

				return
			}
		}
	}()

	return out
}
