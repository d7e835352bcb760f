package app

import (
	"context"
	"os"

	"github.com/skillcoder/gce-reservation-helper/internal/infra/appstate"
	"github.com/skillcoder/gce-reservation-helper/internal/infra/shutdown"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(pinger appstate.Pinger) error
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	IsHealthy() bool
	IsReady(ctx context.Context) bool
	Shutdown(ctx context.Context) error
}

// component is a long-running part of the application with a managed lifecycle
type component interface {
	appstate.Pinger
	shutdown.Shutdowner
	Start(ctx context.Context) error
	Ready() <-chan struct{}
}
