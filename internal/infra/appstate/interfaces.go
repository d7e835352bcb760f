package appstate

import "context"

// Pinger is a component whose health gates readiness.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// healthChecker is an internal interface for health checking
type healthChecker interface {
	IsHealthy() bool
}

// readyChecker is an internal interface for readiness checking
type readyChecker interface {
	IsReady(ctx context.Context) bool
}
