package httpserver

import (
	"context"

	"github.com/skillcoder/gce-reservation-helper/internal/logic/controller"
)

// progressReader is the read-only view of the reservation progress the status page renders
type progressReader interface {
	Snapshot() controller.ProgressSnapshot
}

// opsState is the application state behind the probe endpoints
type opsState interface {
	IsHealthy() bool
	IsReady(ctx context.Context) bool
}
