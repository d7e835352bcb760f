package gce

import (
	"context"
	"fmt"
	"log/slog"

	compute "cloud.google.com/go/compute/apiv1"
	"cloud.google.com/go/compute/apiv1/computepb"
	"github.com/googleapis/gax-go/v2"

	"github.com/skillcoder/gce-reservation-helper/internal/infra/shutdown"
	"github.com/skillcoder/gce-reservation-helper/internal/logic/controller"
)

// reservationsClient is the part of compute.ReservationsClient the adapter uses.
type reservationsClient interface {
	Get(ctx context.Context, req *computepb.GetReservationRequest, opts ...gax.CallOption) (*computepb.Reservation, error)
	Insert(ctx context.Context, req *computepb.InsertReservationRequest, opts ...gax.CallOption) (*compute.Operation, error)
	Resize(ctx context.Context, req *computepb.ResizeReservationRequest, opts ...gax.CallOption) (*compute.Operation, error)
	Close() error
}

var _ reservationsClient = (*compute.ReservationsClient)(nil)

type Adapter struct {
	logger *slog.Logger
	client reservationsClient
}

// New creates a new Compute Engine reservations adapter.
func New(
	logger *slog.Logger,
	client reservationsClient,
) *Adapter {
	return &Adapter{
		logger: logger,
		client: client,
	}
}

var (
	_ controller.Repository = (*Adapter)(nil)
	_ shutdown.Shutdowner   = (*Adapter)(nil)
)

// Name returns the name of the adapter component
func (a *Adapter) Name() string {
	return "compute-reservations-client"
}

// Shutdown closes the underlying API client.
func (a *Adapter) Shutdown(_ context.Context) error {
	if err := a.client.Close(); err != nil {
		return fmt.Errorf("close reservations client: %w", err)
	}

	return nil
}

func (a *Adapter) GetReservationQuery(
	ctx context.Context,
	projectID,
	zone,
	name string,
) (*controller.Reservation, error) {
	reservation, err := a.client.Get(ctx, &computepb.GetReservationRequest{
		Project:     projectID,
		Zone:        zone,
		Reservation: name,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("get reservation: %w", errReservationNotFound)
		}

		return nil, fmt.Errorf("get reservation: %w", err)
	}

	out, err := toDomainReservation(reservation)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return out, nil
}

func (a *Adapter) InsertReservationCommand(
	ctx context.Context,
	projectID,
	zone string,
	reservation controller.Reservation,
) (*controller.OperationResult, error) {
	op, err := a.client.Insert(ctx, &computepb.InsertReservationRequest{
		Project:             projectID,
		Zone:                zone,
		ReservationResource: toComputeReservation(reservation),
	})
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	result, err := a.waitOperation(ctx, op)
	if err != nil {
		return result, fmt.Errorf("insert reservation: %w", err)
	}

	return result, nil
}

func (a *Adapter) ResizeReservationCommand(
	ctx context.Context,
	projectID,
	zone,
	name string,
	count int64,
) (*controller.OperationResult, error) {
	op, err := a.client.Resize(ctx, &computepb.ResizeReservationRequest{
		Project:     projectID,
		Zone:        zone,
		Reservation: name,
		ReservationsResizeRequestResource: &computepb.ReservationsResizeRequest{
			SpecificSkuCount: &count,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("resize reservation: %w", err)
	}

	result, err := a.waitOperation(ctx, op)
	if err != nil {
		return result, fmt.Errorf("resize reservation: %w", err)
	}

	return result, nil
}

// waitOperation blocks until the zonal operation reaches a terminal state.
func (a *Adapter) waitOperation(ctx context.Context, op *compute.Operation) (*controller.OperationResult, error) {
	a.logger.DebugContext(ctx, "waiting for operation", "operation", op.Name())

	if err := op.Wait(ctx); err != nil {
		return toDomainOperationResult(op.Proto()), fmt.Errorf("wait operation %s: %w", op.Name(), err)
	}

	result := toDomainOperationResult(op.Proto())

	if err := operationError(op.Proto()); err != nil {
		return result, fmt.Errorf("operation %s: %w", op.Name(), err)
	}

	return result, nil
}
