package controller

import "context"

// Repository is the port interface for reservation operations.
// Implementations are provided by adapters in the outbound layer.
// Commands return only after the remote operation reached a terminal state.
type Repository interface {
	GetReservationQuery(
		ctx context.Context,
		projectID,
		zone,
		name string,
	) (*Reservation, error)

	InsertReservationCommand(
		ctx context.Context,
		projectID,
		zone string,
		reservation Reservation,
	) (*OperationResult, error)

	ResizeReservationCommand(
		ctx context.Context,
		projectID,
		zone,
		name string,
		count int64,
	) (*OperationResult, error)
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}
