package gce

import "errors"

// ReservationNotFoundError represents a missing reservation; the controller creates it.
type ReservationNotFoundError struct{}

func (e *ReservationNotFoundError) Error() string {
	return "reservation not found"
}

func (e *ReservationNotFoundError) IsNotFound() {}

var errReservationNotFound = &ReservationNotFoundError{}

var (
	errEmptyResponse   = errors.New("empty response")
	errOperationFailed = errors.New("operation failed")
)
