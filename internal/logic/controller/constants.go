package controller

import "time"

const (
	// DefaultInterval is the wait between two create/resize attempts.
	DefaultInterval = 30 * time.Second

	// initialReservationCount is the specific-SKU count a new reservation is created with.
	initialReservationCount = 1

	// resizeStep is how many instances a single resize asks for on top of the observed count.
	resizeStep = 1
)
