package controller

import "errors"

var (
	ErrFetchReservation        = errors.New("fetch reservation")
	ErrCreateReservation       = errors.New("create reservation")
	ErrResizeReservation       = errors.New("resize reservation")
	ErrUnknownFetchErrorPolicy = errors.New("unknown fetch error policy")
)
