package config

import "errors"

var (
	// ErrMissingRequired is returned when a required key is unset
	ErrMissingRequired = errors.New("required variable is not set")

	// ErrInvalidValue is returned when a key holds a value outside its domain
	ErrInvalidValue = errors.New("invalid value")
)
