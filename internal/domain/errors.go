package domain

import "errors"

var (
	// ErrNotFound indicates no cart item carries the requested id.
	ErrNotFound = errors.New("not found")
)
