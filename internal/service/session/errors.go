package session

import "errors"

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrAddressNotFound = errors.New("address not found")
	ErrInvalidTracking = errors.New("invalid tracking")

	ErrInvalidOrder    = errors.New("order is not a permutation of session packages")
	ErrInvalidPosition = errors.New("invalid target position")
)
