package service

import (
	"context"
	"errors"
)

// Sentinel errors returned by the services. The HTTP layer maps both
// ErrNotFound and ErrActionConcluded to a not-found response; keeping them
// separate preserves the distinction for logs and callers that care.
var (
	// ErrNotFound signals that the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrActionConcluded signals an operation that requires an in-progress
	// action was attempted on a concluded one.
	ErrActionConcluded = errors.New("combat action already concluded")

	// ErrInvalidCoordinates signals a latitude outside [-90,90] or a
	// longitude outside [-180,180].
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)

// TxManager runs a function inside a storage transaction so that
// multi-entity operations are not partially visible.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

func validCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
