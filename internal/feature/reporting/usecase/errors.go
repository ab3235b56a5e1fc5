// Package usecase implements the business logic for the reporting feature.
package usecase

import "errors"

var (
	// ErrDataIntegrity is returned when an order references a user, product,
	// or address that does not exist in the store. The whole operation is
	// aborted rather than producing partial output.
	ErrDataIntegrity = errors.New("order references a missing user, product, or address")
)
