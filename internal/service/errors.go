package service

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the services. Handlers branch on these with
// errors.Is to pick the HTTP status, so storage failures are never
// swallowed into a generic "nothing happened".
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalid          = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeErr tags an infrastructural persistence failure with its kind while
// keeping the underlying driver error in the message.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// invalidErr tags a failed validation rule as rejectable input.
func invalidErr(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}
