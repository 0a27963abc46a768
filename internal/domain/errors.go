package domain

import "errors"

// Error taxonomy. Services wrap these with context via fmt.Errorf("...: %w", err)
// so handlers can classify with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrCrossTenantMismatch = errors.New("category does not belong to this menu")
	ErrConflict            = errors.New("conflict")
	ErrSubscriptionLimit   = errors.New("cannot add more than 1 business in trial version, buy subscription to proceed")

	// ErrUniqueViolation is surfaced by the store when an insert loses a
	// uniqueness race. The catalog resolver treats it as "someone else just
	// created it" and falls back to a lookup.
	ErrUniqueViolation = errors.New("unique constraint violation")
)
