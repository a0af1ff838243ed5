// Package errs contains sentinel errors shared across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates a lookup by id or unique key found no row.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a field-level constraint violation (price <= 0, bad enum value).
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness or cross-entity consistency violation
	// (duplicate watch-list entry, bid on a non-active listing).
	ErrConflict = errors.New("conflict")
)
