// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. Not-found
// errors for gigs and share tokens are the gigpack sentinels so that the
// transform layer can recognise them without importing this package.
package repository

import (
	"errors"

	"github.com/iliyamo/gig-pack/internal/gigpack"
)

// ErrForbidden is returned when the caller attempts an operation
// on a gig they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an insert collides with an existing
// row, such as creating a gig whose id is already taken. Handlers
// should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// Re-exported so handlers can match on repository errors only.
var (
	ErrGigNotFound   = gigpack.ErrGigNotFound
	ErrShareNotFound = gigpack.ErrShareNotFound
)
