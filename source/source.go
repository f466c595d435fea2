// Package source supplies raw module bytes for module identifiers.
//
// The resolution engine only depends on the ModuleSource interface; the
// implementations here cover the common deployments: an in-memory map for
// fixtures and offline use, an HTTP client against a node REST API, and a
// caching decorator that also collapses concurrent duplicate fetches.
package source

import (
	"context"
	"errors"

	"github.com/movekit/typeaccessor/pkg/move"
)

// ErrNotFound is returned when the requested module does not exist at the
// source. Implementations wrap it so callers can test with errors.Is.
var ErrNotFound = errors.New("module not found")

// ModuleSource supplies raw module bytes given a module identifier.
type ModuleSource interface {
	// FetchModule returns the raw bytes of the identified module.
	// It honors ctx cancellation and fails with an error wrapping
	// ErrNotFound when the module does not exist.
	FetchModule(ctx context.Context, id move.ModuleID) ([]byte, error)
}
