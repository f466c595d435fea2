package typeaccessor

import (
	"errors"
	"fmt"

	"github.com/movekit/typeaccessor/pkg/move"
)

// Sentinel errors returned by Builder.Build. Wrap-aware: test with errors.Is.
var (
	// ErrEmptyInput means the builder was given no modules to look up and
	// none to add.
	ErrEmptyInput = errors.New("typeaccessor: no modules to look up or add")

	// ErrMissingSource means modules need to be looked up but no module
	// source was attached.
	ErrMissingSource = errors.New("typeaccessor: module source required to look up modules")

	// ErrBuilderConsumed means Build was invoked on an already-consumed
	// builder. A builder is single-use.
	ErrBuilderConsumed = errors.New("typeaccessor: builder already consumed")
)

// FetchError reports a failed module retrieval. The whole build aborts on
// the first fetch failure; no partial index is retained.
type FetchError struct {
	ID  move.ModuleID
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("typeaccessor: fetching module %s: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError reports module bytes that could not be decoded into a
// structured module. Like fetch failures, it aborts the whole build.
type DecodeError struct {
	ID  move.ModuleID
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("typeaccessor: decoding module %s: %v", e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
