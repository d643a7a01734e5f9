package replacing

import (
	"errors"
	"fmt"
)

// Sentinel errors for building replacements.
var (
	// ErrInvalidArgument indicates a replacement was built from invalid input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyTag indicates Replacing was called with an empty tag.
	ErrEmptyTag = fmt.Errorf("%w: tag can't be empty", ErrInvalidArgument)

	// ErrNilResolver indicates Replacing was called with a nil resolver.
	ErrNilResolver = fmt.Errorf("%w: resolver can't be nil", ErrInvalidArgument)
)

// ResolverError wraps a resolver failure that was not caught.
// It is returned from Apply and Render when CatchErrors is off.
type ResolverError struct {
	// Tag is the tag whose resolver failed.
	Tag string
	// Err is the error returned by the resolver, or a *PanicError.
	Err error
}

// Error implements the error interface.
func (e *ResolverError) Error() string {
	return fmt.Sprintf("resolver for tag %s: %v", e.Tag, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ResolverError) Unwrap() error {
	return e.Err
}

// PanicError captures a panic raised inside a resolver.
// It is treated like any other resolver failure.
type PanicError struct {
	// Tag is the tag whose resolver panicked.
	Tag string
	// Value is the value passed to panic().
	Value any
	// Stack is the full stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("resolver for tag %s panicked: %v", e.Tag, e.Value)
}
