// Package errors holds the sentinel errors shared by the container packages,
// plus a small accumulator for callers that need to report more than one failure.
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") so that callers can
// test for the failure class with errors.Is while still getting a useful message.
package errors

import "errors"

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrWrongType      = errors.New("wrong type")

	// ErrInvalidArgument is returned at call time when an argument is out of range
	// (for example a non-positive chunk size). The operation is not attempted.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotSorted is returned when an input that must be sorted by the supplied
	// comparator is found out of order.
	ErrNotSorted = errors.New("sequence is not sorted")

	// ErrMissingElement is returned when a nil element is found where the
	// comparator would have to look at it.
	ErrMissingElement = errors.New("missing element")

	// ErrNoSuchElement is returned by a cursor that has been asked for an element
	// after it was exhausted.
	ErrNoSuchElement = errors.New("no such element")

	// ErrIllegalState is returned by Remove when there is no current element to remove.
	ErrIllegalState = errors.New("illegal state")

	// ErrUnsupported is returned when a capability (such as removal) is not
	// offered by the underlying source.
	ErrUnsupported = errors.New("unsupported operation")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
