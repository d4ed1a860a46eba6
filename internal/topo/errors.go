package topo

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes topology errors.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates an unresolved handle, degenerate
	// input, or a precondition violation detected before any mutation.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeNotFound indicates a lookup by identifier that does not
	// resolve to a live entity.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInconsistent indicates a cross-reference that does not
	// round-trip, reported by a structural validation scan.
	ErrCodeInconsistent ErrorCode = "STRUCTURAL_INCONSISTENCY"

	// ErrCodeCorrupted indicates a bounded adjacency walk that failed to
	// close within its step budget. Adjacency data was mutated outside
	// the operator set, or an operator left the structure inconsistent;
	// treat the kernel instance as fatal and rebuild from known-good
	// state.
	ErrCodeCorrupted ErrorCode = "CORRUPTED_TOPOLOGY"
)

// TopologyError represents a failure detected by the kernel.
//
// Every failure is synchronous and local to the call that triggered it;
// operators validate preconditions before mutating, so a returned error
// means no partial mutation was left behind.
type TopologyError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Kind names the entity kind involved ("vertex", "edge", "face"),
	// when one is.
	Kind string

	// ID is the handle involved, when one is.
	ID int64

	// Details contains additional context.
	Details map[string]string
}

// Error implements the error interface.
func (e *TopologyError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s: %s (%s=%d)", e.Code, e.Message, e.Kind, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidArgument reports whether err is an invalid-argument error.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	return hasCode(err, ErrCodeInvalidArgument)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsInconsistent reports whether err is a structural-inconsistency error.
func IsInconsistent(err error) bool {
	return hasCode(err, ErrCodeInconsistent)
}

// IsCorrupted reports whether err is a corrupted-topology error.
func IsCorrupted(err error) bool {
	return hasCode(err, ErrCodeCorrupted)
}

func hasCode(err error, code ErrorCode) bool {
	var te *TopologyError
	if errors.As(err, &te) {
		return te.Code == code
	}
	return false
}

// NewInvalidArgument creates an invalid-argument error without an entity.
func NewInvalidArgument(message string) *TopologyError {
	return &TopologyError{Code: ErrCodeInvalidArgument, Message: message}
}

// NewInvalidHandle creates an invalid-argument error for a handle that
// does not resolve.
func NewInvalidHandle(kind string, id int64) *TopologyError {
	return &TopologyError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("%s handle does not resolve", kind),
		Kind:    kind,
		ID:      id,
	}
}

// NewNotFound creates a not-found error for a lookup that missed.
func NewNotFound(kind string, id int64) *TopologyError {
	return &TopologyError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("no live %s with this id", kind),
		Kind:    kind,
		ID:      id,
	}
}

// NewInconsistent creates a structural-inconsistency error.
func NewInconsistent(message, kind string, id int64) *TopologyError {
	return &TopologyError{
		Code:    ErrCodeInconsistent,
		Message: message,
		Kind:    kind,
		ID:      id,
	}
}

// NewCorrupted creates a corrupted-topology error for a walk that failed
// to close within steps.
func NewCorrupted(message, kind string, id int64, steps int) *TopologyError {
	return &TopologyError{
		Code:    ErrCodeCorrupted,
		Message: message,
		Kind:    kind,
		ID:      id,
		Details: map[string]string{
			"steps": fmt.Sprintf("%d", steps),
		},
	}
}
