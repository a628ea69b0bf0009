package navbug

import (
	"errors"
	"fmt"
)

// ErrQuit indicates the user closed the window or pressed back on the start
// destination. It is normal flow control, not a failure.
var ErrQuit = errors.New("quit requested by user")

// InfrastructureError represents a failure of the host itself (SDL could not
// start, a font is missing, a texture upload failed) rather than of
// navigation.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_icon")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navbug: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navbug: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsQuit checks if an error indicates the user asked to quit.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
