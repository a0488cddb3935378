package errs

import "strings"

// Sentinel errors shared by the usecase and handler layers
var (
	// Input errors
	ErrValidation = New("validation failed")

	// Session errors
	ErrUnauthorized = New("no usable shop session")

	// Remote catalog errors
	ErrRemoteMutation    = New("remote mutation rejected")
	ErrRemoteEmptyResult = New("remote mutation returned no product")
	ErrRemoteTransport   = New("remote call failed")

	// Ledger errors
	ErrStore = New("temp product store operation failed")

	// Sweep errors
	ErrSweepInProgress = New("sweep already running for shop")
)

// ValidationError carries every violated input rule, in check order.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RemoteMutationError is returned when the platform executed a mutation but
// reported user errors for it.
type RemoteMutationError struct {
	Operation string
	Messages  []string
}

func NewRemoteMutationError(operation string, messages []string) *RemoteMutationError {
	return &RemoteMutationError{Operation: operation, Messages: messages}
}

func (e *RemoteMutationError) Error() string {
	if len(e.Messages) == 0 {
		return e.Operation + ": remote mutation rejected"
	}
	return e.Operation + ": " + strings.Join(e.Messages, "; ")
}

func (e *RemoteMutationError) Is(target error) bool {
	return target == ErrRemoteMutation
}
