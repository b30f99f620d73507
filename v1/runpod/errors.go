package runpod

import (
	"errors"
	"fmt"
)

// Common runpod errors
var (
	// ErrInvalidConfig is returned when a required configuration field is
	// empty or blank.
	ErrInvalidConfig = errors.New("runpod: invalid config")

	// ErrMissingCredential is returned when no API key is resolvable at
	// construction time.
	ErrMissingCredential = errors.New("runpod: missing credential")

	// ErrRemoteCall matches every RemoteCallError via errors.Is.
	ErrRemoteCall = errors.New("runpod: remote call failed")
)

// RemoteCallError reports a failed call to the remote embedding endpoint:
// a transport or timeout failure, a non-success HTTP status, or a response
// body the client could not interpret.
type RemoteCallError struct {
	// StatusCode is the HTTP status, or 0 for transport-level failures.
	StatusCode int

	// Message describes the failure; for HTTP errors it carries a body
	// excerpt returned by the service.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *RemoteCallError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("runpod: remote call failed: http %d: %s: %v", e.StatusCode, e.Message, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("runpod: remote call failed: http %d: %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("runpod: remote call failed: %s: %v", e.Message, e.Err)
	default:
		return "runpod: remote call failed: " + e.Message
	}
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

func (e *RemoteCallError) Is(target error) bool { return target == ErrRemoteCall }

// IsInvalidConfigError checks if the error is a configuration validation error.
func IsInvalidConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsMissingCredentialError checks if the error is an unresolvable-credential error.
func IsMissingCredentialError(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

// IsRemoteCallError checks if the error comes from a failed remote call.
func IsRemoteCallError(err error) bool {
	return errors.Is(err, ErrRemoteCall)
}
