package runpod

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRemoteCallError_MatchesSentinel(t *testing.T) {
	err := &RemoteCallError{StatusCode: 500, Message: "internal"}

	if !errors.Is(err, ErrRemoteCall) {
		t.Error("RemoteCallError does not match ErrRemoteCall")
	}
	if !IsRemoteCallError(fmt.Errorf("wrapped: %w", err)) {
		t.Error("wrapped RemoteCallError not recognized")
	}
}

func TestRemoteCallError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RemoteCallError{Message: "http error", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("RemoteCallError does not unwrap to its cause")
	}
}

func TestRemoteCallError_Message(t *testing.T) {
	cases := []struct {
		err      *RemoteCallError
		contains []string
	}{
		{&RemoteCallError{StatusCode: 404, Message: "not found"}, []string{"404", "not found"}},
		{&RemoteCallError{Message: "decode response", Err: errors.New("bad json")}, []string{"decode response", "bad json"}},
		{&RemoteCallError{Message: "job finished with status FAILED"}, []string{"FAILED"}},
	}

	for _, tc := range cases {
		msg := tc.err.Error()
		if !strings.HasPrefix(msg, "runpod: remote call failed") {
			t.Errorf("unexpected prefix: %q", msg)
		}
		for _, want := range tc.contains {
			if !strings.Contains(msg, want) {
				t.Errorf("message %q missing %q", msg, want)
			}
		}
	}
}

func TestSentinelHelpers(t *testing.T) {
	if !IsInvalidConfigError(fmt.Errorf("%w: endpoint id is required", ErrInvalidConfig)) {
		t.Error("IsInvalidConfigError failed on wrapped sentinel")
	}
	if !IsMissingCredentialError(fmt.Errorf("%w: FOO is not set", ErrMissingCredential)) {
		t.Error("IsMissingCredentialError failed on wrapped sentinel")
	}
	if IsRemoteCallError(ErrInvalidConfig) {
		t.Error("IsRemoteCallError matched an unrelated error")
	}
}
