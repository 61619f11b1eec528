package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrCodeTimeout:    "timeout",
		ErrCodeConnection: "connection",
		ErrCodeValidation: "validation",
		ErrorCode(99):     "unknown",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("code %d: expected %q, got %q", code, want, got)
		}
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := NewConnectionError(cause)
	if !errors.Is(err, cause) {
		t.Error("expected unwrap to reach cause")
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsTimeout(NewTimeoutError(fmt.Errorf("deadline"))) {
		t.Error("expected IsTimeout true")
	}
	if !IsConnection(NewConnectionError(fmt.Errorf("refused"))) {
		t.Error("expected IsConnection true")
	}
	if IsTimeout(NewValidationError("bad")) || IsConnection(fmt.Errorf("plain")) {
		t.Error("expected helpers false for other errors")
	}
}
