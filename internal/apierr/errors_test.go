package apierr_test

// Coverage Notes:
// - Classification table covers every taxonomy branch: 4xx, 429, 401, 5xx,
//   transport failure, and timeout.
// - Message extraction probes detail, message, error.message in order, with
//   a generic fallback for non-JSON bodies.
// - Classification is verified to be a pure function (idempotent).

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alnah/go-lingua/internal/apierr"
)

// timeoutErr implements net.Error with Timeout() == true.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

// ---------------------------------------------------------------------------
// TestClassify - status and transport errors map to the right taxonomy branch
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("4xx becomes ClientError and is not retryable", func(t *testing.T) {
		t.Parallel()

		err := apierr.Classify("fetch progress", 404, []byte(`{"detail":"no such user"}`), nil)

		var ce *apierr.ClientError
		if !errors.As(err, &ce) {
			t.Fatalf("Classify() = %T, want *ClientError", err)
		}
		if ce.Status != 404 {
			t.Errorf("Status = %d, want 404", ce.Status)
		}
		if ce.Message != "no such user" {
			t.Errorf("Message = %q, want %q", ce.Message, "no such user")
		}
		if apierr.ShouldRetry(err) {
			t.Error("ShouldRetry() = true for ClientError, want false")
		}
	})

	t.Run("429 is a terminal client error", func(t *testing.T) {
		t.Parallel()

		err := apierr.Classify("buy power-up", 429, []byte(`{"detail":"limit reached"}`), nil)

		var ce *apierr.ClientError
		if !errors.As(err, &ce) {
			t.Fatalf("Classify() = %T, want *ClientError", err)
		}
		if apierr.ShouldRetry(err) {
			t.Error("ShouldRetry() = true for 429, want false")
		}
	})

	t.Run("401 wraps ErrAuthFailed", func(t *testing.T) {
		t.Parallel()

		err := apierr.Classify("update skill", 401, []byte(`{"detail":"token expired"}`), nil)

		if !errors.Is(err, apierr.ErrAuthFailed) {
			t.Errorf("errors.Is(err, ErrAuthFailed) = false, want true: %v", err)
		}
		if apierr.ShouldRetry(err) {
			t.Error("ShouldRetry() = true for 401, want false")
		}
	})

	t.Run("5xx becomes ServerError and is retryable", func(t *testing.T) {
		t.Parallel()

		err := apierr.Classify("fetch leaderboard", 503, []byte("gateway unavailable"), nil)

		var se *apierr.ServerError
		if !errors.As(err, &se) {
			t.Fatalf("Classify() = %T, want *ServerError", err)
		}
		if se.Status != 503 {
			t.Errorf("Status = %d, want 503", se.Status)
		}
		if !apierr.ShouldRetry(err) {
			t.Error("ShouldRetry() = false for ServerError, want true")
		}
	})

	t.Run("transport failure becomes ServerError", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		err := apierr.Classify("fetch progress", 0, nil, cause)

		var se *apierr.ServerError
		if !errors.As(err, &se) {
			t.Fatalf("Classify() = %T, want *ServerError", err)
		}
		if se.Status != 0 {
			t.Errorf("Status = %d, want 0 (no HTTP response)", se.Status)
		}
		if !errors.Is(err, cause) {
			t.Error("classified error should wrap the transport cause")
		}
		if !apierr.ShouldRetry(err) {
			t.Error("ShouldRetry() = false for transport failure, want true")
		}
	})

	t.Run("timeout is classified as retryable ServerError", func(t *testing.T) {
		t.Parallel()

		for _, cause := range []error{context.DeadlineExceeded, timeoutErr{}} {
			err := apierr.Classify("fetch progress", 0, nil, cause)

			var se *apierr.ServerError
			if !errors.As(err, &se) {
				t.Fatalf("Classify(%v) = %T, want *ServerError", cause, err)
			}
			if se.Message != "fetch progress timed out" {
				t.Errorf("Message = %q, want timeout message", se.Message)
			}
			if !apierr.ShouldRetry(err) {
				t.Errorf("ShouldRetry() = false for timeout %v, want true", cause)
			}
		}
	})

	t.Run("classification is idempotent", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"message":"flaky"}`)
		first := apierr.Classify("op", 500, body, nil)
		second := apierr.Classify("op", 500, body, nil)

		if first.Error() != second.Error() {
			t.Errorf("classification not stable: %q vs %q", first.Error(), second.Error())
		}
		if apierr.ShouldRetry(first) != apierr.ShouldRetry(second) {
			t.Error("ShouldRetry not stable across identical classifications")
		}
	})
}

// ---------------------------------------------------------------------------
// TestExtractMessage - field probing order and non-JSON fallback
// ---------------------------------------------------------------------------

func TestExtractMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail wins", `{"detail":"a","message":"b","error":{"message":"c"}}`, "a"},
		{"message second", `{"message":"b","error":{"message":"c"}}`, "b"},
		{"error.message last", `{"error":{"message":"c"}}`, "c"},
		{"empty object", `{}`, ""},
		{"not JSON", `<html>502</html>`, ""},
		{"empty body", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := apierr.ExtractMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("ExtractMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}

	t.Run("non-JSON body falls back to operation name", func(t *testing.T) {
		t.Parallel()

		err := apierr.Classify("fetch achievements", 500, []byte("<html>oops</html>"), nil)

		var se *apierr.ServerError
		if !errors.As(err, &se) {
			t.Fatalf("Classify() = %T, want *ServerError", err)
		}
		if se.Message != "fetch achievements failed" {
			t.Errorf("Message = %q, want generic fallback", se.Message)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAuthError - gate failures carry the feature description
// ---------------------------------------------------------------------------

func TestAuthError(t *testing.T) {
	t.Parallel()

	err := &apierr.AuthError{Feature: "use the power-up shop"}

	want := "sign in to use the power-up shop"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := fmt.Errorf("shop: %w", err)
	var ae *apierr.AuthError
	if !errors.As(wrapped, &ae) {
		t.Error("errors.As should find *AuthError through wrapping")
	}
	if apierr.ShouldRetry(wrapped) {
		t.Error("ShouldRetry() = true for AuthError, want false")
	}
}
