// Package apierr provides the shared error taxonomy and retry infrastructure
// for the Lingua API client. Every facade classifies request failures into
// these types at the transport boundary, so callers see one vocabulary no
// matter which endpoint failed.
//
// Callers inspect failures with errors.As for the typed errors, or with
// errors.Is(err, apierr.ErrAuthFailed) for a server-declined credential.
package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrAuthFailed indicates the server rejected the bearer credential (401).
// The token is present but expired or revoked; never retried.
var ErrAuthFailed = errors.New("authentication failed")

// ClientError is a terminal 4xx failure. Retrying cannot change the outcome,
// so it is surfaced to the caller as-is with a best-effort message extracted
// from the response body.
//
// 429 is deliberately included: the backend uses it for hard per-account
// limits, not transient throttling, so it is not retried.
type ClientError struct {
	Status  int
	Message string
	Body    string
}

func (e *ClientError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("API error %d", e.Status)
}

// ServerError is a transient failure: a 5xx response, a timeout, a connection
// failure, or a malformed response body. Status is 0 when the request never
// produced an HTTP status (transport failure). Eligible for retry.
type ServerError struct {
	Status  int
	Message string
	Body    string
	Err     error // underlying transport or parse error, if any
}

func (e *ServerError) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("API error %d", e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *ServerError) Unwrap() error { return e.Err }

// AuthError reports that an operation requires a signed-in user. It is raised
// by the auth gate before any network activity and never reaches the
// dispatcher or the retry loop.
type AuthError struct {
	// Feature names what the user is being asked to sign in for,
	// e.g. "use the power-up shop".
	Feature string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("sign in to %s", e.Feature)
}

// errorBody models the error shapes the backend uses. Different endpoints
// disagree on the field carrying the human-readable message.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ExtractMessage pulls a human-readable message out of a JSON error body,
// probing detail, message, and error.message in that order. Returns "" when
// the body is not JSON or carries none of them; it never fails.
func ExtractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	switch {
	case eb.Detail != "":
		return eb.Detail
	case eb.Message != "":
		return eb.Message
	default:
		return eb.Error.Message
	}
}

// Classify maps one request attempt's outcome onto the error taxonomy.
// op names the failing operation for fallback messages ("fetch progress").
// Exactly one of status/transportErr is meaningful: status when a response
// arrived, transportErr when none did.
//
// Classify is a pure function: the same inputs always produce the same
// classification.
func Classify(op string, status int, body []byte, transportErr error) error {
	if transportErr != nil {
		msg := op + " failed"
		if isTimeout(transportErr) {
			msg = op + " timed out"
		}
		return &ServerError{Message: msg, Err: transportErr}
	}

	msg := ExtractMessage(body)
	if msg == "" {
		msg = op + " failed"
	}

	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, ErrAuthFailed)
	case status >= 400 && status < 500:
		return &ClientError{Status: status, Message: msg, Body: string(body)}
	default:
		return &ServerError{Status: status, Message: msg, Body: string(body)}
	}
}

// ShouldRetry reports whether err is transient. Only server-side and
// transport failures qualify; client errors (429 included), auth gate
// failures, and rejected credentials are terminal.
func ShouldRetry(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

// isTimeout detects request timeouts from either the context deadline or the
// transport layer.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
