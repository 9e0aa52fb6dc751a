package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alnah/go-lingua/internal/apierr"
	"github.com/alnah/go-lingua/internal/cli"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitOK},
		{"context canceled", context.Canceled, ExitInterrupt},
		{"wrapped context canceled", fmt.Errorf("fetch progress: %w", context.Canceled), ExitInterrupt},
		{"cobra unknown flag", errors.New(`unknown flag: --bogus`), ExitUsage},
		{"cobra wrong arg count", errors.New(`accepts 1 arg(s), received 0`), ExitUsage},
		{"cobra unknown command", errors.New(`unknown command "frobnicate" for "lingua"`), ExitUsage},
		{"gate auth error", &apierr.AuthError{Feature: "use the power-up shop"}, ExitAuth},
		{"server-side auth failure", fmt.Errorf("fetch progress: %w", apierr.ErrAuthFailed), ExitAuth},
		{"client error", &apierr.ClientError{Status: 404, Message: "not found"}, ExitClient},
		{"empty token", cli.ErrEmptyToken, ExitClient},
		{"unknown power-up", fmt.Errorf("%w: %q", cli.ErrUnknownPowerUp, "mystery"), ExitClient},
		{"unknown scope", cli.ErrUnknownScope, ExitClient},
		{"invalid rating", cli.ErrInvalidRating, ExitClient},
		{"server error", &apierr.ServerError{Status: 503, Message: "down"}, ExitServer},
		{"transport error", &apierr.ServerError{Message: "connection refused"}, ExitServer},
		{"retries exhausted wraps server error", fmt.Errorf("max retries (2) exceeded: %w", &apierr.ServerError{Status: 500}), ExitServer},
		{"unclassified error", errors.New("something else"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsCobraUsageError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"required flag", errors.New(`required flag(s) "script" not set`), true},
		{"flag needs argument", errors.New(`flag needs an argument: --limit`), true},
		{"domain error", errors.New("fetch progress: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isCobraUsageError(tt.err); got != tt.want {
				t.Errorf("isCobraUsageError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
