package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alnah/go-lingua/internal/apierr"
	"github.com/alnah/go-lingua/internal/cli"
)

// Injected at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitGeneral   = 1
	ExitUsage     = 2
	ExitAuth      = 3
	ExitClient    = 4
	ExitServer    = 5
	ExitInterrupt = 130
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	// Context with signal cancellation.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create the CLI environment with production defaults.
	env := cli.DefaultEnv()

	// Root command.
	rootCmd := &cobra.Command{
		Use:     "lingua",
		Short:   "Track language-learning progress from the command line",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		// Silence Cobra's default error/usage printing; we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Subcommands.
	rootCmd.AddCommand(cli.LoginCmd(env))
	rootCmd.AddCommand(cli.LogoutCmd(env))
	rootCmd.AddCommand(cli.WhoamiCmd(env))
	rootCmd.AddCommand(cli.ProgressCmd(env))
	rootCmd.AddCommand(cli.SkillsCmd(env))
	rootCmd.AddCommand(cli.AchievementsCmd(env))
	rootCmd.AddCommand(cli.LeaderboardCmd(env))
	rootCmd.AddCommand(cli.ShopCmd(env))
	rootCmd.AddCommand(cli.PrefsCmd(env))
	rootCmd.AddCommand(cli.DashboardCmd(env))
	rootCmd.AddCommand(cli.ConfigCmd(env))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to exit codes.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	// Check for context cancellation (interrupt).
	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}

	// Usage errors (ExitUsage = 2): Cobra flag/arg parsing errors.
	// Cobra doesn't expose typed errors, so we check for known error message patterns.
	// These patterns are stable across Cobra versions (tested with v1.8+).
	if isCobraUsageError(err) {
		return ExitUsage
	}

	// Auth errors (ExitAuth = 3): the local gate or a server-side 401.
	var authErr *apierr.AuthError
	if errors.As(err, &authErr) || errors.Is(err, apierr.ErrAuthFailed) {
		return ExitAuth
	}

	// Client-side errors (ExitClient = 4): 4xx responses and local validation.
	var clientErr *apierr.ClientError
	if errors.As(err, &clientErr) ||
		errors.Is(err, cli.ErrEmptyToken) || errors.Is(err, cli.ErrUnknownPowerUp) ||
		errors.Is(err, cli.ErrUnknownScope) || errors.Is(err, cli.ErrInvalidRating) {
		return ExitClient
	}

	// Server-side errors (ExitServer = 5): 5xx, transport, timeout, malformed body.
	var serverErr *apierr.ServerError
	if errors.As(err, &serverErr) {
		return ExitServer
	}

	return ExitGeneral
}

// cobraUsageErrorPatterns contains error message substrings that indicate Cobra usage errors.
// These patterns are stable across Cobra versions (tested with v1.8+).
// Cobra doesn't expose typed errors, so string matching is the only reliable approach.
var cobraUsageErrorPatterns = []string{
	"required flag",             // Missing required flag
	"unknown flag",              // Flag doesn't exist
	"unknown shorthand",         // Short flag doesn't exist
	"flag needs an argument",    // Flag provided without value
	"invalid argument",          // Invalid flag value type
	"if any flags in the group", // Mutually exclusive flag violation
	"accepts ",                  // Wrong number of arguments (e.g., "accepts 1 arg(s)")
	"requires at least",         // Too few arguments
	"requires at most",          // Too many arguments
	"unknown command",           // Subcommand doesn't exist
}

// isCobraUsageError checks if an error is a Cobra usage/parsing error.
func isCobraUsageError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	for _, pattern := range cobraUsageErrorPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
