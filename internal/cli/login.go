package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// LoginCmd creates the login command.
// The env parameter provides injectable dependencies for testing.
func LoginCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Sign in with an API token",
		Long: `Sign in with an API token.

The token is saved to ~/.config/go-lingua/token with owner-only permissions
and used for all subsequent commands. Get a token from your account page.

The LINGUA_TOKEN environment variable, when set, overrides the saved token.`,
		Example: `  lingua login lng_3f9a...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(env, args[0])
		},
	}
}

// LogoutCmd creates the logout command.
func LogoutCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Sign out and forget the saved token",
		Example: `  lingua logout`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(env)
		},
	}
}

// WhoamiCmd creates the whoami command.
func WhoamiCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show whether you are signed in",
		Example: `  lingua whoami`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(env)
		},
	}
}

// runLogin handles the login command.
func runLogin(env *Env, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := env.TokenStore.Save(token); err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, "Signed in.")
	return nil
}

// runLogout handles the logout command.
func runLogout(env *Env) error {
	if err := env.TokenStore.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, "Signed out.")
	return nil
}

// runWhoami handles the whoami command.
func runWhoami(env *Env) error {
	token, err := env.TokenStore.Load()
	if err != nil {
		return err
	}

	if token == "" {
		fmt.Fprintln(env.Stdout, "Not signed in.")
		return nil
	}

	fmt.Fprintf(env.Stdout, "Signed in (token %s)\n", maskToken(token))
	return nil
}

// maskToken keeps only a short prefix of the credential visible.
func maskToken(token string) string {
	const visible = 6
	if len(token) <= visible {
		return "****"
	}
	return token[:visible] + "..."
}
