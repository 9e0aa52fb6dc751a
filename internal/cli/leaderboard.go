package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lingua/internal/api"
)

// LeaderboardCmd creates the leaderboard command.
func LeaderboardCmd(env *Env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard [global|friends|local]",
		Short: "Show a leaderboard",
		Long: `Show a leaderboard.

The global leaderboard is open to everyone; friends and local require
signing in. The scope defaults to global.`,
		Example: `  lingua leaderboard
  lingua leaderboard friends --limit 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := api.ScopeGlobal
			if len(args) == 1 {
				var err error
				scope, err = parseScope(args[0])
				if err != nil {
					return err
				}
			}
			return runLeaderboard(cmd, env, scope, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of entries (0 = backend default)")

	return cmd
}

// parseScope validates a scope argument at the CLI boundary.
func parseScope(s string) (api.LeaderboardScope, error) {
	switch api.LeaderboardScope(s) {
	case api.ScopeGlobal, api.ScopeFriends, api.ScopeLocal:
		return api.LeaderboardScope(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want global, friends, or local)", ErrUnknownScope, s)
	}
}

// runLeaderboard handles the leaderboard command.
func runLeaderboard(cmd *cobra.Command, env *Env, scope api.LeaderboardScope, limit int) error {
	client, err := newClient(env)
	if err != nil {
		return err
	}

	entries, err := client.Leaderboard(cmd.Context(), scope, limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(env.Stdout, "Leaderboard is empty.")
		return nil
	}

	for _, e := range entries {
		me := ""
		if e.IsMe {
			me = "  <- you"
		}
		fmt.Fprintf(env.Stdout, "%3d. %-20s %6d XP  %d day streak%s\n",
			e.Rank, e.Username, e.XP, e.Streak, me)
	}
	return nil
}
