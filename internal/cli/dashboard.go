package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-lingua/internal/api"
	"github.com/alnah/go-lingua/internal/apierr"
	"github.com/alnah/go-lingua/internal/reconcile"
)

// DashboardCmd creates the dashboard command.
func DashboardCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show progress, achievements, and the global leaderboard at once",
		Long: `Show progress, achievements, and the global leaderboard at once.

The three views are fetched concurrently. Anonymous users see the guest
progress snapshot and the global leaderboard; the achievements pane is
skipped for them.`,
		Example: `  lingua dashboard`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, env)
		},
	}
}

// runDashboard fetches the three dashboard views concurrently.
func runDashboard(cmd *cobra.Command, env *Env) error {
	client, err := newClient(env)
	if err != nil {
		return err
	}

	var (
		progress     reconcile.CanonicalProgress
		achievements []api.Achievement
		leaders      []api.LeaderboardEntry
		signedOut    bool
	)

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		var err error
		progress, err = client.Progress(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		achievements, err = client.Achievements(ctx)
		var authErr *apierr.AuthError
		if errors.As(err, &authErr) {
			// Anonymous users simply don't get this pane.
			signedOut = true
			return nil
		}
		return err
	})

	g.Go(func() error {
		var err error
		leaders, err = client.Leaderboard(ctx, api.ScopeGlobal, 10)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	printProgress(env, progress)

	fmt.Fprintln(env.Stdout)
	if signedOut {
		fmt.Fprintln(env.Stdout, "Sign in to see your achievements.")
	} else {
		unlocked := 0
		for _, a := range achievements {
			if a.UnlockedAt != nil {
				unlocked++
			}
		}
		fmt.Fprintf(env.Stdout, "Achievements: %d/%d unlocked\n", unlocked, len(achievements))
	}

	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Global leaderboard:")
	for _, e := range leaders {
		fmt.Fprintf(env.Stdout, "%3d. %-20s %6d XP\n", e.Rank, e.Username, e.XP)
	}
	return nil
}
