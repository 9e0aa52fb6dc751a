package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lingua/internal/reconcile"
)

// ProgressCmd creates the progress command.
// The env parameter provides injectable dependencies for testing.
func ProgressCmd(env *Env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show your learning progress",
		Long: `Show your learning progress: XP, level, streak, and coins.

Works without signing in; anonymous users see a fresh level-1 snapshot.`,
		Example: `  lingua progress
  lingua progress --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgress(cmd, env, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print progress as JSON")

	return cmd
}

// runProgress handles the progress command.
func runProgress(cmd *cobra.Command, env *Env, asJSON bool) error {
	client, err := newClient(env)
	if err != nil {
		return err
	}

	progress, err := client.Progress(cmd.Context())
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(progress)
	}

	printProgress(env, progress)
	return nil
}

// printProgress renders a progress snapshot as human-readable lines.
func printProgress(env *Env, p reconcile.CanonicalProgress) {
	fmt.Fprintf(env.Stdout, "Level %d — %d XP\n", p.Level, p.XPTotal)
	if p.XPForNextLevel > p.XPForCurrentLevel {
		fmt.Fprintf(env.Stdout, "Next level: %d/%d XP (%.0f%%)\n",
			p.XPTotal-p.XPForCurrentLevel,
			p.XPForNextLevel-p.XPForCurrentLevel,
			p.ProgressToNextLevel*100)
	}
	fmt.Fprintf(env.Stdout, "Streak: %d days (best %d)\n", p.StreakDays, p.MaxStreak)
	fmt.Fprintf(env.Stdout, "Coins: %d\n", p.Coins)
	if p.LastLessonAt != nil {
		fmt.Fprintf(env.Stdout, "Last lesson: %s\n", p.LastLessonAt.Format("2006-01-02 15:04"))
	}
}
