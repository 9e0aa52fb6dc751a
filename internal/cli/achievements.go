package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AchievementsCmd creates the achievements command.
func AchievementsCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "achievements",
		Short:   "List your achievements",
		Example: `  lingua achievements`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAchievements(cmd, env)
		},
	}
}

// runAchievements handles the achievements command.
func runAchievements(cmd *cobra.Command, env *Env) error {
	client, err := newClient(env)
	if err != nil {
		return err
	}

	achievements, err := client.Achievements(cmd.Context())
	if err != nil {
		return err
	}

	if len(achievements) == 0 {
		fmt.Fprintln(env.Stdout, "No achievements yet.")
		return nil
	}

	for _, a := range achievements {
		mark := " "
		if a.UnlockedAt != nil {
			mark = "x"
		}
		fmt.Fprintf(env.Stdout, "[%s] %s (%d/%d)\n", mark, a.Title, a.Progress, a.Target)
		if a.Description != "" {
			fmt.Fprintf(env.Stdout, "    %s\n", a.Description)
		}
	}
	return nil
}
