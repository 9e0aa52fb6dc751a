package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// SkillsCmd creates the skills command with its subcommands.
func SkillsCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "View and update your skill ratings",
		Example: `  lingua skills list
  lingua skills update listening 4`,
	}

	cmd.AddCommand(skillsListCmd(env))
	cmd.AddCommand(skillsUpdateCmd(env))

	return cmd
}

func skillsListCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your per-skill ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSkillsList(cmd, env)
		},
	}
}

func skillsUpdateCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "update <skill> <rating>",
		Short: "Record a new rating (0-5) for one skill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil || rating < 0 || rating > 5 {
				return fmt.Errorf("%w: %q", ErrInvalidRating, args[1])
			}
			return runSkillsUpdate(cmd, env, args[0], rating)
		},
	}
}

// runSkillsList handles the skills list command.
func runSkillsList(cmd *cobra.Command, env *Env) error {
	client, err := newClient(env)
	if err != nil {
		return err
	}

	skills, err := client.SkillRatings(cmd.Context())
	if err != nil {
		return err
	}

	if len(skills) == 0 {
		fmt.Fprintln(env.Stdout, "No skill ratings yet.")
		return nil
	}

	for _, s := range skills {
		fmt.Fprintf(env.Stdout, "%-16s %d/5\n", s.Skill, s.Rating)
	}
	return nil
}

// runSkillsUpdate handles the skills update command.
func runSkillsUpdate(cmd *cobra.Command, env *Env, skill string, rating int) error {
	client, err := newClient(env)
	if err != nil {
		return err
	}

	updated, err := client.UpdateSkillRating(cmd.Context(), skill, rating)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "%s is now %d/5\n", updated.Skill, updated.Rating)
	return nil
}
