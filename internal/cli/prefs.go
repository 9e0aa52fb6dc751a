package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lingua/internal/api"
)

// PrefsCmd creates the prefs command with its subcommands.
func PrefsCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage script preferences",
		Example: `  lingua prefs show
  lingua prefs set --script kana --romanization=false
  lingua prefs reset`,
	}

	cmd.AddCommand(prefsShowCmd(env))
	cmd.AddCommand(prefsSetCmd(env))
	cmd.AddCommand(prefsResetCmd(env))

	return cmd
}

func prefsShowCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your script preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(env)
			if err != nil {
				return err
			}
			prefs, err := client.ScriptPreferences(cmd.Context())
			if err != nil {
				return err
			}
			printPrefs(env, prefs)
			return nil
		},
	}
}

func prefsSetCmd(env *Env) *cobra.Command {
	var prefs api.ScriptPreferences

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace your script preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(env)
			if err != nil {
				return err
			}
			updated, err := client.UpdateScriptPreferences(cmd.Context(), prefs)
			if err != nil {
				return err
			}
			printPrefs(env, updated)
			return nil
		},
	}

	cmd.Flags().StringVar(&prefs.PreferredScript, "script", "", "Preferred script (e.g. kana, kanji, romaji)")
	cmd.Flags().BoolVar(&prefs.ShowRomanization, "romanization", false, "Show romanization above text")
	cmd.Flags().BoolVar(&prefs.ShowPitchAccent, "pitch-accent", false, "Show pitch accent marks")

	return cmd
}

func prefsResetCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default script preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(env)
			if err != nil {
				return err
			}
			prefs, err := client.ResetScriptPreferences(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(env.Stdout, "Preferences reset.")
			printPrefs(env, prefs)
			return nil
		},
	}
}

func printPrefs(env *Env, p api.ScriptPreferences) {
	fmt.Fprintf(env.Stdout, "Script: %s\n", p.PreferredScript)
	fmt.Fprintf(env.Stdout, "Romanization: %v\n", p.ShowRomanization)
	fmt.Fprintf(env.Stdout, "Pitch accent: %v\n", p.ShowPitchAccent)
}
