// Package cmd wires elan's cobra commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "elan",
	Short: "French tutor for the terminal",
	Long: `Élan: an AI-assisted terminal app for learning French.

Practise vocabulary, everyday sentences, grammar, reading and dictation,
then check yourself with a quick exam. Run without a subcommand to open
the interactive app.`,
	SilenceUsage: true,
	RunE:         func(cmd *cobra.Command, _ []string) error { return runApp(cmd) },
}

// Execute runs the command named on the command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "SQLite database file (overrides ELAN_DB)")
	pf.String("config", "", "YAML config file (default $XDG_CONFIG_HOME/elan/config.yaml)")
	pf.String("env", ".env", ".env file to load; variables already set win")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(
		runCmd,
		progressCmd,
		historyCmd,
		importCmd,
		resetCmd,
		sayCmd,
		llmCmd,
		versionCmd,
	)
}
