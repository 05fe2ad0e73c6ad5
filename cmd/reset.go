package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/elan/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete learner progress",
	Long:  "Delete the saved vocabulary, dictation list and level. Exam history and LLM events are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all saved vocabulary and progress. Re-run with --yes to confirm.")
			return nil
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.store.RecordRepo().Delete(commandContext(cmd), progress.RecordName); err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}
		env.log.Info("progress reset", "record", progress.RecordName)
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
