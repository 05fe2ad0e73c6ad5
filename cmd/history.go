package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished exams",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		opts := store.QueryOpts{Limit: limit}
		if raw, _ := cmd.Flags().GetString("level"); raw != "" {
			level, err := progress.ParseLevel(raw)
			if err != nil {
				return err
			}
			opts.Level = string(level)
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		results, err := env.store.EventRepo().QueryExamResults(commandContext(cmd), opts)
		if err != nil {
			return fmt.Errorf("query exams: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No exams taken yet.")
			return nil
		}

		t := newTable(os.Stdout, "Time", "Level", "Score", "%", "Attempt")
		for _, r := range results {
			pct := 0
			if r.Total > 0 {
				pct = r.Score * 100 / r.Total
			}
			t.row(stamp(r.CreatedAt), r.Level, fmt.Sprintf("%d/%d", r.Score, r.Total), fmt.Sprintf("%d%%", pct), r.AttemptID)
		}
		return t.flush()
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of exams to show")
	historyCmd.Flags().StringP("level", "l", "", "Only show one level (A1 to C1)")
}
