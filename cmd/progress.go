package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/elan/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		st := env.progress.State()
		perLevel := make(map[progress.Level]int, len(progress.Levels))
		for _, w := range st.Vocabulary {
			perLevel[w.Level]++
		}

		fmt.Printf("Level:        %s\n", st.CurrentLevel)
		fmt.Printf("Vocabulary:   %d words\n", len(st.Vocabulary))
		fmt.Printf("Dictation:    %d words to strengthen\n", len(st.StrengthenSet))
		fmt.Println()
		fmt.Println("Words by level")
		fmt.Println(strings.Repeat("─", 24))
		for _, l := range progress.Levels {
			marker := " "
			if l == st.CurrentLevel {
				marker = "●"
			}
			fmt.Printf("%s %-4s  %6d\n", marker, l, perLevel[l])
		}

		pool := progress.DictationPool(st)
		if len(pool) > 0 {
			fmt.Println()
			fmt.Println("Words to strengthen")
			fmt.Println(strings.Repeat("─", 24))
			for _, w := range pool {
				fmt.Printf("  %-20s %s\n", w.Word, w.Meaning)
			}
		}
		return nil
	},
}

var progressExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the progress record as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		data, err := progress.Encode(env.progress.State())
		if err != nil {
			return fmt.Errorf("encode progress: %w", err)
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" || out == "-" {
			_, err = fmt.Println(string(data))
			return err
		}
		if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Progress written to %s\n", out)
		return nil
	},
}

var progressLevelCmd = &cobra.Command{
	Use:       "level <A1|A2|B1|B2|C1>",
	Short:     "Change the current level",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"A1", "A2", "B1", "B2", "C1"},
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := progress.ParseLevel(args[0])
		if err != nil {
			return err
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if _, err := env.progress.SetLevel(commandContext(cmd), level); err != nil {
			return fmt.Errorf("set level: %w", err)
		}
		fmt.Printf("Level set to %s\n", level)
		return nil
	},
}

func init() {
	progressExportCmd.Flags().StringP("output", "o", "", "File to write (default stdout)")

	progressCmd.AddCommand(progressExportCmd)
	progressCmd.AddCommand(progressLevelCmd)
}
