package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/elan/internal/importer"
	"github.com/abhisek/elan/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Import vocabulary from a spreadsheet",
	Long: `Import vocabulary from an Excel workbook or a CSV file.

Columns A to F hold word, phonetic, meaning, example, translation and level.
The first row is treated as a header unless --no-header is given. Words that
were imported before are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := importer.DefaultOptions()
		opts.Sheet, _ = cmd.Flags().GetString("sheet")
		noHeader, _ := cmd.Flags().GetBool("no-header")
		opts.SkipHeader = !noHeader
		if raw, _ := cmd.Flags().GetString("level"); raw != "" {
			l, err := progress.ParseLevel(raw)
			if err != nil {
				return err
			}
			opts.DefaultLevel = l
		}
		strengthen, _ := cmd.Flags().GetBool("strengthen")

		res, err := importer.ReadFile(args[0], opts)
		if err != nil {
			return err
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		sum, err := importer.Apply(commandContext(cmd), env.progress, res.Words, strengthen)
		if err != nil {
			return err
		}
		env.log.Info("vocabulary imported", "file", args[0], "rows", res.Rows,
			"added", sum.Added, "skipped", sum.Skipped, "errors", len(res.Errors))

		fmt.Printf("Rows read:     %d\n", res.Rows)
		fmt.Printf("Words added:   %d\n", sum.Added)
		fmt.Printf("Already known: %d\n", sum.Skipped)
		if strengthen {
			fmt.Printf("To strengthen: %d\n", sum.Strengthened)
		}
		if len(res.Errors) > 0 {
			fmt.Printf("\nSkipped %d invalid rows:\n", len(res.Errors))
			for _, e := range res.Errors {
				fmt.Printf("  %v\n", e)
			}
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "", "Worksheet to read (default first sheet)")
	importCmd.Flags().String("level", "", "Level for rows without one (default A1)")
	importCmd.Flags().Bool("no-header", false, "The first row holds a word, not column names")
	importCmd.Flags().Bool("strengthen", false, "Add imported words to the dictation list")
}
