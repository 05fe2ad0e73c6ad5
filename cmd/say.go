package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var sayCmd = &cobra.Command{
	Use:   "say <text>",
	Short: "Pronounce French text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := commandContext(cmd)
		newSpeaker(ctx, env).Speak(ctx, strings.Join(args, " "))
		return nil
	},
}
