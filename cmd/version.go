package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set with -ldflags "-X github.com/abhisek/elan/cmd.version=...".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("elan %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		if rev := revision(); rev != "" {
			fmt.Println("commit", rev)
		}
	},
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
