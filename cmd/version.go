package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information (injected at build time via -ldflags)
// These default values indicate a development build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Display detailed version information for quickwins",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		verbose, _ := cmd.Flags().GetBool("verbose-build")

		if !verbose {
			fmt.Fprintf(out, "quickwins version %s\n", Version)
			return
		}

		fmt.Fprintf(out, `quickwins Version Information:
  Version:    %s
  Git Commit: %s
  Build Date: %s
  Go Version: %s
  OS/Arch:    %s/%s
  User-Agent: %s
`, Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH, cliConfig.UserAgent)
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose-build", "v", false, "Show detailed version information")
}
