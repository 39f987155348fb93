package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is overridden with -ldflags "-X ...cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		info, _ := debug.ReadBuildInfo()
		writeVersion(cmd.OutOrStdout(), version, info)
	},
}

func writeVersion(w io.Writer, v string, info *debug.BuildInfo) {
	fmt.Fprintf(w, "hearwise %s\n", v)
	if info == nil {
		return
	}
	fmt.Fprintf(w, "  go:       %s\n", info.GoVersion)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time", "vcs.modified":
			fmt.Fprintf(w, "  %-9s %s\n", s.Key[len("vcs."):]+":", s.Value)
		}
	}
}
