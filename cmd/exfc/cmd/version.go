package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/exfc/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// no configuration is needed to print the version
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "exfc v%s\n", version.Platform)
			for _, c := range []struct{ label, name string }{
				{"Registry:", "registry"},
				{"Catalog:", "catalog"},
				{"Script:", "script"},
			} {
				fmt.Fprintf(out, "  %-11s %s\n", c.label, version.ComponentVersion(c.name))
			}
			fmt.Fprintf(out, "  Git Commit: %s\n", version.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", version.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
