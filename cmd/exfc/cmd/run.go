package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/msto63/exfc/internal/script"
)

func newRunCmd(o *rootOptions) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Run a YAML script of registry operations",
		Long: `Run a YAML script against one registry.

Operations: add, add-next, remove, find, compact, list, throw. Each step
may declare the outcome it expects (ok, not-found, duplicate, full,
rejected, invalid-argument). A throw step ends the run through the fatal
path and the process exits with the thrown id.

  name: demo
  steps:
    - op: add
      name: TimeoutException
      id: 40
    - op: add
      name: TimeoutException
      id: 41
      expect: duplicate
    - op: list`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.ReadFile(args[0])
			if err != nil {
				return err
			}
			if keepGoing {
				s.ContinueOnError = true
			}

			reg, err := o.newRegistry()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			_, err = script.NewRunner(reg, o.renderer(cmd), o.logger).Run(ctx, s)
			return err
		},
	}

	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "continue after unexpected outcomes")
	return cmd
}
