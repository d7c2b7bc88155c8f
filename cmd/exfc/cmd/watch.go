package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/exfc/internal/catalog"
)

func newWatchCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-list the registry whenever the catalog file changes",
		Long: `Build the registry, list it and rebuild it each time the catalog file
is saved. Stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := o.cfg.Catalog.Path
			if path == "" {
				return errors.New("watch needs a catalog: pass --catalog or set catalog.path")
			}

			r := o.renderer(cmd)
			show := func() error {
				reg, err := o.newRegistry()
				if err != nil {
					return err
				}
				records, err := reg.GetAll()
				if err != nil {
					return err
				}
				return r.Records(path, records)
			}

			if err := show(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return catalog.NewWatcher(path, o.logger).
				OnChange(func(*catalog.File) {
					if err := show(); err != nil {
						r.Failure("%v", err)
					}
				}).
				OnError(func(err error) {
					r.Failure("%v", err)
				}).
				Run(ctx)
		},
	}
}
