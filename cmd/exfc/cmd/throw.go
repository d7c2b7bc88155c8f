package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/exfc/pkg/exception"
)

func newThrowCmd(o *rootOptions) *cobra.Command {
	var (
		lf       lookupFlags
		message  string
		location exception.Location
	)

	cmd := &cobra.Command{
		Use:   "throw [NAME]",
		Short: "Raise an exception and exit with its id",
		Long: `Raise a registered exception: write its diagnostic to stderr and exit with
the exception id as status.

Without --message a one-line diagnostic is written. With --file the
detailed form including line, function and description is used.`,
		Example: `  exfc throw OutOfMemoryException
  exfc throw --id 4 --message "negative size" --file alloc.c --line 12 --func grow`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id, err := lf.resolve(cmd, args)
			if err != nil {
				return err
			}

			reg, err := o.newRegistry()
			if err != nil {
				return err
			}

			_, rec, err := lookup(reg, name, id)
			if err != nil {
				return err
			}

			o.logger.Debug("throwing", exceptionFields(rec))
			return exception.NewFatal(rec, location, message)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&message, "message", "m", "", "diagnostic message")
	cmd.Flags().StringVar(&location.File, "file", "", "source file of the failure")
	cmd.Flags().IntVar(&location.Line, "line", 0, "source line of the failure")
	cmd.Flags().StringVar(&location.Function, "func", "", "function of the failure")
	return cmd
}
