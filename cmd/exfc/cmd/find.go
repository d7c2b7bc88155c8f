package cmd

import (
	"github.com/spf13/cobra"
)

func newFindCmd(o *rootOptions) *cobra.Command {
	var lf lookupFlags

	cmd := &cobra.Command{
		Use:   "find [NAME]",
		Short: "Find an exception by name, id or both",
		Example: `  exfc find BufferOverflowException
  exfc find --id 3
  exfc find OutOfBoundException --id 5`,
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

			index, rec, err := lookup(reg, name, id)
			if err != nil {
				return err
			}
			return o.renderer(cmd).Record(index, rec)
		},
	}

	lf.register(cmd)
	return cmd
}
