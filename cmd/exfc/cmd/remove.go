package cmd

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd(o *rootOptions) *cobra.Command {
	var lf lookupFlags

	cmd := &cobra.Command{
		Use:     "remove [NAME]",
		Aliases: []string{"rm"},
		Short:   "Remove an exception by name or id and show the resulting registry",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id, err := lf.resolve(cmd, args)
			if err != nil {
				return err
			}

			reg, err := o.newRegistry()
			if err != nil {
				return err
			}

			var index int
			if id != nil {
				index, err = reg.RemoveByID(*id)
			} else {
				index, err = reg.RemoveByName(name)
			}
			if err != nil {
				return err
			}

			r := o.renderer(cmd)
			r.Success("removed %s from slot %d", describe(name, id), index)

			records, err := reg.GetAll()
			if err != nil {
				return err
			}
			return r.Records("Exceptions", records)
		},
	}

	lf.register(cmd)
	return cmd
}
