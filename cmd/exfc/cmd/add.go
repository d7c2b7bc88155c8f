package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/exfc/pkg/core/logging"
)

func newAddCmd(o *rootOptions) *cobra.Command {
	var (
		description string
		id          int
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an exception and show the resulting registry",
		Long: `Add an exception to the registry of this invocation.

Without --id the smallest free id at or above the configured offset is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := o.newRegistry()
			if err != nil {
				return err
			}

			name := args[0]
			var index, assigned int
			if cmd.Flags().Changed("id") {
				assigned = id
				index, err = reg.Add(name, description, id)
			} else {
				index, assigned, err = reg.AddNext(name, description)
			}
			if err != nil {
				return err
			}

			o.logger.Debug("exception added", logging.Fields("name", name, "id", assigned, "index", index))

			r := o.renderer(cmd)
			r.Success("added %s (id %d) at slot %d", name, assigned, index)

			records, err := reg.GetAll()
			if err != nil {
				return err
			}
			return r.Records("Exceptions", records)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "exception description")
	cmd.Flags().IntVar(&id, "id", 0, "exception id (default: next free id)")
	return cmd
}
