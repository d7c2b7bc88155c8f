package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/exfc/internal/catalog"
)

func newListCmd(o *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered exceptions",
		Long: `List all registered exceptions in slot order.

With --format toml or --format yaml the registry is written as a catalog
file that can be passed back through --catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := o.newRegistry()
			if err != nil {
				return err
			}

			records, err := reg.GetAll()
			if err != nil {
				return err
			}

			if format == "" || format == "table" {
				return o.renderer(cmd).Records("Exceptions", records)
			}

			f, err := catalog.ParseFormat(format)
			if err != nil {
				return err
			}
			return catalog.FromRecords(records).Encode(cmd.OutOrStdout(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, toml or yaml")
	return cmd
}
