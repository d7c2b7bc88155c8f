package cmd

import (
	"github.com/spf13/cobra"
)

func newCompactCmd(o *rootOptions) *cobra.Command {
	var remove []string

	cmd := &cobra.Command{
		Use:   "compact",
		Short: "Compact the registry and report its occupied range",
		Long: `Compact the registry with the configured strategy and report the number
of records and the first and last occupied slot.

--remove clears the named records before compacting, which shows how
holes are closed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := o.newRegistry()
			if err != nil {
				return err
			}

			for _, name := range remove {
				if _, err := reg.RemoveByName(name); err != nil {
					return err
				}
			}

			r := o.renderer(cmd)
			if first, err := reg.First(); err == nil {
				last, _ := reg.Last()
				r.Info("before: slots %d..%d, %d record(s)", first, last, reg.Len())
			}

			n, err := reg.Compact()
			if err != nil {
				return err
			}

			first, err := reg.First()
			if err != nil {
				r.Success("compacted (%s), registry is empty", reg.Config().Strategy)
				return nil
			}
			last, err := reg.Last()
			if err != nil {
				return err
			}
			r.Success("compacted (%s): %d record(s) in slots %d..%d of %d",
				reg.Config().Strategy, n, first, last, reg.Cap())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&remove, "remove", nil, "names to remove before compacting")
	return cmd
}
