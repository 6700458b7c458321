package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grid-x/clickplc"
)

func newSetCmd(opt *option) *cobra.Command {
	return &cobra.Command{
		Use:   "set <address|range|nickname> <value>...",
		Short: "Write PLC variables",
		Long: `Write values starting at an address or nickname. Several values
write consecutive addresses: "set df1 0 0 0" writes df1 through df3. A
range must be given exactly as many values as it spans.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			plc, closer, err := newDriver(opt)
			if err != nil {
				return err
			}
			defer closer.Close()

			key := args[0]
			category, err := keyCategory(plc, key)
			if err != nil {
				return err
			}
			values := make([]clickplc.Value, 0, len(args)-1)
			for _, arg := range args[1:] {
				v, err := parseValue(category, arg)
				if err != nil {
					return fmt.Errorf("%s: %w", key, err)
				}
				values = append(values, v)
			}
			return plc.Set(cmd.Context(), key, values...)
		},
	}
}

// keyCategory resolves the category a set key addresses, so the value
// arguments can be parsed into the right type.
func keyCategory(plc *clickplc.Driver, key string) (clickplc.Category, error) {
	if tags := plc.Tags(); tags != nil {
		if c, _, err := tags.Resolve(key); err == nil {
			return c, nil
		}
	}
	r, err := clickplc.Parse(key)
	if err != nil {
		return 0, err
	}
	return r.Category, nil
}
