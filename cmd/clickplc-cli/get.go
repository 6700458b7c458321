package main

import "github.com/spf13/cobra"

func newGetCmd(opt *option) *cobra.Command {
	return &cobra.Command{
		Use:   "get [address|range|nickname]...",
		Short: "Read PLC variables",
		Long: `Read one or more addresses, ranges or nicknames and print the
values as JSON. With no arguments and a loaded tags file, reads every
nicknamed address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plc, closer, err := newDriver(opt)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx := cmd.Context()
			if len(args) == 0 {
				values, err := plc.GetAll(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), values)
			}
			if len(args) == 1 {
				v, err := plc.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), v)
			}
			out := make(map[string]any, len(args))
			for _, key := range args {
				v, err := plc.Get(ctx, key)
				if err != nil {
					return err
				}
				out[key] = v
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
