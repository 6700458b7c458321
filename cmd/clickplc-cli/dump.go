package main

import "github.com/spf13/cobra"

// The default ranges cover the commonly wired portion of each category, to
// keep a dump to a handful of Modbus transactions.
var dumpRanges = []string{
	"x001-x816",
	"y001-y816",
	"c1-c100",
	"df1-df100",
	"ds1-ds100",
	"ctd1-ctd250",
}

func newDumpCmd(opt *option) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Read a standard slice of every supported category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			plc, closer, err := newDriver(opt)
			if err != nil {
				return err
			}
			defer closer.Close()

			out := make(map[string]any)
			for _, rng := range dumpRanges {
				values, err := plc.Get(cmd.Context(), rng)
				if err != nil {
					return err
				}
				for label, v := range values.(map[string]any) {
					out[label] = v
				}
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
