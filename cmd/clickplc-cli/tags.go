package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grid-x/clickplc"
)

func newTagsCmd(opt *option) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the loaded nicknames and their addresses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			plc, closer, err := newDriver(opt)
			if err != nil {
				return err
			}
			defer closer.Close()

			idx := plc.Tags()
			if idx == nil {
				return fmt.Errorf("no tags file loaded (use --tags)")
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, nickname := range idx.All() {
				category, index, err := idx.Resolve(nickname)
				if err != nil {
					return err
				}
				addr := clickplc.AddressRange{Category: category, Start: index, End: index}
				fmt.Fprintf(w, "%s\t%s\n", nickname, addr)
			}
			return w.Flush()
		},
	}
}
