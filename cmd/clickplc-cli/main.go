// Command clickplc-cli reads and writes Koyo ClickPLC variables over
// Modbus TCP using the Click software's address notation, e.g.:
//
//	clickplc-cli -a 192.168.0.10:502 get df1-df20
//	clickplc-cli -a 192.168.0.10:502 set y101 true
//	clickplc-cli -a 192.168.0.10:502 --tags plc.csv get
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	opt := &option{}

	rootCmd := &cobra.Command{
		Use:           "clickplc-cli",
		Short:         "Command-line client for ClickPLC devices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opt.address, "address", "a", "", "device address, host:port (port defaults to 502)")
	pf.IntVar(&opt.slaveID, "slave", 0, "Modbus unit/slave ID")
	pf.DurationVar(&opt.timeout, "timeout", 0, "Modbus transaction timeout")
	pf.StringVar(&opt.tags, "tags", "", "path to a Click nickname export (CSV)")
	pf.StringVarP(&opt.configPath, "config", "c", "", "path to a YAML config file")
	pf.BoolVar(&opt.sim, "sim", false, "run against an in-memory simulated PLC")
	pf.BoolVar(&opt.debug, "debug", false, "log Modbus transactions")

	rootCmd.AddCommand(
		newGetCmd(opt),
		newSetCmd(opt),
		newDumpCmd(opt),
		newTagsCmd(opt),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
