package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

const version = "0.9.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "verilog2oa",
		Short: "Split Verilog netlists into OpenAccess-style libraries",
		Long: `Extract every line-initial "module ... endmodule" block from a Verilog
netlist and write it to its own cell view directory, next to a master.tag file.

Existing cell view directories are removed and recreated on every run.

Examples:
  verilog2oa netlist 'build/*.v'                 # Write /oa/<module>/netlist
  verilog2oa functional design.v                 # Write oa/<module>/functional
  verilog2oa functional --root lib design.v      # Write lib/<module>/functional
  verilog2oa info --json design.v                # List modules without writing`,
		Version:       version,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newSplitCmd(netlistVariant))
	rootCmd.AddCommand(newSplitCmd(functionalVariant))
	rootCmd.AddCommand(newInfoCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	os.Exit(run(newRootCmd()))
}

// run executes c and maps its outcome to a process exit status.
func run(c *cobra.Command) int {
	if err := c.Execute(); err != nil {
		fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}
