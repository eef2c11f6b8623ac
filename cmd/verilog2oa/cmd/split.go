package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/verilog2oa/pkg/splitter"
	"github.com/spf13/cobra"
)

// variant describes one of the two library layouts.
type variant struct {
	name    string // subcommand name
	command string // standalone binary name
	short   string
	long    string
	config  func() *splitter.Config
}

var netlistVariant = variant{
	name:    "netlist <netlist_file_path>",
	command: "create_oa_from_verilog <netlist_file_path>",
	short:   "Write /oa/<module>/netlist cell views",
	long: `Expand the argument as a shell pattern, read the first matching file and
write every module into <root>/<module>/netlist (root defaults to /oa).`,
	config: splitter.NetlistConfig,
}

var functionalVariant = variant{
	name:    "functional <netlist_file_path>",
	command: "create_oa_from_verilog_functional <netlist_file_path>",
	short:   "Write oa/<module>/functional cell views",
	long: `Read the netlist at the given path and write every module into
<root>/<module>/functional (root defaults to oa, relative to the working directory).`,
	config: splitter.FunctionalConfig,
}

func newSplitCmd(v variant) *cobra.Command {
	cfg := v.config()

	c := &cobra.Command{
		Use:   v.name,
		Short: v.short,
		Long:  v.long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, cfg, args[0])
		},
	}

	c.Flags().StringVar(&cfg.Root, "root", cfg.Root, "library root directory")
	c.Flags().BoolVarP(&cfg.DryRun, "dry-run", "n", false,
		"list the cell views that would be replaced without writing anything")

	return c
}

// newStandaloneCmd builds a root command for one of the single-purpose
// binaries.
func newStandaloneCmd(v variant) *cobra.Command {
	c := newSplitCmd(v)
	c.Use = v.command
	c.Version = version
	c.SilenceErrors = true
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	return c
}

// ExecuteNetlist runs the standalone glob-resolving command
func ExecuteNetlist() int {
	return run(newStandaloneCmd(netlistVariant))
}

// ExecuteFunctional runs the standalone literal-path command
func ExecuteFunctional() int {
	return run(newStandaloneCmd(functionalVariant))
}

func runSplit(cmd *cobra.Command, cfg *splitter.Config, arg string) error {
	// Arguments are valid past this point, failures are not usage errors
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if verbose {
		fmt.Fprintf(out, "Library: %s (view %s)\n", cfg.Root, cfg.View)
	}

	res, err := splitter.Run(cfg, arg)
	if res != nil {
		reportWarnings(cmd, res)
	}
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(out, "Input: %s, %d module(s)\n", res.Input, len(res.Modules))
	}

	if len(res.Modules) == 0 {
		fmt.Fprintf(errOut, "Warning: no modules found in %s\n", res.Input)
		return nil
	}

	if res.DryRun {
		fmt.Fprintf(out, "Would replace %d cell view(s):\n", len(res.Targets))
		for _, dir := range res.Targets {
			fmt.Fprintf(out, "  %s\n", dir)
		}
		return nil
	}

	if verbose {
		for _, dir := range res.Written {
			fmt.Fprintf(out, "  wrote %s\n", dir)
		}
		fmt.Fprintf(out, "Wrote %d cell view(s) under %s\n", len(res.Targets), cfg.Root)
	}

	return nil
}

func reportWarnings(cmd *cobra.Command, res *splitter.Result) {
	errOut := cmd.ErrOrStderr()
	for _, s := range res.Skipped {
		fmt.Fprintf(errOut, "Warning: skipping module at byte %d: %v\n", s.Module.Offset, s.Reason)
	}
	for _, name := range res.Overwritten {
		fmt.Fprintf(errOut, "Warning: module %s declared more than once, last declaration wins\n", name)
	}
}
