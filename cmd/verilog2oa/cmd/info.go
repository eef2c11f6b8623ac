package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/OpenTraceLab/verilog2oa/pkg/splitter"
	"github.com/OpenTraceLab/verilog2oa/pkg/verilog"
	"github.com/spf13/cobra"
)

// NetlistInfo represents structured netlist information
type NetlistInfo struct {
	Input       string       `json:"input"`
	Root        string       `json:"root"`
	View        string       `json:"view"`
	ModuleCount int          `json:"module_count"`
	Modules     []ModuleInfo `json:"modules"`
}

// ModuleInfo represents a single extracted module
type ModuleInfo struct {
	Name       string   `json:"name"`
	Line       int      `json:"line"`
	Bytes      int      `json:"bytes"`
	Target     string   `json:"target,omitempty"`
	Duplicate  bool     `json:"duplicate,omitempty"`
	Params     []string `json:"params,omitempty"`
	Ports      []string `json:"ports,omitempty"`
	PortInfo   string   `json:"port_summary,omitempty"`
	ParseError string   `json:"parse_error,omitempty"`
}

func newInfoCmd() *cobra.Command {
	var (
		outputJSON bool
		functional bool
		root       string
	)

	c := &cobra.Command{
		Use:   "info <netlist_file_path>",
		Short: "List the modules of a netlist without writing anything",
		Long: `Extract the modules of a netlist and show, for each one, where it was
found, its header (parameters and ports) and the cell view it would be written to.

Examples:
  verilog2oa info design.v
  verilog2oa info --functional --root lib design.v
  verilog2oa info --json 'build/*.v'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg := splitter.NetlistConfig()
			if functional {
				cfg = splitter.FunctionalConfig()
			}
			if root != "" {
				cfg.Root = root
			}

			info, err := collectInfo(cfg, args[0])
			if err != nil {
				return err
			}

			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			printInfo(cmd, info)
			return nil
		},
	}

	c.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	c.Flags().BoolVar(&functional, "functional", false,
		"use the functional layout (literal path, oa/<module>/functional)")
	c.Flags().StringVar(&root, "root", "", "library root directory (default depends on layout)")

	return c
}

func collectInfo(cfg *splitter.Config, arg string) (*NetlistInfo, error) {
	// Same resolution and extraction as a real run, without the writes
	cfg.DryRun = true
	res, err := splitter.Run(cfg, arg)
	if err != nil {
		return nil, err
	}

	parser, err := verilog.NewParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	modules := res.Modules
	info := &NetlistInfo{
		Input:       res.Input,
		Root:        cfg.Root,
		View:        cfg.View,
		ModuleCount: len(modules),
		Modules:     make([]ModuleInfo, 0, len(modules)),
	}

	duplicate := make(map[string]bool)
	for _, name := range res.Overwritten {
		duplicate[name] = true
	}

	for _, m := range modules {
		mi := ModuleInfo{
			Name:      m.Name,
			Line:      m.Line,
			Bytes:     len(m.Source),
			Target:    res.Dirs[m.Name],
			Duplicate: duplicate[m.Name],
		}

		header, err := parser.ParseHeader(m)
		if err != nil {
			mi.ParseError = err.Error()
		} else {
			for _, p := range header.Params {
				if p.Value != "" {
					mi.Params = append(mi.Params, p.Name+"="+p.Value)
				} else {
					mi.Params = append(mi.Params, p.Name)
				}
			}
			for _, port := range header.Ports {
				mi.Ports = append(mi.Ports, port.String())
			}
			mi.PortInfo = header.PortSummary()
		}

		info.Modules = append(info.Modules, mi)
	}

	return info, nil
}

func printInfo(cmd *cobra.Command, info *NetlistInfo) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Netlist: %s\n", info.Input)
	fmt.Fprintf(out, "Library: %s (view %s)\n", info.Root, info.View)
	fmt.Fprintf(out, "Modules: %d\n\n", info.ModuleCount)

	for _, m := range info.Modules {
		name := m.Name
		if name == "" {
			name = "<unnamed>"
		}
		fmt.Fprintf(out, "  %-24s line %-6d %6d bytes", name, m.Line, m.Bytes)
		if m.Duplicate {
			fmt.Fprint(out, "  [duplicate]")
		}
		fmt.Fprintln(out)

		switch {
		case m.ParseError != "":
			fmt.Fprintf(out, "    header: %s\n", m.ParseError)
		case verbose:
			for _, p := range m.Params {
				fmt.Fprintf(out, "    param  %s\n", p)
			}
			for _, p := range m.Ports {
				fmt.Fprintf(out, "    port   %s\n", p)
			}
		default:
			fmt.Fprintf(out, "    %s\n", m.PortInfo)
		}

		if m.Target != "" {
			fmt.Fprintf(out, "    -> %s\n", m.Target)
		} else {
			fmt.Fprintln(out, "    -> skipped (empty name)")
		}
	}
}
