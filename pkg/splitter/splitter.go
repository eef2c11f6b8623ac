package splitter

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/verilog2oa/pkg/oa"
	"github.com/OpenTraceLab/verilog2oa/pkg/verilog"
)

// Skipped records a module that was extracted but not written.
type Skipped struct {
	Module verilog.Module
	Reason error
}

// Result summarises a run.
type Result struct {
	Input   string           // Resolved input path
	Modules []verilog.Module // Extracted modules, in document order

	Targets     []string          // Distinct cell view directories, in first-seen order
	Dirs        map[string]string // Cell view directory per module name
	Written     []string          // Directories actually written, one entry per write
	Overwritten []string          // Module names declared more than once (last one wins)
	Skipped     []Skipped

	DryRun bool
}

// Run resolves arg, reads the netlist and materialises every module into the
// library described by cfg.
func Run(cfg *Config, arg string) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path, err := Resolve(arg, cfg.Glob)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Split(cfg, path, string(data))
}

// Split materialises the modules of an already loaded document. input is
// only recorded in the result.
func Split(cfg *Config, input, doc string) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lib := cfg.Library()
	res := &Result{
		Input:   input,
		Modules: verilog.Extract(doc),
		Dirs:    make(map[string]string),
		DryRun:  cfg.DryRun,
	}

	seen := make(map[string]int)
	for _, m := range res.Modules {
		if m.Name == "" {
			res.Skipped = append(res.Skipped, Skipped{Module: m, Reason: oa.ErrEmptyCellName})
			continue
		}

		seen[m.Name]++
		switch seen[m.Name] {
		case 1:
			dir := lib.CellViewDir(m.Name)
			res.Targets = append(res.Targets, dir)
			res.Dirs[m.Name] = dir
		case 2:
			res.Overwritten = append(res.Overwritten, m.Name)
		}

		if cfg.DryRun {
			continue
		}

		dir, err := lib.WriteCellView(m)
		if err != nil {
			return res, fmt.Errorf("module %s: %w", m.Name, err)
		}
		res.Written = append(res.Written, dir)
	}

	return res, nil
}
