package splitter

import (
	"fmt"

	"github.com/OpenTraceLab/verilog2oa/pkg/oa"
)

// Config controls where a run reads from and writes to.
type Config struct {
	// Input handling
	Glob bool // Expand the input argument as a shell pattern and use the first match

	// Output layout
	Root string // Library root directory (default: "/oa" or "oa")
	View string // View directory below each cell (default: "netlist" or "functional")

	DryRun bool // Extract and report, but never touch the filesystem
}

// NetlistConfig returns the configuration of the glob-resolving variant,
// writing /oa/<module>/netlist.
func NetlistConfig() *Config {
	return &Config{
		Glob: true,
		Root: "/oa",
		View: oa.ViewNetlist,
	}
}

// FunctionalConfig returns the configuration of the literal-path variant,
// writing oa/<module>/functional relative to the working directory.
func FunctionalConfig() *Config {
	return &Config{
		Glob: false,
		Root: "oa",
		View: oa.ViewFunctional,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("splitter: library root must not be empty")
	}
	if c.View == "" {
		return fmt.Errorf("splitter: view name must not be empty")
	}
	return nil
}

// Library returns the output library described by the configuration.
func (c *Config) Library() *oa.Library {
	return oa.NewLibrary(c.Root, c.View)
}
