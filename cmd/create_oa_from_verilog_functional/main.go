// Command create_oa_from_verilog_functional splits a netlist into
// oa/<module>/functional.
package main

import (
	"os"

	"github.com/OpenTraceLab/verilog2oa/cmd/verilog2oa/cmd"
)

func main() {
	os.Exit(cmd.ExecuteFunctional())
}
