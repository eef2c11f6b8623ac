// Command create_oa_from_verilog splits a netlist into /oa/<module>/netlist.
package main

import (
	"os"

	"github.com/OpenTraceLab/verilog2oa/cmd/verilog2oa/cmd"
)

func main() {
	os.Exit(cmd.ExecuteNetlist())
}
