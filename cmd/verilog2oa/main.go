package main

import "github.com/OpenTraceLab/verilog2oa/cmd/verilog2oa/cmd"

func main() {
	cmd.Execute()
}
