// Package splitter turns a multi-module Verilog netlist into an
// OpenAccess-style library: one <root>/<module>/<view> directory per module,
// each holding verilog.v and master.tag.
//
// # Overview
//
// A run is a single sequential pass:
//  1. Resolve the input argument (shell glob or literal path)
//  2. Read the whole file and extract line-initial module blocks
//  3. For every block, replace its cell view directory and write both files
//
// # Usage
//
//	cfg := splitter.NetlistConfig()
//	cfg.Root = t.TempDir()
//
//	res, err := splitter.Run(cfg, "design/*.v")
//	if err != nil {
//		return err
//	}
//	for _, dir := range res.Written {
//		fmt.Println(dir)
//	}
//
// # Overwrite semantics
//
// Existing cell view directories are removed before being recreated, so two
// runs over the same input leave identical trees. When a netlist declares the
// same module twice, the later block wins and the name is listed in
// Result.Overwritten.
//
// # Limitations
//
//   - Extraction is a regular expression, not a Verilog parser
//   - Keywords inside comments or strings are not recognised as such
//   - Writes are not transactional; a failure leaves a partial library
package splitter
