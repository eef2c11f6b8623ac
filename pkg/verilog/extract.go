package verilog

import (
	"regexp"
	"strings"
)

// moduleRegex matches a line-initial module block up to the nearest endmodule.
// The start of the document counts as the start of a line.
var moduleRegex = regexp.MustCompile(`(?m)^(module ([a-z_0-9]*)[\s\S]*?endmodule)`)

// Module is a single module block extracted from a netlist.
type Module struct {
	Name   string // Identifier from the declaration, [a-z_0-9]* only
	Source string // Full block text, from "module" through "endmodule"
	Offset int    // Byte offset of Source within the document
	Line   int    // 1-based line of the module keyword
}

// Extract returns every module block in doc, in document order.
// Duplicate names are kept; callers decide what to do with them.
func Extract(doc string) []Module {
	matches := moduleRegex.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return nil
	}

	modules := make([]Module, 0, len(matches))
	line, last := 1, 0
	for _, m := range matches {
		line += strings.Count(doc[last:m[2]], "\n")
		last = m[2]

		// m[2:4] is the block, m[4:6] the name
		modules = append(modules, Module{
			Name:   doc[m[4]:m[5]],
			Source: doc[m[2]:m[3]],
			Offset: m[2],
			Line:   line,
		})
	}
	return modules
}

// Names returns the module names in document order.
func Names(modules []Module) []string {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	return names
}
