package verilog

import (
	"fmt"
	"strings"
)

// Header represents a module declaration up to its terminating semicolon
// Example: module counter #(parameter W = 8) (input clk, output [W-1:0] q);
type Header struct {
	Name   string   `KwModule @Ident`
	Params []*Param `( Hash LParen ( @@ ( Comma @@ )* )? RParen )?`
	Ports  []*Port  `( LParen ( @@ ( Comma @@ )* )? RParen )? Semicolon`
}

// Param represents a single entry of a #( ... ) parameter port list
type Param struct {
	Keyword bool   `@KwParameter?`
	Type    string `@( "integer" | "real" | "string" )?`
	Range   *Range `@@?`
	Name    string `@Ident`
	Value   string `( Assign @( Number | Ident | String ) ( @Operator @( Number | Ident ) )* )?`
}

// Port represents one entry of the port list. Non-ANSI headers only carry
// the name; ANSI headers also carry direction, kind and range.
type Port struct {
	Direction string `@( KwInput | KwOutput | KwInout )?`
	Kind      string `@( KwWire | KwReg | KwLogic )?`
	Signed    bool   `@KwSigned?`
	Range     *Range `@@?`
	Name      string `@Ident`
}

// Range represents a packed dimension such as [7:0] or [W-1:0]
type Range struct {
	MSB string `LBracket @( Number | Ident ) ( @Operator @( Number | Ident ) )*`
	LSB string `Colon @( Number | Ident ) ( @Operator @( Number | Ident ) )* RBracket`
}

// String returns the range in source form
func (r *Range) String() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("[%s:%s]", r.MSB, r.LSB)
}

// String returns a compact declaration such as "input [7:0] data"
func (p *Port) String() string {
	var parts []string
	if p.Direction != "" {
		parts = append(parts, p.Direction)
	}
	if p.Kind != "" {
		parts = append(parts, p.Kind)
	}
	if p.Signed {
		parts = append(parts, "signed")
	}
	if p.Range != nil {
		parts = append(parts, p.Range.String())
	}
	parts = append(parts, p.Name)
	return strings.Join(parts, " ")
}

// PortsByDirection counts ports per direction. Ports without a known
// direction (non-ANSI headers) are counted under "".
func (h *Header) PortsByDirection() map[string]int {
	counts := make(map[string]int)
	for _, port := range h.Ports {
		counts[port.Direction]++
	}
	return counts
}

// PortSummary returns a short human readable description of the port list
func (h *Header) PortSummary() string {
	if len(h.Ports) == 0 {
		return "no ports"
	}

	counts := h.PortsByDirection()
	var parts []string
	for _, dir := range []string{"input", "output", "inout"} {
		if n := counts[dir]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, dir))
		}
	}
	if n := counts[""]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d undeclared", n))
	}
	return fmt.Sprintf("%d ports (%s)", len(h.Ports), strings.Join(parts, ", "))
}
