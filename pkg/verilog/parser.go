package verilog

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser parses module headers. It does not look past the first semicolon
// of a module, so bodies never need to be valid for the grammar.
type Parser struct {
	parser *participle.Parser[Header]
}

// NewParser creates a new module header parser
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Header](
		participle.Lexer(VerilogLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// ParseHeader parses the declaration header of an extracted module
func (p *Parser) ParseHeader(m Module) (*Header, error) {
	return p.ParseString(m.Name, m.Source)
}

// ParseString parses the header at the start of src. filename is only used
// in error positions.
func (p *Parser) ParseString(filename, src string) (*Header, error) {
	header, err := p.parser.ParseString(filename, headerText(src))
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	// ANSI port lists: "input [7:0] a, b" declares b like a
	var decl *Port
	for _, port := range header.Ports {
		if port.Direction != "" {
			decl = port
			continue
		}
		if decl == nil {
			continue
		}
		port.Direction = decl.Direction
		if port.Kind == "" && port.Range == nil && !port.Signed {
			port.Kind = decl.Kind
			port.Signed = decl.Signed
			port.Range = decl.Range
		}
	}

	return header, nil
}

// headerText returns src up to and including the first semicolon that is
// not inside a comment. If there is none, src is returned unchanged and the
// grammar reports the missing terminator.
func headerText(src string) string {
	for i := 0; i < len(src); i++ {
		switch {
		case strings.HasPrefix(src[i:], "//"):
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				return src
			}
			i += end
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return src
			}
			i += end + 3
		case src[i] == ';':
			return src[:i+1]
		}
	}
	return src
}
