package verilog

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// VerilogLexer defines the lexical structure of a Verilog module header.
// Only the tokens that can appear between "module" and the first ";" are
// modelled; anything else falls through to Other.
var VerilogLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - C style
	{Name: "Comment", Pattern: `//[^\n]*|/\*[\s\S]*?\*/`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords (case-sensitive in Verilog)
	{Name: "KwModule", Pattern: `\bmodule\b`},
	{Name: "KwParameter", Pattern: `\bparameter\b`},

	// Port directions
	{Name: "KwInput", Pattern: `\binput\b`},
	{Name: "KwOutput", Pattern: `\boutput\b`},
	{Name: "KwInout", Pattern: `\binout\b`},

	// Net and variable kinds
	{Name: "KwWire", Pattern: `\bwire\b`},
	{Name: "KwReg", Pattern: `\breg\b`},
	{Name: "KwLogic", Pattern: `\blogic\b`},
	{Name: "KwSigned", Pattern: `\bsigned\b`},

	// Punctuation
	{Name: "Hash", Pattern: `#`},
	{Name: "Assign", Pattern: `=`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Semicolon", Pattern: `;`},
	{Name: "Comma", Pattern: `,`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Operator", Pattern: `[-+*/]`},

	// Literals
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Sized/based numbers (8'hFF, 'b1010, 4'sd3) and plain decimals
	{Name: "Number", Pattern: `[0-9]*'[sS]?[bBoOdDhH][0-9a-fA-FxXzZ_?]+|[0-9][0-9_]*(?:\.[0-9]+)?`},

	// Identifiers (must come after keywords), including escaped identifiers
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*|\\\S+`},

	{Name: "Other", Pattern: `\S`},
})
