package uigen

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Special tokens
	TokenEOF   TokenType = iota // end of file
	TokenError                  // lexer error

	// Names
	TokenIdent     // component name or keyword: panel, ui
	TokenElementID // #name directly after a component name (literal excludes '#')
	TokenAttrKey   // identifier followed by '='

	// Literals
	TokenString  // "..."
	TokenNumber  // 16, -2.5
	TokenBool    // true, false
	TokenColor   // #RRGGBB or #RRGGBBAA after '=' (literal excludes '#')
	TokenBinding // @path.to.value (literal excludes '@')

	// Punctuation
	TokenEquals // =
	TokenLBrace // {
	TokenRBrace // }
)

// tokenNames maps token types to their string names for debugging.
var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenError:     "Error",
	TokenIdent:     "Ident",
	TokenElementID: "ElementID",
	TokenAttrKey:   "AttrKey",
	TokenString:    "String",
	TokenNumber:    "Number",
	TokenBool:      "Bool",
	TokenColor:     "Color",
	TokenBinding:   "Binding",
	TokenEquals:    "=",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Token represents a lexical token with its type, literal value, and source position.
// Positions are only used for diagnostics.
type Token struct {
	Type     TokenType
	Literal  string
	Line     int
	Column   int
	StartPos int // byte offset in source where token starts
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s at %d:%d", t.Type, t.Line, t.Column)
	}
	// Truncate long literals for readability
	lit := t.Literal
	if len(lit) > 20 {
		lit = lit[:17] + "..."
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, lit, t.Line, t.Column)
}

// Position represents a source code location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
