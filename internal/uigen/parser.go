package uigen

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/grindlemire/go-ui/internal/tree"
)

// Parser parses .ui source into a node tree.
//
// Grammar:
//
//	Program   := 'ui' Block
//	Block     := '{' Element* '}'
//	Element   := ComponentName ElementId? Attribute* Block?
//	ElementId := '#' Identifier
//	Attribute := Identifier '=' Value
//	Value     := String | Number | Bool | Color | '@' Path
//
// Parsing stops at the first error.
type Parser struct {
	lexer   *Lexer
	current Token
	tree    *tree.Tree
	errors  *ErrorList
}

// NewParser creates a new Parser for the given lexer.
func NewParser(lexer *Lexer) *Parser {
	p := &Parser{
		lexer:  lexer,
		tree:   tree.New(),
		errors: NewErrorList(),
	}
	p.advance()
	return p
}

// Parse parses source text into a tree.
func Parse(filename, source string) (*tree.Tree, error) {
	return NewParser(NewLexer(filename, source)).Parse()
}

// ParseFile reads and parses a .ui file.
func ParseFile(path string) (*tree.Tree, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{
			Kind:    KindIO,
			Pos:     Position{File: filepath.Base(path)},
			Message: err.Error(),
			Err:     err,
		}
	}
	return Parse(filepath.Base(path), string(source))
}

// Errors returns any errors encountered during parsing.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.lexer.Next()
}

// position returns the current token's position.
func (p *Parser) position() Position {
	return Position{
		File:   p.lexer.filename,
		Line:   p.current.Line,
		Column: p.current.Column,
	}
}

// unexpected records the error for a token that does not fit the grammar.
// End of input and lexer errors get their own kinds.
func (p *Parser) unexpected(want string) {
	switch p.current.Type {
	case TokenEOF:
		p.errors.AddErrorf(KindUnexpectedEOF, p.position(), "unexpected end of input, expected %s", want)
	case TokenError:
		for _, err := range p.lexer.Errors().Errors() {
			p.errors.Add(err)
		}
	default:
		p.errors.AddErrorf(KindUnexpectedToken, p.position(), "unexpected %s, expected %s", p.current, want)
	}
}

// expect checks if the current token matches the expected type and advances.
// Returns true if matched, false otherwise (and records an error).
func (p *Parser) expect(typ TokenType) bool {
	if p.current.Type == typ {
		p.advance()
		return true
	}
	p.unexpected(typ.String())
	return false
}

// Parse parses a complete program. On failure the returned tree is nil.
func (p *Parser) Parse() (*tree.Tree, error) {
	if p.current.Type != TokenIdent || p.current.Literal != "ui" {
		p.unexpected("'ui'")
		return nil, p.errors.Err()
	}
	p.advance()

	if !p.parseBlock(p.tree.Root()) {
		return nil, p.errors.Err()
	}

	if p.current.Type != TokenEOF {
		p.unexpected("end of input")
		return nil, p.errors.Err()
	}
	return p.tree, nil
}

// parseBlock parses '{' Element* '}' and links each element under parent.
func (p *Parser) parseBlock(parent tree.NodeID) bool {
	if !p.expect(TokenLBrace) {
		return false
	}
	for {
		switch p.current.Type {
		case TokenRBrace:
			p.advance()
			return true
		case TokenIdent:
			if !p.parseElement(parent) {
				return false
			}
		default:
			p.unexpected("component name or '}'")
			return false
		}
	}
}

// parseElement parses ComponentName ElementId? Attribute* Block?.
func (p *Parser) parseElement(parent tree.NodeID) bool {
	name := p.current.Literal
	kind, ok := tree.LookupKind(name)
	if !ok {
		p.errors.Add(&Error{
			Kind:    KindUnknownComponent,
			Pos:     p.position(),
			Message: "unknown component " + strconv.Quote(name),
			Hint:    "expected one of container, panel, button, text, number, icon, progress, hbox, vbox, if",
		})
		return false
	}

	id := p.tree.CreateNode(kind)
	if err := p.tree.AddChild(parent, id); err != nil {
		// Fresh nodes always link; anything else is a bug in this parser.
		panic(err)
	}
	p.advance()

	if p.current.Type == TokenElementID {
		if err := p.tree.SetElementID(id, p.current.Literal); err != nil {
			if errors.Is(err, tree.ErrDuplicateElementID) {
				p.errors.AddErrorf(KindDuplicateElementID, p.position(), "duplicate element id #%s", p.current.Literal)
				return false
			}
			panic(err)
		}
		p.advance()
	}

	for p.current.Type == TokenAttrKey {
		key := p.current.Literal
		p.advance()
		if !p.expect(TokenEquals) {
			return false
		}
		v, ok := p.parseValue()
		if !ok {
			return false
		}
		_ = p.tree.SetAttr(id, key, v)
	}

	if p.current.Type == TokenLBrace {
		return p.parseBlock(id)
	}
	return true
}

// parseValue parses one attribute value literal.
func (p *Parser) parseValue() (tree.Value, bool) {
	tok := p.current
	var v tree.Value

	switch tok.Type {
	case TokenString:
		v = tree.String(tok.Literal)
	case TokenNumber:
		n, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errors.AddErrorf(KindLex, p.position(), "invalid number %q", tok.Literal)
			return tree.Value{}, false
		}
		v = tree.Number(n)
	case TokenBool:
		v = tree.Bool(tok.Literal == "true")
	case TokenColor:
		c, err := tree.ParseHex(tok.Literal)
		if err != nil {
			p.errors.AddErrorf(KindLex, p.position(), "malformed color literal: %v", err)
			return tree.Value{}, false
		}
		v = tree.ColorValue(c)
	case TokenBinding:
		v = tree.Binding(tok.Literal)
	default:
		p.unexpected("attribute value")
		return tree.Value{}, false
	}

	p.advance()
	return v, true
}
