package uigen

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes .ui source files.
type Lexer struct {
	filename string
	source   string
	pos      int  // current position in source
	readPos  int  // next position to read
	ch       rune // current character
	line     int  // current line (1-based)
	column   int  // current column (1-based)

	// Track the start position of current token
	tokenLine     int
	tokenColumn   int
	tokenStartPos int // byte offset where current token starts

	// '#' means an element id after a component name and a color after '='.
	prev TokenType

	comments int

	errors *ErrorList
}

// NewLexer creates a new Lexer for the given source.
func NewLexer(filename, source string) *Lexer {
	l := &Lexer{
		filename: filename,
		source:   source,
		line:     1,
		column:   0,
		prev:     TokenEOF,
		errors:   NewErrorList(),
	}
	l.readChar()
	return l
}

// Errors returns any errors encountered during lexing.
func (l *Lexer) Errors() *ErrorList {
	return l.errors
}

// Comments returns how many comments the lexer has skipped so far.
func (l *Lexer) Comments() int {
	return l.comments
}

// HasComments reports whether source contains any comment. Printing a parsed
// tree drops comments, so callers use this before rewriting a file.
func HasComments(source string) bool {
	l := NewLexer("", source)
	for {
		switch l.Next().Type {
		case TokenEOF, TokenError:
			return l.Comments() > 0
		}
	}
}

// readChar advances to the next character in the source.
func (l *Lexer) readChar() {
	// Track if previous char was a newline for line counting
	prevWasNewline := l.ch == '\n'

	if l.readPos >= len(l.source) {
		l.ch = 0 // EOF
		l.pos = l.readPos
		if prevWasNewline {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		return
	}

	r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size

	if prevWasNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// atEOF reports whether the whole source has been consumed. A NUL byte
// inside the source is an ordinary character.
func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.source)
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

// startToken marks the beginning of a new token.
func (l *Lexer) startToken() {
	l.tokenLine = l.line
	l.tokenColumn = l.column
	l.tokenStartPos = l.pos
}

// makeToken creates a token with the current start position.
func (l *Lexer) makeToken(typ TokenType, literal string) Token {
	l.prev = typ
	return Token{
		Type:     typ,
		Literal:  literal,
		Line:     l.tokenLine,
		Column:   l.tokenColumn,
		StartPos: l.tokenStartPos,
	}
}

// errorToken records a lex error at the current token start and returns an error token.
func (l *Lexer) errorToken(literal, format string, args ...any) Token {
	l.errors.AddErrorf(KindLex, l.position(), format, args...)
	return l.makeToken(TokenError, literal)
}

// position returns the current Position for error reporting.
func (l *Lexer) position() Position {
	return Position{
		File:   l.filename,
		Line:   l.tokenLine,
		Column: l.tokenColumn,
	}
}

// Next returns the next token from the source.
func (l *Lexer) Next() Token {
	if tok, ok := l.skipWhitespaceAndComments(); !ok {
		return tok
	}

	l.startToken()

	if l.atEOF() {
		return l.makeToken(TokenEOF, "")
	}

	switch l.ch {
	case '{':
		l.readChar()
		return l.makeToken(TokenLBrace, "{")

	case '}':
		l.readChar()
		return l.makeToken(TokenRBrace, "}")

	case '=':
		l.readChar()
		return l.makeToken(TokenEquals, "=")

	case '#':
		switch l.prev {
		case TokenIdent:
			return l.readElementID()
		case TokenEquals:
			return l.readColor()
		}
		l.readChar()
		return l.errorToken("#", "unexpected '#': element ids follow a component name and colors follow '='")

	case '@':
		return l.readBinding()

	case '"':
		return l.readString()

	case '-', '+':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}

	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
	}

	// Unknown character
	ch := l.ch
	l.readChar()
	return l.errorToken(string(ch), "unexpected character %q", ch)
}

// skipWhitespaceAndComments skips whitespace, newlines, and comments.
// It returns false with an error token if a block comment is never closed.
func (l *Lexer) skipWhitespaceAndComments() (Token, bool) {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '/':
			switch l.peekChar() {
			case '/':
				l.comments++
				for l.ch != '\n' && !l.atEOF() {
					l.readChar()
				}
			case '*':
				l.comments++
				l.startToken()
				l.readChar() // skip /
				l.readChar() // skip *
				for !(l.ch == '*' && l.peekChar() == '/') {
					if l.atEOF() {
						return l.errorToken("/*", "unterminated block comment"), false
					}
					l.readChar()
				}
				l.readChar() // skip *
				l.readChar() // skip /
			default:
				return Token{}, true
			}
		default:
			return Token{}, true
		}
	}
}

// readIdentifier reads an identifier, keyword, or attribute key.
func (l *Lexer) readIdentifier() Token {
	startPos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '-' {
		l.readChar()
	}
	literal := l.source[startPos:l.pos]

	switch literal {
	case "true", "false":
		return l.makeToken(TokenBool, literal)
	}
	if l.equalsFollows() {
		return l.makeToken(TokenAttrKey, literal)
	}
	return l.makeToken(TokenIdent, literal)
}

// equalsFollows reports whether the next non-blank character is '='.
func (l *Lexer) equalsFollows() bool {
	for i := l.pos; i < len(l.source); i++ {
		switch l.source[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case '=':
			return true
		default:
			return false
		}
	}
	return false
}

// readElementID reads "#name" after a component name.
func (l *Lexer) readElementID() Token {
	l.readChar() // consume #
	if !isLetter(l.ch) {
		return l.errorToken("#", "expected element id after '#'")
	}
	startPos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '-' {
		l.readChar()
	}
	return l.makeToken(TokenElementID, l.source[startPos:l.pos])
}

// readColor reads "#RRGGBB" or "#RRGGBBAA" in attribute value position.
func (l *Lexer) readColor() Token {
	l.readChar() // consume #
	startPos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	digits := l.source[startPos:l.pos]
	if len(digits) != 6 && len(digits) != 8 {
		return l.errorToken("#"+digits, "malformed color literal #%s: want 6 or 8 hex digits, got %d", digits, len(digits))
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return l.errorToken("#"+digits, "malformed color literal #%s: %q is not a hex digit", digits, digits[i])
		}
	}
	return l.makeToken(TokenColor, digits)
}

// readBinding reads "@segment.segment" as a single token.
func (l *Lexer) readBinding() Token {
	l.readChar() // consume @
	startPos := l.pos
	for {
		if !isLetter(l.ch) && !isDigit(l.ch) {
			return l.errorToken("@"+l.source[startPos:l.pos], "malformed binding path: expected a name after '@' or '.'")
		}
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		if l.ch != '.' {
			break
		}
		l.readChar() // consume .
	}
	return l.makeToken(TokenBinding, l.source[startPos:l.pos])
}

// isLetter returns true if the rune is a letter or underscore.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isDigit returns true if the rune is an ASCII digit.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
