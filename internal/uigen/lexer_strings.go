package uigen

// readString reads a double-quoted string with escape sequences.
func (l *Lexer) readString() Token {
	l.readChar() // consume opening "

	var result []rune
	for l.ch != '"' {
		if l.atEOF() || l.ch == '\n' {
			return l.errorToken(string(result), "unterminated string literal")
		}
		if l.ch == '\\' {
			l.readChar() // consume backslash
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			case '\\':
				result = append(result, '\\')
			case '"':
				result = append(result, '"')
			case '0':
				result = append(result, '\000')
			default:
				if l.atEOF() {
					return l.errorToken(string(result), "unterminated string literal")
				}
				bad := l.ch
				l.readChar()
				return l.errorToken(string(result), "invalid escape sequence \\%c", bad)
			}
		} else {
			result = append(result, l.ch)
		}
		l.readChar()
	}

	l.readChar() // consume closing "
	return l.makeToken(TokenString, string(result))
}

// readNumber reads an integer or decimal literal with an optional sign.
func (l *Lexer) readNumber() Token {
	startPos := l.pos

	if l.ch == '-' || l.ch == '+' {
		l.readChar()
	}

	// Read integer part
	for isDigit(l.ch) {
		l.readChar()
	}

	// Decimal part needs at least one digit after the point
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.makeToken(TokenNumber, l.source[startPos:l.pos])
}
