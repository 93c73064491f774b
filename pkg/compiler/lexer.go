package compiler

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"move":   MOVE,
	"turn":   TURN,
	"pen":    PEN,
	"up":     UP,
	"down":   DOWN,
	"color":  COLOR,
	"repeat": REPEAT,
	"if":     IF,
	"else":   ELSE,
	"print":  PRINT,
	"true":   TRUE,
	"false":  FALSE,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	col  int // current 1-based source column
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1, col: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it, keeping line/col in step.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && isSpace(l.peek()) {
		l.advance()
	}
}

// skipLineComment discards everything from the current position to end-of-line.
// The opening "//" must already have been consumed.
func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
}

// scanIdent collects a full identifier or keyword token.
func (l *Lexer) scanIdent() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Col: col}
}

// scanNumber collects digits with an optional fractional part. A '.' is only
// consumed when a digit follows it.
func (l *Lexer) scanNumber() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peek2()) {
		l.advance() // .
		for l.pos < len(l.src) && isDigit(l.peek()) {
			l.advance()
		}
	}
	return Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos]), Line: line, Col: col}
}

// scanString collects a string literal "...". There are no escapes; the
// literal ends at the next double quote, newlines included.
func (l *Lexer) scanString() (Token, error) {
	line, col := l.line, l.col
	end := l.pos + 1
	for end < len(l.src) && l.src[end] != '"' {
		end++
	}
	if end >= len(l.src) {
		return Token{}, &LexError{Char: '"', Line: line, Col: col}
	}
	l.advance() // opening "
	start := l.pos
	for l.pos < end {
		l.advance()
	}
	val := string(l.src[start:end])
	l.advance() // closing "
	return Token{Type: STRING, Lexeme: val, Line: line, Col: col}, nil
}

// nextToken skips whitespace/comments and returns the next Token.
func (l *Lexer) nextToken() (Token, error) {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			return Token{Type: EOF, Lexeme: "", Line: l.line, Col: l.col}, nil
		}
		if l.peek() == '/' && l.peek2() == '/' {
			l.advance()
			l.advance()
			l.skipLineComment()
			continue
		}
		break
	}

	ch := l.peek()
	line, col := l.line, l.col

	if isIdentStart(ch) {
		return l.scanIdent(), nil
	}
	if isDigit(ch) {
		return l.scanNumber(), nil
	}
	if ch == '"' {
		return l.scanString()
	}

	// two-character operators first
	switch {
	case ch == '=' && l.peek2() == '=':
		l.advance()
		l.advance()
		return Token{EQUALS, "==", line, col}, nil
	case ch == '!' && l.peek2() == '=':
		l.advance()
		l.advance()
		return Token{NOT_EQ, "!=", line, col}, nil
	case ch == '<' && l.peek2() == '=':
		l.advance()
		l.advance()
		return Token{LESS_EQ, "<=", line, col}, nil
	case ch == '>' && l.peek2() == '=':
		l.advance()
		l.advance()
		return Token{GREATER_EQ, ">=", line, col}, nil
	}

	var tt TokenType
	switch ch {
	case '=':
		tt = ASSIGN
	case '<':
		tt = LESS
	case '>':
		tt = GREATER
	case '+':
		tt = PLUS
	case '-':
		tt = MINUS
	case '*':
		tt = STAR
	case '/':
		tt = SLASH
	case '(':
		tt = LPAREN
	case ')':
		tt = RPAREN
	case '{':
		tt = LBRACE
	case '}':
		tt = RBRACE
	case ';':
		tt = SEMICOLON
	case ',':
		tt = COMMA
	default:
		return Token{}, &LexError{Char: ch, Line: line, Col: col}
	}
	l.advance()
	return Token{tt, string(ch), line, col}, nil
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns a *LexError on the first character no token pattern accepts.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
