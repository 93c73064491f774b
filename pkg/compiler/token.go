package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	NUMBER     // integer or decimal literal
	IDENTIFIER // variable or color name
	STRING     // string literal "..."

	// Keywords
	MOVE   // "move"
	TURN   // "turn"
	PEN    // "pen"
	UP     // "up"
	DOWN   // "down"
	COLOR  // "color"
	REPEAT // "repeat"
	IF     // "if"
	ELSE   // "else"
	PRINT  // "print"
	TRUE   // "true"
	FALSE  // "false"

	// Paired delimiters
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,

	// Arithmetic operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	// Assignment / comparison (order matters: ASSIGN before EQUALS)
	ASSIGN     // =
	EQUALS     // ==
	NOT_EQ     // !=
	LESS       // <
	GREATER    // >
	LESS_EQ    // <=
	GREATER_EQ // >=
)

var tokenNames = [...]string{
	EOF:        "EOF",
	NUMBER:     "NUMBER",
	IDENTIFIER: "IDENTIFIER",
	STRING:     "STRING",
	MOVE:       "MOVE",
	TURN:       "TURN",
	PEN:        "PEN",
	UP:         "UP",
	DOWN:       "DOWN",
	COLOR:      "COLOR",
	REPEAT:     "REPEAT",
	IF:         "IF",
	ELSE:       "ELSE",
	PRINT:      "PRINT",
	TRUE:       "TRUE",
	FALSE:      "FALSE",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	SEMICOLON:  "SEMICOLON",
	COMMA:      "COMMA",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	ASSIGN:     "ASSIGN",
	EQUALS:     "EQUALS",
	NOT_EQ:     "NOT_EQ",
	LESS:       "LESS",
	GREATER:    "GREATER",
	LESS_EQ:    "LESS_EQ",
	GREATER_EQ: "GREATER_EQ",
}

// operatorSymbols gives the source spelling of every operator, used when
// printing expressions back out.
var operatorSymbols = map[TokenType]string{
	PLUS:       "+",
	MINUS:      "-",
	STAR:       "*",
	SLASH:      "/",
	EQUALS:     "==",
	NOT_EQ:     "!=",
	LESS:       "<",
	GREATER:    ">",
	LESS_EQ:    "<=",
	GREATER_EQ: ">=",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Symbol returns the operator as written in source, or the token name for
// non-operators.
func (tt TokenType) Symbol() string {
	if s, ok := operatorSymbols[tt]; ok {
		return s
	}
	return tt.String()
}

// IsComparison reports whether tt is one of the relational/equality operators.
func (tt TokenType) IsComparison() bool {
	switch tt {
	case EQUALS, NOT_EQ, LESS, GREATER, LESS_EQ, GREATER_EQ:
		return true
	}
	return false
}

// IsArithmetic reports whether tt is one of + - * /.
func (tt TokenType) IsArithmetic() bool {
	switch tt {
	case PLUS, MINUS, STAR, SLASH:
		return true
	}
	return false
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // matched source text; for STRING the text between the quotes
	Line   int    // 1-based source line
	Col    int    // 1-based source column
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  %d:%d", t.Type, t.Lexeme, t.Line, t.Col)
}
