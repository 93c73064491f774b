package compiler

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLex matches any *LexError.
	ErrLex = errors.New("lex error")

	// ErrParse matches any *ParseError.
	ErrParse = errors.New("parse error")

	// ErrSemantic matches any *SemanticError, including constant-folding failures.
	ErrSemantic = errors.New("semantic error")
)

// LexError reports a character that no token pattern accepts.
type LexError struct {
	Char rune
	Line int
	Col  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at %d:%d", e.Char, e.Line, e.Col)
}

func (e *LexError) Is(target error) bool { return target == ErrLex }

// ParseError reports a grammar violation at a token.
type ParseError struct {
	Expected string    // what the grammar wanted, e.g. "SEMICOLON" or "statement"
	Actual   TokenType // the token that was found instead
	Lexeme   string
	Line     int
	Col      int
	Msg      string // overrides the expected/actual wording when set
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s at %d:%d", e.Msg, e.Line, e.Col)
	}
	return fmt.Sprintf("expected %s, got %s (%q) at %d:%d", e.Expected, e.Actual, e.Lexeme, e.Line, e.Col)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// SemanticError reports a static type violation, an undeclared variable, an
// unknown color, or a division by a literal zero found while folding.
type SemanticError struct {
	Msg string
}

func (e *SemanticError) Error() string { return e.Msg }

func (e *SemanticError) Is(target error) bool { return target == ErrSemantic }

func semanticErrorf(format string, args ...any) *SemanticError {
	return &SemanticError{Msg: fmt.Sprintf(format, args...)}
}

// IsIncomplete reports whether err is a parse failure caused by running out
// of input, i.e. more source could still make the program valid.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Actual == EOF && pe.Msg == ""
}

// WrapErrorWithSource renders lex and parse errors as a snippet of src with a
// caret under the offending column. Other errors are returned unchanged.
//
//	PARSE ERROR at 2:7: expected SEMICOLON, got RBRACE ("}")
//
//	   1 | repeat 4 {
//	   2 |   move }
//	     |        ^
func WrapErrorWithSource(err error, src string) error {
	var le *LexError
	if errors.As(err, &le) {
		return &sourceError{cause: err, text: snippet(src, "LEXICAL ERROR", le.Line, le.Col, fmt.Sprintf("unexpected character %q", le.Char))}
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		msg := pe.Msg
		if msg == "" {
			msg = fmt.Sprintf("expected %s, got %s (%q)", pe.Expected, pe.Actual, pe.Lexeme)
		}
		return &sourceError{cause: err, text: snippet(src, "PARSE ERROR", pe.Line, pe.Col, msg)}
	}
	return err
}

// sourceError keeps the original error reachable through errors.Is/As.
type sourceError struct {
	cause error
	text  string
}

func (e *sourceError) Error() string { return e.text }
func (e *sourceError) Unwrap() error { return e.cause }

// snippet shows at most one line of context on each side of line.
// Coordinates are 1-based and clamped to the source.
func snippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
