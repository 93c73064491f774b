package compiler

import (
	"strconv"
)

// MaxNestingDepth bounds how deeply blocks and sub-expressions may nest.
// Every recursive stage (parser, analyzer, lowering, optimizer, expression
// evaluation) recurses at most this deep.
const MaxNestingDepth = 256

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program = (";" | stmt)* EOF
//	block   = "{" (";" | stmt)* "}"
//	stmt    = "move" expr ";"
//	        | "turn" expr ";"
//	        | "pen" ("up" | "down") ";"
//	        | "color" (IDENTIFIER | STRING) ";"
//	        | IDENTIFIER "=" expr ";"
//	        | "repeat" expr block
//	        | "if" "(" cond ")" block ("else" block)?
//	        | "print" "(" expr ")" ";"
//	cond    = expr (("==" | "!=" | "<" | ">" | "<=" | ">=") expr)?
//	expr    = term (("+" | "-") term)*
//	term    = factor (("*" | "/") factor)*
//	factor  = NUMBER | IDENTIFIER | STRING | "-" factor
//	        | "true" | "false" | "(" expr ")"
type Parser struct {
	tokens []Token
	pos    int
	depth  int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds a Program from tokens.
func Parse(tokens []Token) (*Program, error) {
	return NewParser(tokens).ParseProgram()
}

// peek returns the current token without consuming it. Past the end of the
// slice it returns an EOF positioned at the last token.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return Token{Type: EOF, Line: 1, Col: 1}
		}
		last := p.tokens[len(p.tokens)-1]
		return Token{Type: EOF, Line: last.Line, Col: last.Col}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) errorAt(tok Token, expected string) *ParseError {
	return &ParseError{Expected: expected, Actual: tok.Type, Lexeme: tok.Lexeme, Line: tok.Line, Col: tok.Col}
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return tok, p.errorAt(tok, tt.String())
	}
	return p.advance(), nil
}

// enter guards recursion; every call must be paired with leave.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > MaxNestingDepth {
		tok := p.peek()
		return &ParseError{Actual: tok.Type, Lexeme: tok.Lexeme, Line: tok.Line, Col: tok.Col,
			Msg: "nesting deeper than " + strconv.Itoa(MaxNestingDepth) + " levels"}
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// ParseProgram parses statements until EOF.
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{}
	for p.peek().Type != EOF {
		if p.peek().Type == SEMICOLON {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// parseBlock parses "{" stmt* "}".
func (p *Parser) parseBlock() ([]Stmt, error) {
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var stmts []Stmt
	for p.peek().Type != RBRACE {
		if p.peek().Type == SEMICOLON {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // }
	return stmts, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	tok := p.peek()
	switch tok.Type {
	case MOVE:
		p.advance()
		expr, err := p.parseTerminated()
		if err != nil {
			return nil, err
		}
		return &MoveStmt{Distance: expr}, nil

	case TURN:
		p.advance()
		expr, err := p.parseTerminated()
		if err != nil {
			return nil, err
		}
		return &TurnStmt{Angle: expr}, nil

	case PEN:
		p.advance()
		var up bool
		switch next := p.peek(); next.Type {
		case UP:
			up = true
		case DOWN:
			up = false
		default:
			return nil, p.errorAt(next, "UP or DOWN")
		}
		p.advance()
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return &PenStmt{Up: up}, nil

	case COLOR:
		p.advance()
		next := p.peek()
		if next.Type != IDENTIFIER && next.Type != STRING {
			return nil, p.errorAt(next, "IDENTIFIER or STRING")
		}
		p.advance()
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return &ColorStmt{Name: next.Lexeme}, nil

	case IDENTIFIER:
		p.advance()
		if _, err := p.expect(ASSIGN); err != nil {
			return nil, err
		}
		expr, err := p.parseTerminated()
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Name: tok.Lexeme, Value: expr}, nil

	case REPEAT:
		p.advance()
		count, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &RepeatStmt{Count: count, Body: body}, nil

	case IF:
		return p.parseIf()

	case PRINT:
		p.advance()
		if _, err := p.expect(LPAREN); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return &PrintStmt{Value: expr}, nil
	}
	return nil, p.errorAt(tok, "statement")
}

// parseTerminated parses expr ";".
func (p *Parser) parseTerminated() (Expr, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseIf() (Stmt, error) {
	p.advance() // if
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	thenBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBody []Stmt
	if p.peek().Type == ELSE {
		p.advance()
		elseBody, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Condition: cond, Then: thenBody, Else: elseBody}, nil
}

// parseCondition handles at most one comparison; a < b < c is rejected by
// the RPAREN that if expects next.
func (p *Parser) parseCondition() (Expr, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if op := p.peek().Type; op.IsComparison() {
		p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

// parseExpression handles + and - (lowest precedence).
func (p *Parser) parseExpression() (Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := p.advance().Type
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// parseTerm handles * and /.
func (p *Parser) parseTerm() (Expr, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == STAR || p.peek().Type == SLASH {
		op := p.advance().Type
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) parseFactor() (Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.peek()
	switch tok.Type {
	case NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &ParseError{Actual: tok.Type, Lexeme: tok.Lexeme, Line: tok.Line, Col: tok.Col,
				Msg: "invalid number " + strconv.Quote(tok.Lexeme)}
		}
		return &NumberLit{Value: v}, nil
	case IDENTIFIER, STRING:
		p.advance()
		return &VarRef{Name: tok.Lexeme}, nil
	case MINUS:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: MINUS, Operand: operand}, nil
	case TRUE:
		p.advance()
		return &BoolLit{Value: true}, nil
	case FALSE:
		p.advance()
		return &BoolLit{Value: false}, nil
	case LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, p.errorAt(tok, "expression")
}
