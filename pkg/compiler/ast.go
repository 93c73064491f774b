package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// NumberLit is a numeric constant.
//
//	move 10;
//	     ^^  NumberLit{Value: 10}
type NumberLit struct {
	Value float64
}

func (*NumberLit) exprNode()        {}
func (n *NumberLit) String() string { return FormatNumber(n.Value) }

// BoolLit is true or false.
type BoolLit struct {
	Value bool
}

func (*BoolLit) exprNode()        {}
func (b *BoolLit) String() string { return strconv.FormatBool(b.Value) }

// VarRef is a read of a named variable, or of a color when Name is one of the
// allowed colors. A string literal in expression position also becomes a
// VarRef: "x" reads the variable x.
type VarRef struct {
	Name string
}

func (*VarRef) exprNode()        {}
func (v *VarRef) String() string { return v.Name }

// BinaryExpr represents a binary operation: Left Op Right.
//
//	x + 1
//	^ ^ ^
//	| | Right
//	| Op
//	Left
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.Symbol(), b.Right)
}

// UnaryExpr represents Op Operand. The only unary operator is MINUS.
type UnaryExpr struct {
	Op      TokenType
	Operand Expr
}

func (*UnaryExpr) exprNode()        {}
func (u *UnaryExpr) String() string { return fmt.Sprintf("(%s%s)", u.Op.Symbol(), u.Operand) }

// FormatNumber prints a number in its shortest form: 2, 2.5, -0.25.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

//  Statement nodes

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
	String() string
}

// Program is the root of the tree.
type Program struct {
	Stmts []Stmt
}

func (p *Program) String() string {
	var sb strings.Builder
	writeStmts(&sb, p.Stmts, 0)
	return sb.String()
}

// MoveStmt represents  move expr;
type MoveStmt struct {
	Distance Expr
}

func (*MoveStmt) stmtNode()        {}
func (m *MoveStmt) String() string { return fmt.Sprintf("Move(%s)", m.Distance) }

// TurnStmt represents  turn expr;
type TurnStmt struct {
	Angle Expr
}

func (*TurnStmt) stmtNode()        {}
func (t *TurnStmt) String() string { return fmt.Sprintf("Turn(%s)", t.Angle) }

// PenStmt represents  pen up;  or  pen down;
type PenStmt struct {
	Up bool
}

func (*PenStmt) stmtNode() {}
func (p *PenStmt) String() string {
	if p.Up {
		return "Pen(up)"
	}
	return "Pen(down)"
}

// ColorStmt represents  color red;  or  color "red";
type ColorStmt struct {
	Name string
}

func (*ColorStmt) stmtNode()        {}
func (c *ColorStmt) String() string { return fmt.Sprintf("Color(%s)", c.Name) }

// AssignStmt represents  name = expr;
type AssignStmt struct {
	Name  string
	Value Expr
}

func (*AssignStmt) stmtNode()        {}
func (a *AssignStmt) String() string { return fmt.Sprintf("Assign(%s = %s)", a.Name, a.Value) }

// RepeatStmt represents  repeat count { body }
type RepeatStmt struct {
	Count Expr
	Body  []Stmt
}

func (*RepeatStmt) stmtNode() {}
func (r *RepeatStmt) String() string {
	return fmt.Sprintf("Repeat(%s, body=%d)", r.Count, len(r.Body))
}

// IfStmt represents  if (cond) { then } [else { else }]
type IfStmt struct {
	Condition Expr
	Then      []Stmt
	Else      []Stmt // empty when there is no else
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	return fmt.Sprintf("If(%s, then=%d, else=%d)", i.Condition, len(i.Then), len(i.Else))
}

// PrintStmt represents  print(expr);
type PrintStmt struct {
	Value Expr
}

func (*PrintStmt) stmtNode()        {}
func (p *PrintStmt) String() string { return fmt.Sprintf("Print(%s)", p.Value) }

// writeStmts renders an indented tree, nested bodies under their parent.
func writeStmts(sb *strings.Builder, stmts []Stmt, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, s := range stmts {
		fmt.Fprintf(sb, "%s%s\n", indent, s)
		switch n := s.(type) {
		case *RepeatStmt:
			writeStmts(sb, n.Body, depth+1)
		case *IfStmt:
			writeStmts(sb, n.Then, depth+1)
			if len(n.Else) > 0 {
				fmt.Fprintf(sb, "%selse\n", indent)
				writeStmts(sb, n.Else, depth+1)
			}
		}
	}
}
