package compiler

import "fmt"

// Analyzer type-checks programs in a single left-to-right pass. Nested
// bodies are visited in place and write to the same flat symbol table.
type Analyzer struct {
	syms *SymbolTable
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{syms: NewSymbolTable()}
}

// NewAnalyzerWith starts from an existing table instead of an empty one.
func NewAnalyzerWith(syms *SymbolTable) *Analyzer {
	return &Analyzer{syms: syms}
}

// Symbols returns the table built so far.
func (a *Analyzer) Symbols() *SymbolTable { return a.syms }

// Analyze checks prog and returns the resulting symbol table.
func Analyze(prog *Program) (*SymbolTable, error) {
	a := NewAnalyzer()
	if err := a.Analyze(prog); err != nil {
		return nil, err
	}
	return a.syms, nil
}

// Analyze checks prog against the analyzer's current table. Calling it again
// with another program continues from the same table, which is how an
// interactive session sees variables from earlier inputs.
func (a *Analyzer) Analyze(prog *Program) error {
	return a.checkStmts(prog.Stmts)
}

func (a *Analyzer) checkStmts(stmts []Stmt) error {
	for _, s := range stmts {
		if err := a.checkStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) checkStmt(s Stmt) error {
	switch n := s.(type) {
	case *MoveStmt:
		return a.mustBeNumber(n.Distance, "move")
	case *TurnStmt:
		return a.mustBeNumber(n.Angle, "turn")
	case *PenStmt:
		return nil
	case *ColorStmt:
		if !IsColor(n.Name) {
			return semanticErrorf("unknown color %q", n.Name)
		}
		return nil
	case *AssignStmt:
		t, err := a.typeOf(n.Value)
		if err != nil {
			return err
		}
		a.syms.Define(n.Name, t)
		return nil
	case *RepeatStmt:
		if err := a.mustBeNumber(n.Count, "repeat"); err != nil {
			return err
		}
		return a.checkStmts(n.Body)
	case *IfStmt:
		t, err := a.typeOf(n.Condition)
		if err != nil {
			return err
		}
		if t != TypeNumber && t != TypeBool {
			return semanticErrorf("if condition must be numeric or boolean, got %s", t)
		}
		if err := a.checkStmts(n.Then); err != nil {
			return err
		}
		return a.checkStmts(n.Else)
	case *PrintStmt:
		_, err := a.typeOf(n.Value)
		return err
	}
	return fmt.Errorf("analyzer: unknown statement %T", s)
}

func (a *Analyzer) mustBeNumber(e Expr, context string) error {
	t, err := a.typeOf(e)
	if err != nil {
		return err
	}
	if t != TypeNumber {
		return semanticErrorf("%s requires a numeric expression, got %s", context, t)
	}
	return nil
}

// typeOf infers the static type of e. Literal values are never inspected, so
// 1 / 0 type-checks here and is left to the optimizer.
func (a *Analyzer) typeOf(e Expr) (Type, error) {
	switch n := e.(type) {
	case *NumberLit:
		return TypeNumber, nil
	case *BoolLit:
		return TypeBool, nil
	case *VarRef:
		if IsColor(n.Name) {
			return TypeColor, nil
		}
		t, ok := a.syms.Lookup(n.Name)
		if !ok {
			return 0, semanticErrorf("undeclared variable %q", n.Name)
		}
		return t, nil
	case *UnaryExpr:
		t, err := a.typeOf(n.Operand)
		if err != nil {
			return 0, err
		}
		if n.Op != MINUS || t != TypeNumber {
			return 0, semanticErrorf("invalid operand for unary %s: %s", n.Op.Symbol(), t)
		}
		return TypeNumber, nil
	case *BinaryExpr:
		lt, err := a.typeOf(n.Left)
		if err != nil {
			return 0, err
		}
		rt, err := a.typeOf(n.Right)
		if err != nil {
			return 0, err
		}
		switch {
		case n.Op.IsArithmetic():
			if lt != TypeNumber || rt != TypeNumber {
				return 0, semanticErrorf("arithmetic operands must be numeric, got %s %s %s", lt, n.Op.Symbol(), rt)
			}
			return TypeNumber, nil
		case n.Op.IsComparison():
			if lt != rt {
				return 0, semanticErrorf("comparison operand type mismatch: %s %s %s", lt, n.Op.Symbol(), rt)
			}
			return TypeBool, nil
		}
		return 0, semanticErrorf("invalid operator %s", n.Op)
	}
	return 0, fmt.Errorf("analyzer: unknown expression %T", e)
}
