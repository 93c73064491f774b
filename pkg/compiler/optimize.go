package compiler

import (
	"fmt"
	"math"
)

// Optimize folds constant expressions and removes control flow whose outcome
// is known at compile time:
//
//   - a repeat whose count folds to a literal truncating to 0 is dropped;
//   - an if whose condition folds to a literal bool is replaced by the taken
//     branch; the other branch is discarded without being folded.
//
// Folding is purely local. Values assigned to variables are never propagated.
// Dividing a literal by a literal zero fails with a *SemanticError.
// The input is not modified.
func Optimize(instrs []Instr) ([]Instr, error) {
	var out []Instr
	for _, in := range instrs {
		switch n := in.(type) {
		case *MoveInstr:
			e, err := foldExpr(n.Distance)
			if err != nil {
				return nil, err
			}
			out = append(out, &MoveInstr{Distance: e})
		case *TurnInstr:
			e, err := foldExpr(n.Angle)
			if err != nil {
				return nil, err
			}
			out = append(out, &TurnInstr{Angle: e})
		case *PrintInstr:
			e, err := foldExpr(n.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, &PrintInstr{Value: e})
		case *AssignInstr:
			e, err := foldExpr(n.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, &AssignInstr{Name: n.Name, Value: e})
		case *PenInstr:
			out = append(out, &PenInstr{Up: n.Up})
		case *ColorInstr:
			out = append(out, &ColorInstr{Name: n.Name})
		case *RepeatInstr:
			count, err := foldExpr(n.Count)
			if err != nil {
				return nil, err
			}
			if lit, ok := count.(*NumberLit); ok && math.Trunc(lit.Value) == 0 {
				continue // zero iterations: the body can never run
			}
			body, err := Optimize(n.Body)
			if err != nil {
				return nil, err
			}
			out = append(out, &RepeatInstr{Count: count, Body: body})
		case *IfInstr:
			cond, err := foldExpr(n.Cond)
			if err != nil {
				return nil, err
			}
			if lit, ok := cond.(*BoolLit); ok {
				taken := n.Else
				if lit.Value {
					taken = n.Then
				}
				body, err := Optimize(taken)
				if err != nil {
					return nil, err
				}
				out = append(out, body...)
				continue
			}
			thenIR, err := Optimize(n.Then)
			if err != nil {
				return nil, err
			}
			elseIR, err := Optimize(n.Else)
			if err != nil {
				return nil, err
			}
			out = append(out, &IfInstr{Cond: cond, Then: thenIR, Else: elseIR})
		default:
			return nil, fmt.Errorf("optimize: unknown instruction %T", in)
		}
	}
	return out, nil
}

// foldExpr evaluates, bottom-up, every operation whose operands are literals.
func foldExpr(e Expr) (Expr, error) {
	switch n := e.(type) {
	case *NumberLit, *BoolLit, *VarRef:
		return e, nil

	case *UnaryExpr:
		operand, err := foldExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		if lit, ok := operand.(*NumberLit); ok && n.Op == MINUS {
			return &NumberLit{Value: -lit.Value}, nil
		}
		return &UnaryExpr{Op: n.Op, Operand: operand}, nil

	case *BinaryExpr:
		left, err := foldExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := foldExpr(n.Right)
		if err != nil {
			return nil, err
		}

		if l, ok := left.(*NumberLit); ok {
			if r, ok := right.(*NumberLit); ok {
				switch n.Op {
				case PLUS:
					return &NumberLit{Value: l.Value + r.Value}, nil
				case MINUS:
					return &NumberLit{Value: l.Value - r.Value}, nil
				case STAR:
					return &NumberLit{Value: l.Value * r.Value}, nil
				case SLASH:
					if r.Value == 0 {
						return nil, semanticErrorf("division by zero in constant expression %s", n)
					}
					return &NumberLit{Value: l.Value / r.Value}, nil
				}
			}
		}

		if l, ok := left.(*BoolLit); ok {
			if r, ok := right.(*BoolLit); ok {
				switch n.Op {
				case EQUALS:
					return &BoolLit{Value: l.Value == r.Value}, nil
				case NOT_EQ:
					return &BoolLit{Value: l.Value != r.Value}, nil
				}
			}
		}
		return &BinaryExpr{Op: n.Op, Left: left, Right: right}, nil
	}
	return nil, fmt.Errorf("optimize: unknown expression %T", e)
}
