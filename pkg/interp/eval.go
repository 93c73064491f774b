package interp

import (
	"fmt"

	"goturtle/pkg/compiler"
)

// Eval computes the value of e in the current environment. Types are checked
// again here rather than trusted from analysis.
func (i *Interpreter) Eval(e compiler.Expr) (Value, error) {
	switch n := e.(type) {
	case *compiler.NumberLit:
		return Number(n.Value), nil

	case *compiler.BoolLit:
		return Bool(n.Value), nil

	case *compiler.VarRef:
		if compiler.IsColor(n.Name) {
			return Color(n.Name), nil
		}
		v, ok := i.env[n.Name]
		if !ok {
			return nil, runtimeErrorf("undeclared variable %q", n.Name)
		}
		return v, nil

	case *compiler.UnaryExpr:
		v, err := i.Eval(n.Operand)
		if err != nil {
			return nil, err
		}
		num, ok := v.(Number)
		if n.Op != compiler.MINUS || !ok {
			return nil, runtimeErrorf("unary %s requires a number, got %s", n.Op.Symbol(), v.Kind())
		}
		return -num, nil

	case *compiler.BinaryExpr:
		left, err := i.Eval(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return binary(n.Op, left, right)
	}
	return nil, fmt.Errorf("interp: unknown expression %T", e)
}

func binary(op compiler.TokenType, left, right Value) (Value, error) {
	if op.IsArithmetic() {
		l, lok := left.(Number)
		r, rok := right.(Number)
		if !lok || !rok {
			return nil, runtimeErrorf("operator %s requires numbers, got %s and %s", op.Symbol(), left.Kind(), right.Kind())
		}
		switch op {
		case compiler.PLUS:
			return l + r, nil
		case compiler.MINUS:
			return l - r, nil
		case compiler.STAR:
			return l * r, nil
		case compiler.SLASH:
			if r == 0 {
				return nil, runtimeErrorf("division by zero")
			}
			return l / r, nil
		}
	}

	switch op {
	case compiler.EQUALS:
		return Bool(equal(left, right)), nil
	case compiler.NOT_EQ:
		return Bool(!equal(left, right)), nil
	}

	c, err := compare(left, right)
	if err != nil {
		return nil, err
	}
	switch op {
	case compiler.LESS:
		return Bool(c < 0), nil
	case compiler.GREATER:
		return Bool(c > 0), nil
	case compiler.LESS_EQ:
		return Bool(c <= 0), nil
	case compiler.GREATER_EQ:
		return Bool(c >= 0), nil
	}
	return nil, runtimeErrorf("unknown operator %s", op)
}

// evalNumber evaluates e and requires a number; what names the instruction
// for the error message.
func (i *Interpreter) evalNumber(e compiler.Expr, what string) (float64, error) {
	v, err := i.Eval(e)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Number)
	if !ok {
		return 0, runtimeErrorf("%s requires a number, got %s", what, v.Kind())
	}
	return float64(n), nil
}
