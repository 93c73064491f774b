// Package interp executes optimized IR against a drawing Surface.
package interp

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"math"

	"goturtle/pkg/compiler"
)

// Interpreter owns one flat variable environment and one Surface. Bindings
// made inside repeat or if bodies stay visible after the block ends.
type Interpreter struct {
	surface Surface
	env     map[string]Value
	logger  *log.Logger
	steps   int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger traces every executed instruction to l.
func WithLogger(l *log.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

func New(surface Surface, opts ...Option) *Interpreter {
	i := &Interpreter{surface: surface, env: make(map[string]Value)}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Env returns a copy of the current variable bindings.
func (i *Interpreter) Env() map[string]Value {
	return maps.Clone(i.env)
}

// Lookup returns the value bound to name.
func (i *Interpreter) Lookup(name string) (Value, bool) {
	v, ok := i.env[name]
	return v, ok
}

// Steps returns how many instructions have been executed so far.
func (i *Interpreter) Steps() int { return i.steps }

// frame is one block on the execution stack. A repeat body is pushed once
// with times set to the iteration count and rewound at its end.
type frame struct {
	body  []compiler.Instr
	pc    int
	times int64
}

// Run executes instrs in order. Nested blocks are tracked on an explicit
// stack, so block nesting never grows the Go call stack. The environment is
// kept between calls.
func (i *Interpreter) Run(instrs []compiler.Instr) error {
	stack := []frame{{body: instrs, times: 1}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pc >= len(top.body) {
			top.times--
			if top.times > 0 {
				top.pc = 0
				continue
			}
			stack = stack[:len(stack)-1]
			continue
		}
		in := top.body[top.pc]
		top.pc++

		next, err := i.exec(in)
		if err != nil {
			var re *RuntimeError
			if errors.As(err, &re) && re.Instr == "" {
				re.Instr = in.String()
			}
			return err
		}
		if next != nil {
			stack = append(stack, *next)
		}
	}
	return nil
}

// exec runs a single instruction. For repeat and if it returns the frame to
// push instead of running the body itself.
func (i *Interpreter) exec(in compiler.Instr) (*frame, error) {
	i.steps++
	if i.logger != nil {
		i.logger.Printf("exec %s", in)
	}

	switch n := in.(type) {
	case *compiler.MoveInstr:
		d, err := i.evalNumber(n.Distance, "move")
		if err != nil {
			return nil, err
		}
		i.surface.Forward(d)

	case *compiler.TurnInstr:
		a, err := i.evalNumber(n.Angle, "turn")
		if err != nil {
			return nil, err
		}
		i.surface.TurnRight(a)

	case *compiler.PenInstr:
		if n.Up {
			i.surface.PenUp()
		} else {
			i.surface.PenDown()
		}

	case *compiler.ColorInstr:
		i.surface.SetColor(n.Name)

	case *compiler.AssignInstr:
		v, err := i.Eval(n.Value)
		if err != nil {
			return nil, err
		}
		i.env[n.Name] = v

	case *compiler.RepeatInstr:
		c, err := i.evalNumber(n.Count, "repeat")
		if err != nil {
			return nil, err
		}
		times := iterations(c)
		if times == 0 || len(n.Body) == 0 {
			return nil, nil
		}
		return &frame{body: n.Body, times: times}, nil

	case *compiler.IfInstr:
		c, err := i.Eval(n.Cond)
		if err != nil {
			return nil, err
		}
		body := n.Else
		if truthy(c) {
			body = n.Then
		}
		if len(body) == 0 {
			return nil, nil
		}
		return &frame{body: body, times: 1}, nil

	case *compiler.PrintInstr:
		v, err := i.Eval(n.Value)
		if err != nil {
			return nil, err
		}
		i.surface.EmitText(v.String())

	default:
		return nil, fmt.Errorf("interp: unknown instruction %T", in)
	}
	return nil, nil
}

// iterations truncates a repeat count toward zero. Negative and NaN counts
// run the body zero times.
func iterations(c float64) int64 {
	t := math.Trunc(c)
	switch {
	case math.IsNaN(t) || t <= 0:
		return 0
	case t >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(t)
}
