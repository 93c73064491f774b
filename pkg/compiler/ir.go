package compiler

import (
	"fmt"
	"strings"
)

// Instr is one instruction of the intermediate representation. The IR keeps
// the block structure of the source: RepeatInstr and IfInstr carry their
// bodies as nested sequences rather than jumps.
type Instr interface {
	instrNode()
	String() string
}

// MoveInstr moves the turtle forward by Distance.
type MoveInstr struct {
	Distance Expr
}

func (*MoveInstr) instrNode()       {}
func (m *MoveInstr) String() string { return fmt.Sprintf("MOVE %s", m.Distance) }

// TurnInstr turns the turtle right by Angle degrees.
type TurnInstr struct {
	Angle Expr
}

func (*TurnInstr) instrNode()       {}
func (t *TurnInstr) String() string { return fmt.Sprintf("TURN %s", t.Angle) }

// PenInstr lifts or lowers the pen.
type PenInstr struct {
	Up bool
}

func (*PenInstr) instrNode() {}
func (p *PenInstr) String() string {
	if p.Up {
		return "PEN UP"
	}
	return "PEN DOWN"
}

// ColorInstr sets the ink color by name.
type ColorInstr struct {
	Name string
}

func (*ColorInstr) instrNode()       {}
func (c *ColorInstr) String() string { return fmt.Sprintf("COLOR %s", c.Name) }

// AssignInstr stores Value under Name.
type AssignInstr struct {
	Name  string
	Value Expr
}

func (*AssignInstr) instrNode()       {}
func (a *AssignInstr) String() string { return fmt.Sprintf("ASSIGN %s %s", a.Name, a.Value) }

// RepeatInstr runs Body Count times.
type RepeatInstr struct {
	Count Expr
	Body  []Instr
}

func (*RepeatInstr) instrNode()       {}
func (r *RepeatInstr) String() string { return fmt.Sprintf("REPEAT %s", r.Count) }

// IfInstr runs Then when Cond is truthy, otherwise Else.
type IfInstr struct {
	Cond Expr
	Then []Instr
	Else []Instr
}

func (*IfInstr) instrNode()       {}
func (i *IfInstr) String() string { return fmt.Sprintf("IF %s", i.Cond) }

// PrintInstr emits the value of Value as text.
type PrintInstr struct {
	Value Expr
}

func (*PrintInstr) instrNode()       {}
func (p *PrintInstr) String() string { return fmt.Sprintf("PRINT %s", p.Value) }

// FormatIR renders an instruction sequence with nested bodies indented.
//
//	REPEAT 4
//	  MOVE 10
//	  TURN 90
func FormatIR(instrs []Instr) string {
	var sb strings.Builder
	writeIR(&sb, instrs, 0)
	return sb.String()
}

func writeIR(sb *strings.Builder, instrs []Instr, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, in := range instrs {
		fmt.Fprintf(sb, "%s%s\n", indent, in)
		switch n := in.(type) {
		case *RepeatInstr:
			writeIR(sb, n.Body, depth+1)
		case *IfInstr:
			writeIR(sb, n.Then, depth+1)
			if len(n.Else) > 0 {
				fmt.Fprintf(sb, "%sELSE\n", indent)
				writeIR(sb, n.Else, depth+1)
			}
		}
	}
}

// CountInstrs returns the number of instructions in instrs, bodies included.
func CountInstrs(instrs []Instr) int {
	n := 0
	for _, in := range instrs {
		n++
		switch v := in.(type) {
		case *RepeatInstr:
			n += CountInstrs(v.Body)
		case *IfInstr:
			n += CountInstrs(v.Then) + CountInstrs(v.Else)
		}
	}
	return n
}
