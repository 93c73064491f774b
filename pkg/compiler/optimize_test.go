package compiler

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func optimizeSource(t *testing.T, src string) ([]Instr, error) {
	t.Helper()
	return Optimize(lowerSource(t, src))
}

func TestOptimize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Instr
	}{
		{
			name:     "Arithmetic folds",
			input:    "move 2 * 3 + 1;",
			expected: []Instr{&MoveInstr{Distance: &NumberLit{Value: 7}}},
		},
		{
			name:     "Unary minus folds",
			input:    "turn -(2 + 3);",
			expected: []Instr{&TurnInstr{Angle: &NumberLit{Value: -5}}},
		},
		{
			name:  "Partial fold",
			input: "x = 1; move x * (2 + 3);",
			expected: []Instr{
				&AssignInstr{Name: "x", Value: &NumberLit{Value: 1}},
				&MoveInstr{Distance: &BinaryExpr{Op: STAR, Left: &VarRef{Name: "x"}, Right: &NumberLit{Value: 5}}},
			},
		},
		{
			name:  "No constant propagation",
			input: "x = 5; move x + 1;",
			expected: []Instr{
				&AssignInstr{Name: "x", Value: &NumberLit{Value: 5}},
				&MoveInstr{Distance: &BinaryExpr{Op: PLUS, Left: &VarRef{Name: "x"}, Right: &NumberLit{Value: 1}}},
			},
		},
		{
			name:     "Repeat zero is dropped",
			input:    "repeat 0 { move 1; }",
			expected: nil,
		},
		{
			name:     "Repeat folding to zero is dropped",
			input:    "repeat 2 - 2 { move 1; } pen up;",
			expected: []Instr{&PenInstr{Up: true}},
		},
		{
			name:     "Fractional repeat below one is dropped",
			input:    "repeat 0.9 { move 1; } repeat -0.5 { move 1; }",
			expected: nil,
		},
		{
			name:  "Fractional repeat is kept",
			input: "repeat 1.5 { move 1 + 1; }",
			expected: []Instr{
				&RepeatInstr{Count: &NumberLit{Value: 1.5}, Body: []Instr{&MoveInstr{Distance: &NumberLit{Value: 2}}}},
			},
		},
		{
			name:     "If true keeps then branch",
			input:    "if (true) { move 1; } else { move 2; }",
			expected: []Instr{&MoveInstr{Distance: &NumberLit{Value: 1}}},
		},
		{
			name:     "If false without else disappears",
			input:    "if (false) { move 1; }",
			expected: nil,
		},
		{
			name:     "Bool equality folds the condition",
			input:    "if (true == false) { move 1; } else { turn 5; }",
			expected: []Instr{&TurnInstr{Angle: &NumberLit{Value: 5}}},
		},
		{
			name:  "Numeric comparison is not folded",
			input: "if (1 < 2) { move 1; }",
			expected: []Instr{&IfInstr{
				Cond: &BinaryExpr{Op: LESS, Left: &NumberLit{Value: 1}, Right: &NumberLit{Value: 2}},
				Then: []Instr{&MoveInstr{Distance: &NumberLit{Value: 1}}},
			}},
		},
		{
			name:  "Taken branch is spliced in place",
			input: "move 1; if (true) { move 2; move 3; } move 4;",
			expected: []Instr{
				&MoveInstr{Distance: &NumberLit{Value: 1}},
				&MoveInstr{Distance: &NumberLit{Value: 2}},
				&MoveInstr{Distance: &NumberLit{Value: 3}},
				&MoveInstr{Distance: &NumberLit{Value: 4}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := optimizeSource(t, tt.input)
			if err != nil {
				t.Fatalf("Optimize: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Optimize() mismatch:\n got  %v\n want %v", got, tt.expected)
			}
		})
	}
}

func TestOptimizeDivisionByZero(t *testing.T) {
	for _, src := range []string{
		"move 10 / 0;",
		"x = 1 + 4 / (2 - 2);",
		"repeat 3 { print(1 / 0); }",
		"if (x == y) { } else { turn 5 / 0; }",
	} {
		_, err := optimizeSource(t, src)
		if !errors.Is(err, ErrSemantic) {
			t.Errorf("%q: expected ErrSemantic, got %v", src, err)
			continue
		}
		if !strings.Contains(err.Error(), "division by zero") {
			t.Errorf("%q: unexpected message %q", src, err)
		}
	}
}

func TestOptimizeSkipsDeadCode(t *testing.T) {
	for _, src := range []string{
		"if (false) { move 1 / 0; }",
		"if (true) { } else { move 1 / 0; }",
		"repeat 0 { move 1 / 0; }",
	} {
		if _, err := optimizeSource(t, src); err != nil {
			t.Errorf("%q: dead code should not be folded: %v", src, err)
		}
	}
}

func TestOptimizeDoesNotModifyInput(t *testing.T) {
	ir := lowerSource(t, "repeat 2 + 2 { if (true) { move 3 * 3; } }")
	before := FormatIR(ir)
	if _, err := Optimize(ir); err != nil {
		t.Fatal(err)
	}
	if after := FormatIR(ir); after != before {
		t.Errorf("input changed:\n before %q\n after  %q", before, after)
	}
}
