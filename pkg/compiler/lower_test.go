package compiler

import (
	"reflect"
	"testing"
)

func lowerSource(t *testing.T, src string) []Instr {
	t.Helper()
	ir, err := Lower(parseSource(t, src))
	if err != nil {
		t.Fatalf("Lower(%q): %v", src, err)
	}
	return ir
}

func TestLower(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Instr
	}{
		{
			name:     "Empty",
			input:    "",
			expected: nil,
		},
		{
			name:  "Straight line",
			input: `pen up; color "red"; move 5; turn 90; pen down; x = 2; print(x);`,
			expected: []Instr{
				&PenInstr{Up: true},
				&ColorInstr{Name: "red"},
				&MoveInstr{Distance: &NumberLit{Value: 5}},
				&TurnInstr{Angle: &NumberLit{Value: 90}},
				&PenInstr{Up: false},
				&AssignInstr{Name: "x", Value: &NumberLit{Value: 2}},
				&PrintInstr{Value: &VarRef{Name: "x"}},
			},
		},
		{
			name:  "Nested bodies keep their structure",
			input: "repeat 2 { if (true) { move 1; } else { turn 2; } }",
			expected: []Instr{
				&RepeatInstr{Count: &NumberLit{Value: 2}, Body: []Instr{
					&IfInstr{
						Cond: &BoolLit{Value: true},
						Then: []Instr{&MoveInstr{Distance: &NumberLit{Value: 1}}},
						Else: []Instr{&TurnInstr{Angle: &NumberLit{Value: 2}}},
					},
				}},
			},
		},
		{
			name:  "Expressions are not folded",
			input: "move 1 + 2;",
			expected: []Instr{
				&MoveInstr{Distance: &BinaryExpr{Op: PLUS, Left: &NumberLit{Value: 1}, Right: &NumberLit{Value: 2}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lowerSource(t, tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lower() mismatch:\n got  %v\n want %v", got, tt.expected)
			}
		})
	}
}

func TestFormatIR(t *testing.T) {
	ir := lowerSource(t, "repeat 4 { move 10; if (x < 3) { turn 90; } else { pen up; } } print(-x);")
	want := "REPEAT 4\n" +
		"  MOVE 10\n" +
		"  IF (x < 3)\n" +
		"    TURN 90\n" +
		"  ELSE\n" +
		"    PEN UP\n" +
		"PRINT (-x)\n"
	if got := FormatIR(ir); got != want {
		t.Errorf("FormatIR mismatch:\n got  %q\n want %q", got, want)
	}
	if n := CountInstrs(ir); n != 6 {
		t.Errorf("CountInstrs: expected 6, got %d", n)
	}
}
