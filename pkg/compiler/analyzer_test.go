package compiler

import (
	"errors"
	"strings"
	"testing"
)

func analyzeSource(t *testing.T, src string) (*SymbolTable, error) {
	t.Helper()
	return Analyze(parseSource(t, src))
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string // substring of the error; empty means success
	}{
		{"Numeric move", "x = 10; move x; turn x * 2 - 1;", ""},
		{"Color identifier", "color red;", ""},
		{"Color string", `color "navy";`, ""},
		{"Unknown color", "color chartreuse;", `unknown color "chartreuse"`},
		{"Color is case sensitive", "color Red;", `unknown color "Red"`},
		{"Undeclared in move", "move y;", `undeclared variable "y"`},
		{"Undeclared via string", `print("nope");`, `undeclared variable "nope"`},
		{"Declared later", "move y; y = 1;", `undeclared variable "y"`},
		{"Bool to move", "move true;", "move requires a numeric expression, got bool"},
		{"Bool variable to turn", "b = true; turn b;", "turn requires a numeric expression, got bool"},
		{"Color to repeat", "repeat red { }", "repeat requires a numeric expression, got color"},
		{"Numeric if", "if (3) { }", ""},
		{"Bool if", "if (true) { } else { }", ""},
		{"Color if", "if (blue) { }", "if condition must be numeric or boolean, got color"},
		{"Arithmetic on bool", "x = 1 + true;", "arithmetic operands must be numeric"},
		{"Arithmetic on color", "x = red * 2;", "arithmetic operands must be numeric"},
		{"Comparison mismatch", "if (1 == true) { }", "comparison operand type mismatch"},
		{"Color comparison", "if (red != blue) { }", ""},
		{"Unary on bool", "x = -false;", "invalid operand for unary"},
		{"Literal division by zero passes", "move 10 / 0;", ""},
		{"Flat scope from repeat", "repeat 2 { y = 1; } move y;", ""},
		{"Flat scope from untaken branch", "if (false) { z = 1; } move z;", ""},
		{"Retyped variable", "x = 1; x = true; move x;", "move requires a numeric expression, got bool"},
		{"Print anything", "print(red); print(true); print(1);", ""},
		{"Nested error", "repeat 2 { if (true) { move false; } }", "move requires a numeric expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzeSource(t, tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !errors.Is(err, ErrSemantic) {
				t.Errorf("expected ErrSemantic, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestAnalyzeSymbols(t *testing.T) {
	syms, err := analyzeSource(t, "x = 1; flag = false; repeat 3 { step = x * 2; }")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Type{"x": TypeNumber, "flag": TypeBool, "step": TypeNumber}
	if syms.Len() != len(want) {
		t.Fatalf("expected %d symbols, got %d:\n%s", len(want), syms.Len(), syms)
	}
	for name, typ := range want {
		if got, ok := syms.Lookup(name); !ok || got != typ {
			t.Errorf("%s: expected %v, got %v (found=%v)", name, typ, got, ok)
		}
	}
}

func TestAnalyzerContinues(t *testing.T) {
	a := NewAnalyzer()
	if err := a.Analyze(parseSource(t, "size = 40;")); err != nil {
		t.Fatal(err)
	}
	if err := a.Analyze(parseSource(t, "move size;")); err != nil {
		t.Errorf("second program should see size: %v", err)
	}

	base := NewSymbolTable()
	base.Define("n", TypeNumber)
	b := NewAnalyzerWith(base)
	if err := b.Analyze(parseSource(t, "repeat n { turn 1; }")); err != nil {
		t.Errorf("seeded analyzer should see n: %v", err)
	}
	if b.Symbols() != base {
		t.Error("Symbols should return the seeded table")
	}
}
