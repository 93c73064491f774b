package interp

import (
	"testing"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
		kind Kind
	}{
		{Number(2), "2", KindNumber},
		{Number(2.5), "2.5", KindNumber},
		{Number(-0.125), "-0.125", KindNumber},
		{Number(1e21), "1e+21", KindNumber},
		{Bool(true), "true", KindBool},
		{Bool(false), "false", KindBool},
		{Color("navy"), "navy", KindColor},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if tt.v.Kind() != tt.kind {
			t.Errorf("%v: Kind() = %s, want %s", tt.v, tt.v.Kind(), tt.kind)
		}
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Number(0), false},
		{Number(-1), true},
		{Number(0.001), true},
		{Bool(false), false},
		{Bool(true), true},
		{Color("black"), true},
	}
	for _, tt := range tests {
		if got := truthy(tt.v); got != tt.want {
			t.Errorf("truthy(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestEqualAndCompare(t *testing.T) {
	if !equal(Number(3), Number(3)) || equal(Number(3), Number(4)) {
		t.Error("number equality")
	}
	if equal(Number(1), Bool(true)) || equal(Number(0), Bool(false)) {
		t.Error("values of different kinds must be unequal")
	}
	if !equal(Color("red"), Color("red")) || equal(Color("red"), Color("blue")) {
		t.Error("color equality")
	}

	ordered := []struct {
		a, b Value
		want int
	}{
		{Number(1), Number(2), -1},
		{Number(2), Number(2), 0},
		{Bool(true), Bool(false), 1},
		{Color("blue"), Color("red"), -1},
	}
	for _, tt := range ordered {
		got, err := compare(tt.a, tt.b)
		if err != nil {
			t.Fatalf("compare(%v, %v): %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if _, err := compare(Bool(true), Color("red")); err == nil {
		t.Error("comparing different kinds should fail")
	}
}
