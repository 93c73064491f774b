package interp

import (
	"cmp"
	"strconv"
	"strings"

	"goturtle/pkg/compiler"
)

// Kind identifies the dynamic type of a Value.
type Kind int

const (
	KindNumber Kind = iota
	KindBool
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a runtime value: Number, Bool or Color.
type Value interface {
	Kind() Kind
	String() string
}

// Number is a floating-point number.
type Number float64

func (Number) Kind() Kind       { return KindNumber }
func (n Number) String() string { return compiler.FormatNumber(float64(n)) }

// Bool is true or false.
type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Color is one of the allowed color names.
type Color string

func (Color) Kind() Kind       { return KindColor }
func (c Color) String() string { return string(c) }

// truthy reports whether v selects the then-branch of an if: any nonzero
// number, true, or a color.
func truthy(v Value) bool {
	switch x := v.(type) {
	case Number:
		return x != 0
	case Bool:
		return bool(x)
	case Color:
		return x != ""
	}
	return false
}

// equal compares values of any kind; values of different kinds are unequal.
func equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	return a == b
}

// compare orders two values of the same kind: numbers numerically, bools
// false before true, colors by name.
func compare(a, b Value) (int, error) {
	if a.Kind() != b.Kind() {
		return 0, runtimeErrorf("cannot compare %s with %s", a.Kind(), b.Kind())
	}
	switch x := a.(type) {
	case Number:
		return cmp.Compare(float64(x), float64(b.(Number))), nil
	case Bool:
		return cmp.Compare(boolRank(bool(x)), boolRank(bool(b.(Bool)))), nil
	case Color:
		return strings.Compare(string(x), string(b.(Color))), nil
	}
	return 0, runtimeErrorf("cannot compare %s values", a.Kind())
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
