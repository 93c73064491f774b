package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the static type of an expression.
type Type int

const (
	TypeNumber Type = iota
	TypeBool
	TypeColor // produced by color identifiers
)

func (t Type) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	case TypeColor:
		return "color"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// allowedColors is the fixed set of color names the language understands.
var allowedColors = map[string]bool{
	"white": true, "black": true, "red": true, "green": true,
	"blue": true, "cyan": true, "yellow": true, "magenta": true,
	"orange": true, "brown": true, "purple": true, "pink": true,
	"gray": true, "gold": true, "navy": true, "lime": true,
}

// IsColor reports whether name is one of the allowed colors.
func IsColor(name string) bool { return allowedColors[name] }

// Colors returns the allowed color names in sorted order.
func Colors() []string {
	names := make([]string, 0, len(allowedColors))
	for name := range allowedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SymbolTable maps variable names to their most recently assigned type.
// There is a single flat scope for the whole program.
type SymbolTable struct {
	vars map[string]Type
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{vars: make(map[string]Type)}
}

// Define records typ for name, replacing any earlier entry.
func (s *SymbolTable) Define(name string, typ Type) {
	s.vars[name] = typ
}

// Lookup returns the type of name and whether it was found.
func (s *SymbolTable) Lookup(name string) (Type, bool) {
	t, ok := s.vars[name]
	return t, ok
}

// Len returns the number of variables.
func (s *SymbolTable) Len() int { return len(s.vars) }

// Names returns every variable name in sorted order.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	if len(s.vars) == 0 {
		return "Variables: (empty)\n"
	}
	var sb strings.Builder
	sb.WriteString("Variables:\n")
	for _, name := range s.Names() {
		fmt.Fprintf(&sb, "  %-20s  %s\n", name, s.vars[name])
	}
	return sb.String()
}

// Clone returns an independent copy of the table.
func (s *SymbolTable) Clone() *SymbolTable {
	c := NewSymbolTable()
	for name, t := range s.vars {
		c.vars[name] = t
	}
	return c
}
