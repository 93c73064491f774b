package interp

import "goturtle/pkg/compiler"

// Session compiles and runs a program piece by piece, keeping variables
// (both their static types and their values) from one piece to the next.
type Session struct {
	syms *compiler.SymbolTable
	ip   *Interpreter
}

func NewSession(surface Surface, opts ...Option) *Session {
	return &Session{syms: compiler.NewSymbolTable(), ip: New(surface, opts...)}
}

// Exec compiles src against the session's symbol table and runs it. The
// table only takes on src's assignments when src compiles. The optimized IR
// is returned even when running it fails.
func (s *Session) Exec(src string) ([]compiler.Instr, error) {
	tokens, err := compiler.Lex(src)
	if err != nil {
		return nil, err
	}
	prog, err := compiler.Parse(tokens)
	if err != nil {
		return nil, err
	}
	syms := s.syms.Clone()
	if err := compiler.NewAnalyzerWith(syms).Analyze(prog); err != nil {
		return nil, err
	}
	ir, err := compiler.Lower(prog)
	if err != nil {
		return nil, err
	}
	optimized, err := compiler.Optimize(ir)
	if err != nil {
		return nil, err
	}
	s.syms = syms
	return optimized, s.ip.Run(optimized)
}

// Symbols returns the session's symbol table.
func (s *Session) Symbols() *compiler.SymbolTable { return s.syms }

// Interpreter returns the interpreter holding the session's values.
func (s *Session) Interpreter() *Interpreter { return s.ip }
