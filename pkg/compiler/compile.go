package compiler

// Result holds the output of every compilation stage. On failure the stages
// that completed are still filled in.
type Result struct {
	Tokens    []Token
	Program   *Program
	Symbols   *SymbolTable
	IR        []Instr // lowered, unoptimized
	Optimized []Instr
}

// Compile runs the whole pipeline over src. The first failing stage stops
// compilation; its error is returned alongside the partial Result.
func Compile(src string) (*Result, error) {
	res := &Result{}

	tokens, err := Lex(src)
	if err != nil {
		return res, err
	}
	res.Tokens = tokens

	prog, err := Parse(tokens)
	if err != nil {
		return res, err
	}
	res.Program = prog

	syms, err := Analyze(prog)
	if err != nil {
		return res, err
	}
	res.Symbols = syms

	ir, err := Lower(prog)
	if err != nil {
		return res, err
	}
	res.IR = ir

	optimized, err := Optimize(ir)
	if err != nil {
		return res, err
	}
	res.Optimized = optimized

	return res, nil
}
