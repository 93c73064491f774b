package main

import (
	"fmt"
	"os"

	"goturtle/pkg/compiler"
	"goturtle/pkg/utils"
)

const testSource = `color blue;
pen down;
x = 80;
repeat 5 {
    move x;
    turn 144;
}
pen up;
`

func banner(title string) {
	fmt.Println("============================================================")
	fmt.Println(title)
	fmt.Println("============================================================")
}

func main() {
	src := testSource
	if len(os.Args) > 1 {
		data, _, err := utils.ReadSource(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = data
	}

	fmt.Printf("Source:\n%s\n", src)

	// Lex
	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", compiler.WrapErrorWithSource(err, src))
		os.Exit(1)
	}

	banner(fmt.Sprintf("Tokens (%d)", len(tokens)))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
	fmt.Println()

	// Parse
	prog, err := compiler.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", compiler.WrapErrorWithSource(err, src))
		os.Exit(1)
	}

	banner("AST")
	fmt.Print(prog)
	fmt.Println()

	// Semantic analysis
	syms, err := compiler.Analyze(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "semantic error:", err)
		os.Exit(1)
	}

	banner("Symbol Table")
	fmt.Print(syms)
	fmt.Println()

	// IR
	ir, err := compiler.Lower(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lowering error:", err)
		os.Exit(1)
	}

	banner(fmt.Sprintf("Raw IR (%d instructions)", compiler.CountInstrs(ir)))
	fmt.Print(compiler.FormatIR(ir))
	fmt.Println()

	optimized, err := compiler.Optimize(ir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "optimize error:", err)
		os.Exit(1)
	}

	banner(fmt.Sprintf("Optimized IR (%d instructions)", compiler.CountInstrs(optimized)))
	fmt.Print(compiler.FormatIR(optimized))
}
