package compiler

import "testing"

// simpleSource is a minimal program used for benchmarking the fast path.
const simpleSource = `
repeat 4 {
	move 50;
	turn 90;
}
`

// complexSource is a larger program exercising variables, nested blocks,
// branches and foldable constant expressions.
const complexSource = `
// rosette of squares with alternating colors
size = 20 * 2 + 10;
petals = 36;
flip = true;
repeat petals {
	if (flip) { color "red"; } else { color blue; }
	repeat 4 {
		move size;
		turn 360 / 4;
	}
	turn 360 / 36;
	if (flip == true) { flip = false; } else { flip = true; }
	if (size > 30) {
		size = size - 1;
	} else {
		pen up;
		move -(2 * 3);
		pen down;
	}
}
if (false) { print(1 / 2); }
repeat 0 { move 1000; }
print(size);
`

// --- Lex benchmarks ---

func BenchmarkLex_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Lex(simpleSource)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLex_Complex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Lex(complexSource)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Parse benchmarks ---
// Tokens are pre-computed outside the timed region.

func BenchmarkParse_Simple(b *testing.B) {
	tokens, err := Lex(simpleSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Parse(tokens)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Complex(b *testing.B) {
	tokens, err := Lex(complexSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Parse(tokens)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Optimize benchmarks ---
// Tokens, AST and IR are pre-computed outside the timed region.

func BenchmarkOptimize_Complex(b *testing.B) {
	tokens, err := Lex(complexSource)
	if err != nil {
		b.Fatal(err)
	}
	prog, err := Parse(tokens)
	if err != nil {
		b.Fatal(err)
	}
	ir, err := Lower(prog)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Optimize(ir)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Full pipeline benchmarks ---

func BenchmarkCompile_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(simpleSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile_Complex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(complexSource); err != nil {
			b.Fatal(err)
		}
	}
}
