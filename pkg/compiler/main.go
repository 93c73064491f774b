// Package compiler provides the lexer, parser, semantic analyzer, IR lowering
// and constant-folding optimizer for the turtle drawing language.
//
// Pipeline: source → Lex → Parse → Analyze → Lower → Optimize → []Instr
//
// The resulting instructions are executed by package interp.
package compiler
