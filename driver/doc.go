// Package driver wires the compiler's stages into one ordered pass
// pipeline: lexing and parsing of the input files (concurrent, merged
// into a single shared AST), then sema, typecheck, and IR generation in
// sequence, per the language reference.
//
// A Pipeline holds an ordered list of Pass values and runs them one at a
// time, timing each and halting at the first pass whose run produced any
// error diagnostic — later passes never observe a context a halted pass
// left half-built. Compile assembles the standard pipeline (sema →
// typecheck → irgen) over a set of input files and returns the merged
// diagnostics alongside whatever artifacts the passes that did run
// produced.
package driver
