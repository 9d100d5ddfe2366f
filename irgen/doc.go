// Package irgen lowers a type-checked AST to textual LLVM-flavored IR
// per the language reference: primitives to native LLVM scalars, pointers to
// LLVM pointers, indirect types to heap boxes reached through the
// runtime ABI's retain/release pair, and Any to the fixed
// inline-or-heap existential shape runtime.Any models in Go. It
// consumes sema.Info and typecheck.Info rather than re-deriving
// anything they already computed, and never emits a partial function
// body — an unsupported construct is collected as an E_UNSUPPORTED_CONSTRUCT
// diagnostic and that function's generation is abandoned, the same
// short-circuit discipline every earlier pass in this module follows.
package irgen
