// Package typecheck implements the bottom-up type-assignment and
// validation pass of the language reference: it assigns a type to every
// expression, validates every statement, resolves call overloads
// against argument types, and decides where an implicit Any box or an
// explicit checked cast is required. It runs after sema and consumes
// sema's Info (resolved declaration types, candidate sets, layouts)
// rather than re-deriving any of it.
package typecheck
