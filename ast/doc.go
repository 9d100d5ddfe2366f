// Package ast defines the Trill abstract syntax tree: expression,
// declaration, and statement node hierarchies built by the parser,
// enriched in place (never rebuilt) by sema and the type checker, and
// finally walked by the IR generator.
//
// Declarations are the one node family that needs a stable identity
// other nodes can refer back to — a variable reference must resolve to
// the same declaration sema saw, and the dependency graph used for
// cycle detection walks declarations by identity rather than by
// pointer. Context arena-allocates declarations and hands out DeclID
// values for that purpose; expressions, statements, and type references
// are ordinary pointer trees owned by their parent declaration.
package ast
