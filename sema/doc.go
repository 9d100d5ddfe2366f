// Package sema implements the single-traversal semantic analysis pass:
// scope population, type-reference resolution, implicit-member
// synthesis, stored-field layout, overload-set construction, and a
// fixed list of structural diagnostics (redeclaration, invalid
// modifiers, duplicate case labels, self outside a method, parameter
// shadowing).
package sema
