// Package clangimport implements the C declaration importer: given a C
// translation unit — expressed as a jsonc-tolerant JSON document, the
// form an out-of-process clang frontend would hand this compiler — it
// produces foreign ast.Decl values ready for injection into a
// compilation's ast.Context before Sema runs.
package clangimport
