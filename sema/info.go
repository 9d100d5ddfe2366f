package sema

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/types"
)

// FieldLayout records one stored field's computed placement within its
// enclosing type, per the language reference's "stored-field layout: order of
// appearance; field offsets accumulate with natural alignment to the
// field's size-in-bits rounded to bytes".
type FieldLayout struct {
	Field      *ast.VarDecl
	Type       *types.Type
	OffsetBits int
	SizeBits   int
}

// TypeLayout is the full computed layout of one non-foreign, non-alias
// type declaration: its fields in order together with the type's total
// size. Indirect types are boxed — their Layout still describes the
// fields stored inside the box, not the pointer-sized handle user code
// manipulates; see Info.Indirect.
type TypeLayout struct {
	Fields   []FieldLayout
	SizeBits int
}

// Info is the result of a completed Analyze pass: every piece of
// information sema records by reference rather than by mutating the
// ast package's node types, since ast.TypeRef and ast.CallExpr carry no
// field of their own for a resolved semantic type or candidate set
// (adding one would require ast to import types, which already imports
// ast for ast.DeclID — keeping the dependency one-directional is worth
// an external side table).
type Info struct {
	// ResolvedTypes maps each TypeRef the checker resolved to its
	// semantic Type. A TypeRef that failed to resolve maps to
	// types.ErrorType, with the reason among the diagnostics; a TypeRef
	// absent from this map was never reached by the pass.
	ResolvedTypes map[ast.TypeRef]*types.Type

	// DeclTypes maps every declaration the checker assigned a type to
	// its semantic Type: variables and parameters to their declared or
	// inferred type, functions to their Function type, types to their
	// own Named type.
	DeclTypes map[ast.Decl]*types.Type

	// Candidates maps each call site to the overload set visible at
	// that point in scope, before argument-based resolution narrows it
	// further (that narrowing is the type checker's job, not sema's;
	// the language reference only requires that sema "records candidate set on
	// each call site").
	Candidates map[*ast.CallExpr][]*ast.FuncDecl

	// Layouts maps each non-foreign, non-alias TypeDecl to its computed
	// stored-field layout.
	Layouts map[*ast.TypeDecl]*TypeLayout

	// DeclByID supports looking up a declaration by the DeclID any
	// Resolved field on a reference expression carries.
	DeclByID map[ast.DeclID]ast.Decl

	// Indirect records which TypeDecls carry `indirect`, i.e. are
	// reference types boxed on the heap rather than stored inline.
	Indirect map[*ast.TypeDecl]bool
}

func newInfo() *Info {
	return &Info{
		ResolvedTypes: make(map[ast.TypeRef]*types.Type),
		DeclTypes:     make(map[ast.Decl]*types.Type),
		Candidates:    make(map[*ast.CallExpr][]*ast.FuncDecl),
		Layouts:       make(map[*ast.TypeDecl]*TypeLayout),
		DeclByID:      make(map[ast.DeclID]ast.Decl),
		Indirect:      make(map[*ast.TypeDecl]bool),
	}
}
