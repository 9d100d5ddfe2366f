package sema

import (
	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/types"
)

// builtinTypes maps the spelling of every primitive the language reference names to
// its singleton Type. User types, protocols, and aliases are resolved
// against the module scope instead.
var builtinTypes = map[string]*types.Type{
	"Int8":    types.Int8Type,
	"Int16":   types.Int16Type,
	"Int32":   types.Int32Type,
	"Int64":   types.Int64Type,
	"Int":     types.IntPlatformType,
	"UInt8":   types.UInt8Type,
	"UInt16":  types.UInt16Type,
	"UInt32":  types.UInt32Type,
	"UInt64":  types.UInt64Type,
	"UInt":    types.UIntPlatformType,
	"Bool":    types.BoolType,
	"Float":   types.FloatType,
	"Double":  types.DoubleType,
	"Void":    types.VoidType,
	"Any":     types.AnyType,
}

// resolveTypeRef resolves a syntactic TypeRef to its semantic Type
// within scope, recording the result in c.info.ResolvedTypes. An
// unresolved named reference reports E_UNKNOWN_TYPE and resolves to
// types.ErrorType so the rest of the pass can proceed without a nil
// check at every call site.
func (c *Checker) resolveTypeRef(scope *Scope, ref ast.TypeRef) *types.Type {
	if t, ok := c.info.ResolvedTypes[ref]; ok {
		return t
	}
	t := c.resolveTypeRefUncached(scope, ref)
	c.info.ResolvedTypes[ref] = t
	return t
}

func (c *Checker) resolveTypeRefUncached(scope *Scope, ref ast.TypeRef) *types.Type {
	switch r := ref.(type) {
	case *ast.NamedTypeRef:
		if t, ok := builtinTypes[r.Name]; ok {
			return t
		}
		entries, ok := scope.lookup(r.Name)
		if !ok {
			c.issues.Collect(diag.NewIssue(diag.Error, diag.E_UNKNOWN_TYPE,
				"unknown type '"+r.Name+"'").WithSpan(r.Span()).Build())
			return types.ErrorType
		}
		for _, d := range entries {
			switch decl := d.(type) {
			case *ast.TypeDecl:
				return c.interner.Named(decl.Name, c.declID(decl))
			case *ast.ProtocolDecl:
				return c.interner.Named(decl.Name, c.declID(decl))
			case *ast.TypeAliasDecl:
				return c.resolveTypeRef(scope, decl.Target)
			}
		}
		c.issues.Collect(diag.NewIssue(diag.Error, diag.E_UNKNOWN_TYPE,
			"'"+r.Name+"' does not name a type").WithSpan(r.Span()).Build())
		return types.ErrorType
	case *ast.PointerTypeRef:
		return c.interner.Pointer(c.resolveTypeRef(scope, r.Pointee))
	case *ast.TupleTypeRef:
		elems := make([]*types.Type, len(r.Elements))
		for i, e := range r.Elements {
			elems[i] = c.resolveTypeRef(scope, e)
		}
		return c.interner.Tuple(elems)
	case *ast.FunctionTypeRef:
		params := make([]*types.Type, len(r.Params))
		for i, p := range r.Params {
			params[i] = c.resolveTypeRef(scope, p)
		}
		result := c.resolveTypeRef(scope, r.Result)
		return c.interner.Function(params, result, r.Variadic)
	default:
		return types.ErrorType
	}
}
