package sema

import "github.com/trill-lang/trillc/ast"

// ScopeKind discriminates the four scope tiers the language reference lists:
// "module → type → function → compound".
type ScopeKind int

const (
	ModuleScope ScopeKind = iota
	TypeScope
	FunctionScope
	CompoundScope
)

// Scope maps identifiers to declaration lists within one of the four
// lexical tiers, overload-aware: a name may carry more than one entry
// only when every entry is a *ast.FuncDecl or *ast.InitDecl (the language reference "Builds
// overload sets for names referenced by calls").
type Scope struct {
	kind   ScopeKind
	parent *Scope
	names  map[string][]ast.Decl
}

// newScope creates a scope of kind kind nested in parent. parent is nil
// only for the module scope.
func newScope(kind ScopeKind, parent *Scope) *Scope {
	return &Scope{kind: kind, parent: parent, names: make(map[string][]ast.Decl)}
}

// declare adds d under name. If name already has one or more entries
// and d or any existing entry is neither a *ast.FuncDecl nor an
// *ast.InitDecl, declare
// reports a conflict: it returns the first conflicting prior
// declaration and ok=false without adding d. Otherwise d is appended to
// the (possibly empty) overload set and ok is true.
func (s *Scope) declare(name string, d ast.Decl) (conflict ast.Decl, ok bool) {
	existing := s.names[name]
	if len(existing) == 0 {
		s.names[name] = []ast.Decl{d}
		return nil, true
	}
	if !isOverloadable(d) {
		return existing[0], false
	}
	for _, e := range existing {
		if !isOverloadable(e) {
			return e, false
		}
	}
	s.names[name] = append(existing, d)
	return nil, true
}

func isOverloadable(d ast.Decl) bool {
	switch d.(type) {
	case *ast.FuncDecl, *ast.InitDecl:
		return true
	default:
		return false
	}
}

// lookup searches s and its ancestors for name, returning the
// declaration list found in the nearest enclosing scope that has one.
// Returns (nil, false) if no scope in the chain declares name.
func (s *Scope) lookup(name string) ([]ast.Decl, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if entries, ok := scope.names[name]; ok {
			return entries, true
		}
	}
	return nil, false
}
