package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/trill-lang/trillc/ast"
)

// Interner hands out one canonical *Type per distinct named, pointer,
// tuple, or function type, so two structurally equal composite types
// built through the same Interner are also pointer-equal. Safe for
// concurrent use; the compiler has one Interner per compilation, built
// before sema resolves the first type reference, and shared read-only
// (modulo interning) across sema and the type checker.
type Interner struct {
	mu        sync.Mutex
	named     map[ast.DeclID]*Type
	pointers  map[*Type]*Type
	tuples    map[string]*Type
	functions map[string]*Type
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{
		named:     make(map[ast.DeclID]*Type),
		pointers:  make(map[*Type]*Type),
		tuples:    make(map[string]*Type),
		functions: make(map[string]*Type),
	}
}

// Named returns the canonical Type for the type or protocol declared
// at declID, creating it on first request. Subsequent calls with the
// same declID return the identical *Type, so identity comparisons
// across sema and the type checker are valid even without calling
// Equal.
func (in *Interner) Named(name string, declID ast.DeclID) *Type {
	in.mu.Lock()
	defer in.mu.Unlock()
	if t, ok := in.named[declID]; ok {
		return t
	}
	t := &Type{kind: Named, name: name, declID: declID}
	in.named[declID] = t
	return t
}

// Pointer returns the canonical `*pointee` Type.
func (in *Interner) Pointer(pointee *Type) *Type {
	in.mu.Lock()
	defer in.mu.Unlock()
	if t, ok := in.pointers[pointee]; ok {
		return t
	}
	t := &Type{kind: Pointer, pointee: pointee}
	in.pointers[pointee] = t
	return t
}

// Tuple returns the canonical `(elements…)` Type.
func (in *Interner) Tuple(elements []*Type) *Type {
	key := typeSliceKey(elements)
	in.mu.Lock()
	defer in.mu.Unlock()
	if t, ok := in.tuples[key]; ok {
		return t
	}
	t := &Type{kind: Tuple, elements: append([]*Type(nil), elements...)}
	in.tuples[key] = t
	return t
}

// Function returns the canonical `(params…) -> result` Type,
// optionally variadic.
func (in *Interner) Function(params []*Type, result *Type, variadic bool) *Type {
	key := typeSliceKey(params) + "->" + typePointerKey(result)
	if variadic {
		key += ",..."
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	if t, ok := in.functions[key]; ok {
		return t
	}
	t := &Type{
		kind:     Function,
		params:   append([]*Type(nil), params...),
		result:   result,
		variadic: variadic,
	}
	in.functions[key] = t
	return t
}

// typeSliceKey and typePointerKey build a cache key from the interned
// pointer identity of already-canonical element Types. This is valid
// only because every element reaching Tuple/Function has itself
// already been produced by a singleton var or by this same Interner,
// so pointer identity already reflects structural identity.
func typeSliceKey(ts []*Type) string {
	var sb strings.Builder
	for i, t := range ts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(typePointerKey(t))
	}
	return sb.String()
}

func typePointerKey(t *Type) string {
	return fmt.Sprintf("%p", t)
}
