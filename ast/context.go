package ast

import "fmt"

// DeclID identifies a declaration within a Context's arena. The zero
// value is never a valid ID (arena indices are 1-based, matching the
// convention that lets a zero DeclID double as "no declaration" without
// a separate validity flag). Sema assigns DeclIDs to reference
// expressions once it resolves them to the declaration they name, per
// the language reference "Cyclic AST references": uplinks become arena indices
// rather than back-pointers, so the dependency graph sema and the type
// checker walk for cycle detection can address declarations by a plain
// comparable value instead of a pointer.
type DeclID uint32

// Valid reports whether id refers to an actual arena slot.
func (id DeclID) Valid() bool { return id != 0 }

// Context owns the declaration arena for one compilation unit. Every
// Decl the parser produces is registered here and addressed from then
// on by its DeclID; expressions, statements, and type references are
// plain pointer trees hung off their owning declaration and need no
// arena slot of their own, since nothing outside their own declaration
// ever needs to name them by stable identity.
type Context struct {
	file  string
	decls []Decl // DeclID i lives at decls[i-1]; DeclID 0 has no slot
	roots []DeclID
}

// NewContext creates an empty Context for the named source file. file
// is used only for diagnostics and debugging output.
func NewContext(file string) *Context {
	return &Context{file: file}
}

// File returns the path or synthetic identifier this context was built
// for.
func (c *Context) File() string { return c.file }

// AddDecl registers d in the arena and returns its new DeclID. Does not
// add d to the top-level root list; call AddRoot separately for
// module-level declarations.
func (c *Context) AddDecl(d Decl) DeclID {
	c.decls = append(c.decls, d)
	return DeclID(len(c.decls))
}

// Decl returns the declaration registered under id. Panics if id is
// invalid or was not issued by this Context, since that indicates a
// programmer error (a DeclID leaking across contexts or a zero value
// used without a Valid() check) rather than a recoverable condition.
func (c *Context) Decl(id DeclID) Decl {
	if !id.Valid() || int(id) > len(c.decls) {
		panic(fmt.Sprintf("ast: invalid DeclID %d for context %q", id, c.file))
	}
	return c.decls[id-1]
}

// AddRoot marks id as a module-level declaration, appending it to the
// order returned by Roots.
func (c *Context) AddRoot(id DeclID) {
	c.roots = append(c.roots, id)
}

// Roots returns the module-level declaration IDs in source order. This
// is the entry point a pass uses to walk the whole file.
func (c *Context) Roots() []DeclID {
	out := make([]DeclID, len(c.roots))
	copy(out, c.roots)
	return out
}

// Len returns the number of declarations registered so far, including
// ones not reachable from Roots (e.g. nested type members, which are
// still arena-allocated for uniform DeclID addressing but are reached
// via their owning TypeDecl rather than via Roots).
func (c *Context) Len() int { return len(c.decls) }
