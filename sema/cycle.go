package sema

import "github.com/trill-lang/trillc/ast"

// cycleState tracks a TypeDecl's progress through resolveLayout's
// dependency DFS (layout.go): a visited/visiting/done three-state walk
// over declaration-level field dependencies, flagging a cycle the
// moment the walk revisits a node still marked visiting.
type cycleState int

const (
	unvisited cycleState = iota
	visiting
	done
)

// lookupTypeDecl resolves a bare type name against the module scope,
// returning the *ast.TypeDecl it names or nil if it names something
// else (a protocol, alias, or nothing at all).
func (c *Checker) lookupTypeDecl(name string) *ast.TypeDecl {
	entries, ok := c.module.lookup(name)
	if !ok {
		return nil
	}
	for _, d := range entries {
		if td, ok := d.(*ast.TypeDecl); ok {
			return td
		}
	}
	return nil
}
