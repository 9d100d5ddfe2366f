// Package mangler implements the language reference's bijective encoding of
// declaration identities to ASCII symbol names: every Trill symbol
// the IR generator emits round-trips through Demangle to a
// human-readable form, and two distinct declarations never collide on
// the same mangled name. Mangler operates on already-resolved
// *types.Type values rather than ast.TypeRef syntax, so it has no
// dependency on sema or typecheck — the caller (irgen) supplies the
// resolved parameter/return types it already holds in sema.Info or
// typecheck.Info.
package mangler
