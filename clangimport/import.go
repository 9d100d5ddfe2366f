package clangimport

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/location"
)

// importer carries the per-call state a translation unit import needs:
// the source identity every synthesized node is attributed to, and the
// diagnostic collector every mapping failure reports into. It decodes
// the document, then reports each mapping failure as a collected Issue
// rather than panicking or aborting the import; it tracks no byte
// offsets, since a translation unit document carries no meaningful
// positions for this importer to preserve.
type importer struct {
	source location.SourceID
	issues *diag.Collector
}

// Import decodes data as a jsonc-tolerant JSON translation unit document
// and returns the foreign ast.Decl values it describes. Every returned
// declaration carries ast.Foreign; the caller is
// responsible for injecting them into a compilation's ast.Context
// before Sema runs. Decoding continues past a malformed individual
// declaration, collecting one E_HEADER_PARSE/E_UNSUPPORTED_C_TYPE issue
// per failure rather than aborting the whole import.
func Import(source location.SourceID, data []byte) ([]ast.Decl, diag.Result) {
	imp := &importer{source: source, issues: diag.NewCollectorUnlimited()}

	processed := jsonc.ToJSON(data)
	var tu wireTranslationUnit
	if err := json.Unmarshal(processed, &tu); err != nil {
		imp.parseError(fmt.Sprintf("invalid translation unit document: %s", err))
		return nil, imp.issues.Result()
	}

	var decls []ast.Decl
	for i, raw := range tu.Decls {
		var header wireDeclHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			imp.parseError(fmt.Sprintf("declaration %d: %s", i, err))
			continue
		}
		d := imp.importDecl(i, header.Kind, raw)
		if d == nil {
			continue
		}
		decls = append(decls, d...)
	}
	return decls, imp.issues.Result()
}

// importDecl dispatches one raw declaration to its kind-specific
// decoder and mapper. Most kinds produce exactly one ast.Decl; an enum
// expands to one per case.
func (imp *importer) importDecl(index int, kind string, raw json.RawMessage) []ast.Decl {
	switch kind {
	case kindFunction:
		var w wireFunction
		if err := json.Unmarshal(raw, &w); err != nil {
			imp.parseError(fmt.Sprintf("declaration %d (function): %s", index, err))
			return nil
		}
		return []ast.Decl{imp.importFunction(w)}

	case kindTypedef:
		var w wireTypedef
		if err := json.Unmarshal(raw, &w); err != nil {
			imp.parseError(fmt.Sprintf("declaration %d (typedef): %s", index, err))
			return nil
		}
		return []ast.Decl{imp.importTypedef(w)}

	case kindEnum:
		var w wireEnum
		if err := json.Unmarshal(raw, &w); err != nil {
			imp.parseError(fmt.Sprintf("declaration %d (enum): %s", index, err))
			return nil
		}
		return imp.importEnum(w)

	case kindRecord:
		var w wireRecord
		if err := json.Unmarshal(raw, &w); err != nil {
			imp.parseError(fmt.Sprintf("declaration %d (record): %s", index, err))
			return nil
		}
		return []ast.Decl{imp.importRecord(w)}

	default:
		imp.parseError(fmt.Sprintf("declaration %d: unknown kind %q", index, kind))
		return nil
	}
}

// span returns the synthetic zero-position span every node this
// importer produces is attributed to.
func (imp *importer) span() location.Span {
	return location.Span{Source: imp.source}
}

// importFunction maps a C function to a bodyless `foreign func`,
// mapping each parameter positionally (C has no parameter labels, so
// both the external and internal label are the parameter's own name)
// and carrying `noreturn` through as ast.Noreturn.
func (imp *importer) importFunction(w wireFunction) ast.Decl {
	span := imp.span()
	params := make([]*ast.ParamDecl, len(w.Params))
	for i, p := range w.Params {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		typ := imp.mapType(span, p.Type)
		params[i] = ast.NewParamDecl(span, name, name, typ, false)
	}
	if w.Variadic && len(params) > 0 {
		params[len(params)-1].Variadic = true
	}

	returnType := imp.mapType(span, w.ReturnType)
	decl := ast.NewFuncDecl(span, w.Name, params, returnType, nil)
	attrs := ast.Foreign
	if w.Noreturn {
		attrs |= ast.Noreturn
	}
	decl.SetAttributes(attrs)
	return decl
}

// importTypedef maps a C typedef to a `foreign` type alias.
func (imp *importer) importTypedef(w wireTypedef) ast.Decl {
	span := imp.span()
	target := imp.mapType(span, w.Type)
	decl := ast.NewTypeAliasDecl(span, w.Name, target)
	decl.SetAttributes(ast.Foreign)
	return decl
}

// importEnum maps a C enum to a flat group of `foreign let` constants,
// per the language reference "enums become a group of constant lets." A case
// with no explicit value continues the C auto-increment rule from the
// previous case's value, starting at 0.
func (imp *importer) importEnum(w wireEnum) []ast.Decl {
	span := imp.span()
	decls := make([]ast.Decl, 0, len(w.Cases))
	var next int64
	for _, c := range w.Cases {
		value := next
		if c.Value != nil {
			value = *c.Value
		}
		init := ast.NewIntLiteralExpr(span, fmt.Sprintf("%d", value))
		decl := ast.NewVarDecl(span, true, c.Name, ast.NewNamedTypeRef(span, "Int32"), init)
		decl.SetAttributes(ast.Foreign)
		decls = append(decls, decl)
		next = value + 1
	}
	return decls
}

// importRecord maps a C struct/union to a `foreign type` with fields
// in declaration order, per the language reference. `const` on a field's own type
// is discarded upstream by this importer's wire format — the C
// frontend that produces the translation unit document does not carry
// qualifiers into the wire types at all, since this compiler does not
// model immutability imported from C.
func (imp *importer) importRecord(w wireRecord) ast.Decl {
	span := imp.span()
	members := make([]ast.Decl, len(w.Fields))
	for i, f := range w.Fields {
		typ := imp.mapType(span, f.Type)
		field := ast.NewVarDecl(span, false, f.Name, typ, nil)
		field.SetAttributes(ast.Foreign)
		members[i] = field
	}
	decl := ast.NewTypeDecl(span, w.Name, members)
	decl.SetAttributes(ast.Foreign)
	return decl
}

func (imp *importer) parseError(msg string) {
	issue := diag.NewIssue(diag.Error, diag.E_HEADER_PARSE, msg).
		WithSpan(imp.span()).
		Build()
	imp.issues.Collect(issue)
}

func (imp *importer) unsupportedType(span location.Span, what, fallback string) {
	issue := diag.NewIssue(diag.Warning, diag.E_UNSUPPORTED_C_TYPE,
		fmt.Sprintf("no Trill representation for %s; imported as %s", what, fallback)).
		WithSpan(span).
		Build()
	imp.issues.Collect(issue)
}
