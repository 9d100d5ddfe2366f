package irgen

import (
	"fmt"
	"strings"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/mangler"
)

// emitTypeMetadata emits td's TypeMetadata constant per the language reference:
// `{name, fields*, isReferenceType, sizeInBits, fieldCount,
// pointerLevel}`, matching runtime.TypeMetadata's field order exactly
// so a generated program and this module's own Go-level runtime model
// agree on layout. Skips a type sema never computed a layout for (a
// foreign or alias declaration — the language reference only computes layout for
// "non-foreign type"; protocols are handled separately by
// emitProtocolMetadata).
func (g *Generator) emitTypeMetadata(td *ast.TypeDecl) {
	layout, ok := g.sema.Layouts[td]
	if !ok {
		return
	}
	symbol := mangler.MangleTypeDecl(td)
	if g.metadataEmitted[symbol] {
		return
	}
	g.metadataEmitted[symbol] = true

	fieldsGlobal := symbol + ".fields"
	var fieldInits []string
	for _, f := range layout.Fields {
		fieldInits = append(fieldInits, fmt.Sprintf(
			`{ i8* getelementptr inbounds ([%d x i8], [%d x i8]* %s, i32 0, i32 0), i64 %d, i64 %d }`,
			len(f.Field.Name)+1, len(f.Field.Name)+1, g.internString(f.Field.Name), f.SizeBits, f.OffsetBits/8))
	}

	if len(fieldInits) > 0 {
		g.emitf("%s = private unnamed_addr constant [%d x %%FieldMetadata] [%s]",
			fieldsGlobal, len(fieldInits), joinStructs(fieldInits))
	}

	isRef := 0
	if g.sema.Indirect[td] {
		isRef = 1
	}

	fieldsPtr := "null"
	if len(fieldInits) > 0 {
		fieldsPtr = fmt.Sprintf("getelementptr inbounds ([%d x %%FieldMetadata], [%d x %%FieldMetadata]* %s, i32 0, i32 0)",
			len(fieldInits), len(fieldInits), fieldsGlobal)
	}

	g.emitf(`%s = constant %%TypeMetadata { i8* getelementptr inbounds ([%d x i8], [%d x i8]* %s, i32 0, i32 0), %%FieldMetadata* %s, i1 %d, i64 %d, i64 %d, i64 0 }`,
		symbol, len(td.Name)+1, len(td.Name)+1, g.internString(td.Name), fieldsPtr, isRef, layout.SizeBits, len(layout.Fields))
}

// emitProtocolMetadata emits pd's ProtocolMetadata constant:
// `{name, methodNames[], methodCount}`.
func (g *Generator) emitProtocolMetadata(pd *ast.ProtocolDecl) {
	symbol := mangler.MangleProtocol(pd)
	if g.metadataEmitted[symbol] {
		return
	}
	g.metadataEmitted[symbol] = true

	var names []string
	for _, m := range pd.Members {
		names = append(names, m.DeclName())
	}

	namesGlobal := symbol + ".methodNames"
	if len(names) > 0 {
		var nameInits []string
		for _, n := range names {
			nameInits = append(nameInits, fmt.Sprintf(`i8* getelementptr inbounds ([%d x i8], [%d x i8]* %s, i32 0, i32 0)`,
				len(n)+1, len(n)+1, g.internString(n)))
		}
		g.emitf("%s = private unnamed_addr constant [%d x i8*] [%s]", namesGlobal, len(nameInits), strings.Join(nameInits, ", "))
	}

	namesPtr := "null"
	if len(names) > 0 {
		namesPtr = fmt.Sprintf("getelementptr inbounds ([%d x i8*], [%d x i8*]* %s, i32 0, i32 0)", len(names), len(names), namesGlobal)
	}

	g.emitf(`%s = constant %%ProtocolMetadata { i8* getelementptr inbounds ([%d x i8], [%d x i8]* %s, i32 0, i32 0), i8** %s, i64 %d }`,
		symbol, len(pd.Name)+1, len(pd.Name)+1, g.internString(pd.Name), namesPtr, len(names))
}

func joinStructs(items []string) string {
	return strings.Join(items, ", ")
}
