package irgen

import (
	"fmt"
	"strings"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/diag"
	"github.com/trill-lang/trillc/location"
	"github.com/trill-lang/trillc/sema"
	"github.com/trill-lang/trillc/typecheck"
	"github.com/trill-lang/trillc/types"
)

// Generator lowers one type-checked ast.File to textual IR. Create one
// per file; its internal counters and register maps are reset at the
// start of each function, but its output buffer and diagnostics
// accumulate across every function in the file.
type Generator struct {
	sema  *sema.Info
	check *typecheck.Info
	owners map[ast.Decl]*ast.TypeDecl

	out             strings.Builder
	issues          *diag.Collector
	stringConstants map[string]string
	metadataEmitted map[string]bool

	// per-function state, reset by resetFunction
	regCounter      int
	labelCounter    int
	locals          map[ast.Decl]string
	loopExits       []loopLabels
	blockTerminated bool
	currentBlock    string
}

// loopLabels names the basic blocks a break/continue inside a loop
// body targets.
type loopLabels struct {
	continueLabel string
	breakLabel    string
}

// NewGenerator creates a Generator consulting semaInfo and checkInfo
// for resolved types, layouts, and call resolutions.
func NewGenerator(semaInfo *sema.Info, checkInfo *typecheck.Info) *Generator {
	return &Generator{
		sema:            semaInfo,
		check:           checkInfo,
		owners:          make(map[ast.Decl]*ast.TypeDecl),
		issues:          diag.NewCollectorUnlimited(),
		stringConstants: make(map[string]string),
		metadataEmitted: make(map[string]bool),
	}
}

// Generate lowers file to textual IR, returning the rendered module
// and the diagnostics collected while doing so. A function whose body
// could not be fully lowered still contributes its `define` block, with
// "undef" in place of each unsupported construct; the collected
// E_UNSUPPORTED_CONSTRUCT issue is the record of why.
func (g *Generator) Generate(file *ast.File) (string, diag.Result) {
	g.buildOwners(file)

	g.emitModuleHeader()
	g.emitRuntimeDeclarations()

	for _, d := range file.Decls {
		if td, ok := d.(*ast.TypeDecl); ok {
			g.emitTypeMetadata(td)
		}
		if pd, ok := d.(*ast.ProtocolDecl); ok {
			g.emitProtocolMetadata(pd)
		}
	}

	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *ast.FuncDecl:
			g.generateFreeFunction(decl)
		case *ast.TypeDecl:
			g.generateTypeMembers(decl)
		}
	}

	g.emitStringConstants()

	return g.out.String(), g.issues.Result()
}

// buildOwners records, for every member of every TypeDecl reachable
// from file.Decls, the TypeDecl that owns it, mirroring
// typecheck.Checker.buildOwners so method symbols mangle against the
// right receiver.
func (g *Generator) buildOwners(file *ast.File) {
	for _, d := range file.Decls {
		td, ok := d.(*ast.TypeDecl)
		if !ok {
			continue
		}
		for _, m := range td.Members {
			g.owners[m] = td
		}
	}
}

func (g *Generator) emit(line string) {
	g.out.WriteString(line)
	g.out.WriteByte('\n')
}

func (g *Generator) emitf(format string, args ...interface{}) {
	g.emit(fmt.Sprintf(format, args...))
}

func (g *Generator) nextReg() string {
	r := fmt.Sprintf("%%r%d", g.regCounter)
	g.regCounter++
	return r
}

func (g *Generator) nextLabel(prefix string) string {
	l := fmt.Sprintf("%s.%d", prefix, g.labelCounter)
	g.labelCounter++
	return l
}

func (g *Generator) resetFunction() {
	g.regCounter = 0
	g.labelCounter = 0
	g.locals = make(map[ast.Decl]string)
	g.loopExits = nil
	g.blockTerminated = false
	g.currentBlock = ""
}

// emitLabel opens a new basic block, recording it as the current block
// so a later phi knows which predecessor label to name for a value
// computed here.
func (g *Generator) emitLabel(name string) {
	g.emitf("%s:", name)
	g.currentBlock = name
	g.blockTerminated = false
}

func (g *Generator) reportUnsupported(span location.Span, what string) {
	g.issues.Collect(diag.NewIssue(diag.Error, diag.E_UNSUPPORTED_CONSTRUCT,
		fmt.Sprintf("irgen: no lowering for %s", what)).WithSpan(span).Build())
}

// emitModuleHeader writes the fixed module preamble every generated
// file starts with.
func (g *Generator) emitModuleHeader() {
	g.emit("; ModuleID = 'trill'")
	g.emit(`source_filename = "trill"`)
	g.emit("")
}

// emitRuntimeDeclarations declares the handful of C functions the
// runtime ABI names, plus the Any existential's fixed struct shape
// (24-byte inline payload, one metadata pointer).
func (g *Generator) emitRuntimeDeclarations() {
	g.emit("; runtime ABI declarations")
	g.emit("%Any = type { [24 x i8], i8* }")
	g.emit("%FieldMetadata = type { i8*, i64, i64 }")
	g.emit("%TypeMetadata = type { i8*, %FieldMetadata*, i1, i64, i64, i64 }")
	g.emit("%ProtocolMetadata = type { i8*, i8**, i64 }")
	g.emit("declare i8* @trill_alloc(i64)")
	g.emit("declare void @trill_fatalError(i8*)")
	g.emit("declare void @trill_once(i64*, void ()*)")
	g.emit("declare i8* @trill_allocateIndirectType(i64, void (i8*)*)")
	g.emit("declare void @trill_retain(i8*)")
	g.emit("declare void @trill_release(i8*)")
	g.emit("declare i8 @trill_isUniquelyReferenced(i8*)")
	g.emit("declare i8* @trill_demangle(i8*)")
	g.emit("")
}

// internString interns a string literal as a deduplicated global
// constant, returning the global's symbol name.
func (g *Generator) internString(content string) string {
	if name, ok := g.stringConstants[content]; ok {
		return name
	}
	name := fmt.Sprintf("@.str.%d", len(g.stringConstants))
	g.stringConstants[content] = name
	return name
}

func (g *Generator) emitStringConstants() {
	if len(g.stringConstants) == 0 {
		return
	}
	g.emit("; string constants")
	for content, name := range g.stringConstants {
		escaped, length := escapeStringForLLVM(content)
		g.emitf(`%s = private unnamed_addr constant [%d x i8] c"%s", align 1`, name, length, escaped)
	}
	g.emit("")
}

func escapeStringForLLVM(s string) (string, int) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 32 && b < 127 && b != '"' && b != '\\' {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, "\\%02X", b)
		}
	}
	sb.WriteString("\\00")
	return sb.String(), len(s) + 1
}

// exprType looks up checkInfo's assigned type for e, falling back to
// types.ErrorType for an expression the type checker never reached.
func (g *Generator) exprType(e ast.Expr) *types.Type {
	if t, ok := g.check.ExprTypes[e]; ok {
		return t
	}
	return types.ErrorType
}
