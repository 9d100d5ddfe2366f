package irgen

import (
	"fmt"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/mangler"
	"github.com/trill-lang/trillc/token"
	"github.com/trill-lang/trillc/typecheck"
	"github.com/trill-lang/trillc/types"
)

// lowerExpr emits the instructions computing e's value and returns the
// bare operand (a `%rN` register or a literal constant) a caller
// splices into its own instruction text alongside e's type from
// exprType. An expression this function cannot lower collects an
// E_UNSUPPORTED_CONSTRUCT diagnostic and returns "undef" so the caller
// can keep emitting syntactically well-formed (if semantically dead)
// IR for the rest of the function.
func (g *Generator) lowerExpr(e ast.Expr) string {
	switch expr := e.(type) {
	case *ast.IntLiteralExpr:
		v, err := token.DecodeInt(expr.Text)
		if err != nil {
			return "0"
		}
		return fmt.Sprintf("%d", v)
	case *ast.FloatLiteralExpr:
		v, err := token.DecodeFloat(expr.Text)
		if err != nil {
			return "0.0"
		}
		return fmt.Sprintf("%g", v)
	case *ast.CharLiteralExpr:
		r, err := token.DecodeChar(expr.Text)
		if err != nil {
			return "0"
		}
		return fmt.Sprintf("%d", r)
	case *ast.BoolLiteralExpr:
		if expr.Value {
			return "1"
		}
		return "0"
	case *ast.NilLiteralExpr:
		return "null"
	case *ast.StringLiteralExpr:
		return g.lowerStringLiteral(expr)
	case *ast.VariableRefExpr:
		return g.lowerVariableRef(expr)
	case *ast.ParenExpr:
		return g.lowerExpr(expr.Inner)
	case *ast.PrefixExpr:
		return g.lowerPrefixExpr(expr)
	case *ast.InfixExpr:
		return g.lowerInfixExpr(expr)
	case *ast.CallExpr:
		return g.lowerCallExpr(expr)
	case *ast.FieldLookupExpr:
		ptr, elemType := g.lowerFieldAddr(expr)
		return g.loadFrom(ptr, elemType)
	case *ast.TupleFieldLookupExpr:
		return g.lowerTupleFieldLookup(expr)
	case *ast.TernaryExpr:
		return g.lowerTernaryExpr(expr)
	case *ast.SizeofExpr:
		return g.lowerSizeofExpr(expr)
	default:
		g.reportUnsupported(e.Span(), fmt.Sprintf("expression %T", e))
		return "undef"
	}
}

func (g *Generator) lowerStringLiteral(expr *ast.StringLiteralExpr) string {
	decoded, err := token.DecodeString(expr.Text)
	if err != nil {
		decoded = ""
	}
	name := g.internString(decoded)
	reg := g.nextReg()
	g.emitf("  %s = getelementptr inbounds [%d x i8], [%d x i8]* %s, i32 0, i32 0",
		reg, len(decoded)+1, len(decoded)+1, name)
	return reg
}

// lowerVariableRef loads a local/parameter's current value out of its
// stack slot. A reference sema never resolved to a local in scope (a
// free function used as a first-class value, a global, an enum case)
// is not yet modeled — it is collected as unsupported rather than
// silently emitting a wrong load.
func (g *Generator) lowerVariableRef(expr *ast.VariableRefExpr) string {
	decl, ok := g.sema.DeclByID[expr.Resolved]
	if !ok {
		g.reportUnsupported(expr.Span(), "unresolved variable reference")
		return "undef"
	}
	slot, ok := g.locals[decl]
	if !ok {
		g.reportUnsupported(expr.Span(), fmt.Sprintf("reference to non-local declaration %q", expr.Name))
		return "undef"
	}
	return g.loadFrom(slot, g.exprType(expr))
}

func (g *Generator) loadFrom(ptr string, t *types.Type) string {
	llType := g.llvmType(t)
	reg := g.nextReg()
	g.emitf("  %s = load %s, %s* %s", reg, llType, llType, ptr)
	return reg
}

// lowerLValue resolves e to the pointer holding its storage, for use
// by assignment, compound assignment, and `&`. It handles a local
// variable, a struct field, a tuple element, and a dereferenced pointer,
// each possibly parenthesized; any other target, a subscript included,
// is reported as an unsupported construct and yields "undef".
func (g *Generator) lowerLValue(e ast.Expr) (string, *types.Type) {
	switch expr := e.(type) {
	case *ast.VariableRefExpr:
		decl, ok := g.sema.DeclByID[expr.Resolved]
		if !ok {
			g.reportUnsupported(expr.Span(), "unresolved assignment target")
			return "undef", types.ErrorType
		}
		slot, ok := g.locals[decl]
		if !ok {
			g.reportUnsupported(expr.Span(), fmt.Sprintf("assignment to non-local %q", expr.Name))
			return "undef", types.ErrorType
		}
		return slot, g.exprType(expr)
	case *ast.ParenExpr:
		return g.lowerLValue(expr.Inner)
	case *ast.FieldLookupExpr:
		return g.lowerFieldAddr(expr)
	case *ast.TupleFieldLookupExpr:
		recvPtr, recvType := g.lowerLValue(expr.Receiver)
		llType := g.llvmType(recvType)
		reg := g.nextReg()
		g.emitf("  %s = getelementptr inbounds %s, %s* %s, i32 0, i32 %d", reg, llType, llType, recvPtr, expr.Index)
		return reg, g.exprType(e)
	case *ast.PrefixExpr:
		if expr.Op == token.Star {
			return g.lowerExpr(expr.Operand), g.exprType(e)
		}
	}
	g.reportUnsupported(e.Span(), fmt.Sprintf("non-addressable assignment target %T", e))
	return "undef", types.ErrorType
}

// lowerFieldAddr computes receiver.name's address via a byte-offset
// GEP into the receiver's layout, per the language reference's field-offset
// computation. Falls back to an unsupported diagnostic if sema never
// recorded a layout for the receiver's type (a foreign struct or a
// type-checking failure already diagnosed upstream).
func (g *Generator) lowerFieldAddr(expr *ast.FieldLookupExpr) (string, *types.Type) {
	recvType := g.exprType(expr.Receiver)
	decl, ok := g.sema.DeclByID[recvType.DeclID()].(*ast.TypeDecl)
	if !ok {
		g.reportUnsupported(expr.Span(), "field lookup on a type with no resolved declaration")
		return "undef", types.ErrorType
	}
	layout, ok := g.sema.Layouts[decl]
	if !ok {
		g.reportUnsupported(expr.Span(), fmt.Sprintf("field lookup on %q with no computed layout", decl.Name))
		return "undef", types.ErrorType
	}
	var field *FieldLayoutRef
	for i := range layout.Fields {
		if layout.Fields[i].Field.Name == expr.Name {
			field = &FieldLayoutRef{Type: layout.Fields[i].Type, OffsetBytes: layout.Fields[i].OffsetBits / 8}
			break
		}
	}
	if field == nil {
		g.reportUnsupported(expr.Span(), fmt.Sprintf("unknown field %q", expr.Name))
		return "undef", types.ErrorType
	}

	recvPtr := g.lowerExpr(expr.Receiver)
	byteBase := g.nextReg()
	g.emitf("  %s = bitcast %s %s to i8*", byteBase, g.llvmType(recvType), recvPtr)
	fieldByte := g.nextReg()
	g.emitf("  %s = getelementptr inbounds i8, i8* %s, i64 %d", fieldByte, byteBase, field.OffsetBytes)
	fieldPtr := g.nextReg()
	g.emitf("  %s = bitcast i8* %s to %s*", fieldPtr, fieldByte, g.llvmType(field.Type))
	return fieldPtr, field.Type
}

// FieldLayoutRef is the minimal per-field data lowerFieldAddr needs,
// copied out of sema.FieldLayout so this file does not need to import
// sema just to destructure one entry.
type FieldLayoutRef struct {
	Type        *types.Type
	OffsetBytes int
}

func (g *Generator) lowerTupleFieldLookup(expr *ast.TupleFieldLookupExpr) string {
	recvType := g.exprType(expr.Receiver)
	recv := g.lowerExpr(expr.Receiver)
	reg := g.nextReg()
	g.emitf("  %s = extractvalue %s %s, %d", reg, g.llvmType(recvType), recv, expr.Index)
	return reg
}

// primitiveBits gives the storage width sizeof reports for each
// scalar kind LLVM has no runtime "sizeof" instruction for — these are
// always constant-foldable at generation time.
var primitiveBits = map[types.Kind]int{
	types.Int8: 8, types.UInt8: 8,
	types.Int16: 16, types.UInt16: 16,
	types.Int32: 32, types.UInt32: 32,
	types.Int64: 64, types.UInt64: 64,
	types.IntPlatform: 64, types.UIntPlatform: 64,
	types.Bool:  8,
	types.Float: 32, types.Double: 64,
}

// lowerSizeofExpr folds `sizeof(T)` to a constant byte count at
// generation time: a named type's size comes from its computed
// layout, a pointer is always platform-word-sized, and every other
// kind comes from its fixed LLVM scalar width.
func (g *Generator) lowerSizeofExpr(expr *ast.SizeofExpr) string {
	t, ok := g.sema.ResolvedTypes[expr.Operand]
	if !ok {
		g.reportUnsupported(expr.Span(), "sizeof of an unresolved type")
		return "0"
	}
	switch t.Kind() {
	case types.Named:
		decl, ok := g.sema.DeclByID[t.DeclID()].(*ast.TypeDecl)
		if !ok {
			g.reportUnsupported(expr.Span(), "sizeof of a type with no resolved declaration")
			return "0"
		}
		layout, ok := g.sema.Layouts[decl]
		if !ok {
			g.reportUnsupported(expr.Span(), fmt.Sprintf("sizeof %q with no computed layout", decl.Name))
			return "0"
		}
		return fmt.Sprintf("%d", layout.SizeBits/8)
	case types.Pointer:
		return "8"
	default:
		if bits, ok := primitiveBits[t.Kind()]; ok {
			return fmt.Sprintf("%d", bits/8)
		}
		g.reportUnsupported(expr.Span(), fmt.Sprintf("sizeof of kind %v", t.Kind()))
		return "0"
	}
}

func (g *Generator) lowerTernaryExpr(expr *ast.TernaryExpr) string {
	cond := g.lowerExpr(expr.Cond)
	thenLabel := g.nextLabel("tern.then")
	elseLabel := g.nextLabel("tern.else")
	endLabel := g.nextLabel("tern.end")

	g.emitf("  br i1 %s, label %%%s, label %%%s", cond, thenLabel, elseLabel)

	g.emitLabel(thenLabel)
	thenVal := g.lowerExpr(expr.Then)
	thenEnd := g.currentBlock
	g.emitf("  br label %%%s", endLabel)

	g.emitLabel(elseLabel)
	elseVal := g.lowerExpr(expr.Else)
	elseEnd := g.currentBlock
	g.emitf("  br label %%%s", endLabel)

	g.emitLabel(endLabel)
	resultType := g.llvmType(g.exprType(expr))
	reg := g.nextReg()
	g.emitf("  %s = phi %s [ %s, %%%s ], [ %s, %%%s ]", reg, resultType, thenVal, thenEnd, elseVal, elseEnd)
	return reg
}

func (g *Generator) lowerPrefixExpr(expr *ast.PrefixExpr) string {
	switch expr.Op {
	case token.Minus:
		v := g.lowerExpr(expr.Operand)
		t := g.llvmType(g.exprType(expr))
		reg := g.nextReg()
		if t == "float" || t == "double" {
			g.emitf("  %s = fneg %s %s", reg, t, v)
		} else {
			g.emitf("  %s = sub %s 0, %s", reg, t, v)
		}
		return reg
	case token.Bang:
		v := g.lowerExpr(expr.Operand)
		reg := g.nextReg()
		g.emitf("  %s = xor i1 %s, 1", reg, v)
		return reg
	case token.Tilde:
		v := g.lowerExpr(expr.Operand)
		t := g.llvmType(g.exprType(expr))
		reg := g.nextReg()
		g.emitf("  %s = xor %s %s, -1", reg, t, v)
		return reg
	case token.Amp:
		ptr, _ := g.lowerLValue(expr.Operand)
		return ptr
	case token.Star:
		v := g.lowerExpr(expr.Operand)
		return g.loadFrom(v, g.exprType(expr))
	default:
		g.reportUnsupported(expr.Span(), fmt.Sprintf("prefix operator %v", expr.Op))
		return "undef"
	}
}

var infixOpcodes = map[token.Kind]string{
	token.Plus:    "add",
	token.Minus:   "sub",
	token.Star:    "mul",
	token.Slash:   "sdiv",
	token.Percent: "srem",
	token.Amp:     "and",
	token.Pipe:    "or",
	token.Caret:   "xor",
	token.Shl:     "shl",
	token.Shr:     "ashr",
}

var floatInfixOpcodes = map[token.Kind]string{
	token.Plus:  "fadd",
	token.Minus: "fsub",
	token.Star:  "fmul",
	token.Slash: "fdiv",
}

var icmpPredicates = map[token.Kind]string{
	token.Eq: "eq",
	token.Ne: "ne",
	token.Lt: "slt",
	token.Le: "sle",
	token.Gt: "sgt",
	token.Ge: "sge",
}

var fcmpPredicates = map[token.Kind]string{
	token.Eq: "oeq",
	token.Ne: "one",
	token.Lt: "olt",
	token.Le: "ole",
	token.Gt: "ogt",
	token.Ge: "oge",
}

func (g *Generator) lowerInfixExpr(expr *ast.InfixExpr) string {
	switch expr.Op {
	case token.KwAs, token.KwIs:
		return g.lowerCastExpr(expr)
	case token.AndAnd, token.OrOr:
		return g.lowerShortCircuit(expr)
	case token.Assign:
		return g.lowerAssign(expr)
	}
	if arith := assignOpArithmetic(expr.Op); arith != 0 {
		return g.lowerCompoundAssign(expr, arith)
	}

	leftType := g.exprType(expr.Left)
	isFloat := leftType.Kind() == types.Float || leftType.Kind() == types.Double

	left := g.lowerExpr(expr.Left)
	right := g.lowerExpr(expr.Right)
	llType := g.llvmType(leftType)

	if pred, ok := icmpPredicates[expr.Op]; ok && !isFloat {
		reg := g.nextReg()
		g.emitf("  %s = icmp %s %s %s, %s", reg, pred, llType, left, right)
		return reg
	}
	if pred, ok := fcmpPredicates[expr.Op]; ok && isFloat {
		reg := g.nextReg()
		g.emitf("  %s = fcmp %s %s %s, %s", reg, pred, llType, left, right)
		return reg
	}
	if isFloat {
		if op, ok := floatInfixOpcodes[expr.Op]; ok {
			reg := g.nextReg()
			g.emitf("  %s = %s %s %s, %s", reg, op, llType, left, right)
			return reg
		}
	}
	if op, ok := infixOpcodes[expr.Op]; ok {
		reg := g.nextReg()
		g.emitf("  %s = %s %s %s, %s", reg, op, llType, left, right)
		return reg
	}

	g.reportUnsupported(expr.Span(), fmt.Sprintf("infix operator %v", expr.Op))
	return "undef"
}

// lowerShortCircuit lowers `&&`/`||` with real control flow rather
// than a bitwise instruction, so the right operand's side effects
// never run when the left operand alone decides the result.
func (g *Generator) lowerShortCircuit(expr *ast.InfixExpr) string {
	left := g.lowerExpr(expr.Left)
	leftEnd := g.currentBlock
	rhsLabel := g.nextLabel("logic.rhs")
	endLabel := g.nextLabel("logic.end")

	if expr.Op == token.AndAnd {
		g.emitf("  br i1 %s, label %%%s, label %%%s", left, rhsLabel, endLabel)
	} else {
		g.emitf("  br i1 %s, label %%%s, label %%%s", left, endLabel, rhsLabel)
	}

	g.emitLabel(rhsLabel)
	right := g.lowerExpr(expr.Right)
	rhsEnd := g.currentBlock
	g.emitf("  br label %%%s", endLabel)

	g.emitLabel(endLabel)
	reg := g.nextReg()
	g.emitf("  %s = phi i1 [ %s, %%%s ], [ %s, %%%s ]", reg, left, leftEnd, right, rhsEnd)
	return reg
}

func (g *Generator) lowerAssign(expr *ast.InfixExpr) string {
	ptr, elemType := g.lowerLValue(expr.Left)
	val := g.lowerExpr(expr.Right)
	llType := g.llvmType(elemType)

	if g.isIndirect(elemType) {
		old := g.loadFrom(ptr, elemType)
		g.emitf("  call void @trill_retain(i8* %s)", val)
		g.emitf("  store %s %s, %s* %s", llType, val, llType, ptr)
		g.emitf("  call void @trill_release(i8* %s)", old)
	} else {
		g.emitf("  store %s %s, %s* %s", llType, val, llType, ptr)
	}
	return val
}

func (g *Generator) lowerCompoundAssign(expr *ast.InfixExpr, arith token.Kind) string {
	ptr, elemType := g.lowerLValue(expr.Left)
	cur := g.loadFrom(ptr, elemType)
	rhs := g.lowerExpr(expr.Right)
	llType := g.llvmType(elemType)

	isFloat := elemType.Kind() == types.Float || elemType.Kind() == types.Double
	var op string
	if isFloat {
		op = floatInfixOpcodes[arith]
	} else {
		op = infixOpcodes[arith]
	}
	if op == "" {
		g.reportUnsupported(expr.Span(), fmt.Sprintf("compound-assignment operator %v", expr.Op))
		return "undef"
	}

	reg := g.nextReg()
	g.emitf("  %s = %s %s %s, %s", reg, op, llType, cur, rhs)
	g.emitf("  store %s %s, %s* %s", llType, reg, llType, ptr)
	return reg
}

// lowerCastExpr lowers `as`/`is` per the CastKind typecheck recorded:
// a plain bitcast for a representation change, a box for concrete→Any,
// or a runtime-checked unbox trapping through Any.Cast's Go-level
// counterpart at the ABI boundary (trill_fatalError on mismatch).
func (g *Generator) lowerCastExpr(expr *ast.InfixExpr) string {
	operand := g.lowerExpr(expr.Left)
	targetType := g.exprType(expr)

	kind, ok := g.check.Casts[expr]
	if !ok {
		return operand
	}
	switch kind {
	case typecheck.CastBoxAny:
		reg := g.nextReg()
		g.emitf("  %s = call %%Any @trill_box(%s %s)", reg, g.llvmType(g.exprType(expr.Left)), operand)
		return reg
	case typecheck.CastUnboxAny:
		reg := g.nextReg()
		g.emitf("  %s = call %s @trill_unboxChecked(%%Any %s)", reg, g.llvmType(targetType), operand)
		return reg
	default:
		reg := g.nextReg()
		g.emitf("  %s = bitcast %s %s to %s", reg, g.llvmType(g.exprType(expr.Left)), operand, g.llvmType(targetType))
		return reg
	}
}

// lowerCallExpr lowers a direct call resolved by the type checker to a
// concrete ast.FuncDecl. An unresolved callee (ambiguous overload, or
// a first-class function value this generator does not yet model) is
// collected as unsupported.
func (g *Generator) lowerCallExpr(expr *ast.CallExpr) string {
	fn, ok := g.check.Calls[expr]
	if !ok {
		g.reportUnsupported(expr.Span(), "call with unresolved callee")
		return "undef"
	}

	paramTypes, retType := g.splitFuncType(g.sema.DeclTypes[fn], fn)
	var symbol string
	if owner, ok := g.owners[fn]; ok {
		symbol = "@" + mangler.MangleMethod(owner, fn, paramTypes, retType)
	} else {
		symbol = "@" + mangler.MangleFunc(fn, paramTypes, retType)
	}

	var args []string
	for i, a := range expr.Args {
		v := g.lowerExpr(a.Value)
		t := g.paramTypeAt(paramTypes, i)
		args = append(args, fmt.Sprintf("%s %s", g.llvmType(t), v))
	}

	retLLVM := "void"
	if retType != nil {
		retLLVM = g.llvmType(retType)
	}
	if retLLVM == "void" {
		g.emitf("  call void %s(%s)", symbol, joinStructs(args))
		return "undef"
	}
	reg := g.nextReg()
	g.emitf("  %s = call %s %s(%s)", reg, retLLVM, symbol, joinStructs(args))
	return reg
}
