package irgen

import (
	"fmt"
	"strings"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/mangler"
	"github.com/trill-lang/trillc/types"
)

// generateFreeFunction lowers a top-level (non-member) function.
func (g *Generator) generateFreeFunction(fn *ast.FuncDecl) {
	if fn.Body == nil {
		return // foreign: declared by name at the call site, no body to lower
	}
	paramTypes, retType := g.splitFuncType(g.sema.DeclTypes[fn], fn)
	symbol := mangler.MangleFunc(fn, paramTypes, retType)
	g.generateFunctionBody(symbol, fn.Params, paramTypes, retType, fn.Body)
}

// generateTypeMembers lowers every method, initializer, and
// deinitializer declared (or extension-merged — sema already folded
// those into Members) on td.
func (g *Generator) generateTypeMembers(td *ast.TypeDecl) {
	for _, m := range td.Members {
		switch member := m.(type) {
		case *ast.FuncDecl:
			if member.Body == nil {
				continue
			}
			paramTypes, retType := g.splitFuncType(g.sema.DeclTypes[member], member)
			symbol := mangler.MangleMethod(td, member, paramTypes, retType)
			g.generateFunctionBody(symbol, member.Params, paramTypes, retType, member.Body)
		case *ast.InitDecl:
			paramTypes := g.paramTypesOf(member.Params)
			symbol := mangler.MangleInit(td, member, paramTypes)
			g.generateFunctionBody(symbol, member.Params, paramTypes, nil, member.Body)
		case *ast.DeinitDecl:
			symbol := mangler.MangleDeinit(td)
			g.generateFunctionBody(symbol, nil, nil, nil, member.Body)
		}
	}
}

// splitFuncType reads fn's parameter and return types back out of its
// sema-assigned Function type, falling back to types.ErrorType for any
// parameter sema never resolved (already diagnosed upstream).
func (g *Generator) splitFuncType(funcType *types.Type, fn *ast.FuncDecl) ([]*types.Type, *types.Type) {
	if funcType == nil || funcType.Kind() != types.Function {
		return g.paramTypesOf(fn.Params), types.ErrorType
	}
	return funcType.Params(), funcType.Result()
}

func (g *Generator) paramTypesOf(params []*ast.ParamDecl) []*types.Type {
	out := make([]*types.Type, len(params))
	for i, p := range params {
		if t, ok := g.sema.DeclTypes[p]; ok {
			out[i] = t
			continue
		}
		out[i] = types.ErrorType
	}
	return out
}

// generateFunctionBody emits one `define` block: parameters spilled to
// stack slots so every later reference loads/stores through the same
// alloca a mutable local would, the function's compound statement
// lowered in order, and a guaranteed `ret` on any path that falls off
// the end without one — the language reference requires sema to have already
// rejected a missing return on any path through a non-Void function,
// so a fall-through here only ever belongs to a Void function or one
// that already returned on every real path.
func (g *Generator) generateFunctionBody(symbol string, params []*ast.ParamDecl, paramTypes []*types.Type, retType *types.Type, body *ast.CompoundStmt) {
	g.resetFunction()

	retLLVM := "void"
	if retType != nil {
		retLLVM = g.llvmType(retType)
	}

	var sigParams []string
	for i, p := range params {
		sigParams = append(sigParams, fmt.Sprintf("%s %%arg.%s", g.llvmType(g.paramTypeAt(paramTypes, i)), p.Name))
	}

	g.emitf("define %s @%s(%s) {", retLLVM, symbol, strings.Join(sigParams, ", "))
	g.emitLabel("entry")

	for i, p := range params {
		llType := g.llvmType(g.paramTypeAt(paramTypes, i))
		slot := g.nextReg()
		g.emitf("  %s = alloca %s", slot, llType)
		g.emitf("  store %s %%arg.%s, %s* %s", llType, p.Name, llType, slot)
		g.locals[p] = slot
	}

	if body != nil {
		g.generateCompoundStmt(body)
	}

	if !g.blockTerminated {
		if retLLVM == "void" {
			g.emit("  ret void")
		} else {
			g.emitf("  ret %s undef", retLLVM)
		}
	}
	g.emit("}")
	g.emit("")
}

func (g *Generator) paramTypeAt(paramTypes []*types.Type, i int) *types.Type {
	if i < len(paramTypes) && paramTypes[i] != nil {
		return paramTypes[i]
	}
	return types.ErrorType
}
