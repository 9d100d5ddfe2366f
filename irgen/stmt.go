package irgen

import (
	"fmt"

	"github.com/trill-lang/trillc/ast"
	"github.com/trill-lang/trillc/token"
	"github.com/trill-lang/trillc/types"
)

// generateCompoundStmt lowers every statement of block in order.
// Lowering stops the instant a statement terminates the current basic
// block (a return, or a break/continue that branched away), matching
// LLVM's rule that no instruction may follow a block's terminator —
// the remaining statements are unreachable source, which sema would
// already have been free to warn about had the language reference asked for that
// diagnostic (it does not).
func (g *Generator) generateCompoundStmt(block *ast.CompoundStmt) {
	for _, stmt := range block.Stmts {
		if g.blockTerminated {
			return
		}
		g.generateStmt(stmt)
	}
}

func (g *Generator) generateStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.CompoundStmt:
		g.generateCompoundStmt(s)
	case *ast.IfStmt:
		g.generateIfStmt(s)
	case *ast.WhileStmt:
		g.generateWhileStmt(s)
	case *ast.ForStmt:
		g.generateForStmt(s)
	case *ast.ReturnStmt:
		g.generateReturnStmt(s)
	case *ast.ExprStmt:
		g.lowerExpr(s.Value)
	case *ast.DeclStmt:
		g.generateDeclStmt(s)
	case *ast.BreakStmt:
		g.generateBreakStmt(s)
	case *ast.ContinueStmt:
		g.generateContinueStmt(s)
	case *ast.PoundDiagnosticStmt:
		// Lowered to a diagnostic during sema (the language reference); by the
		// time irgen runs, a `#error` has already halted the pipeline
		// and a `#warning` has nothing left to emit.
	default:
		g.reportUnsupported(stmt.Span(), fmt.Sprintf("statement %T", stmt))
	}
}

func (g *Generator) generateDeclStmt(s *ast.DeclStmt) {
	v, ok := s.Decl.(*ast.VarDecl)
	if !ok {
		g.reportUnsupported(s.Span(), fmt.Sprintf("local declaration %T", s.Decl))
		return
	}
	t := g.sema.DeclTypes[v]
	if t == nil {
		t = g.exprTypeOrError(v.Init)
	}
	llType := g.llvmType(t)
	slot := g.nextReg()
	g.emitf("  %s = alloca %s", slot, llType)
	g.locals[v] = slot

	if v.Init != nil {
		val := g.lowerExpr(v.Init)
		g.emitf("  store %s %s, %s* %s", llType, val, llType, slot)
		if g.isIndirect(t) {
			g.emitf("  call void @trill_retain(i8* %s)", val)
		}
	}
}

func (g *Generator) generateIfStmt(s *ast.IfStmt) {
	cond := g.lowerExpr(s.Cond)
	thenLabel := g.nextLabel("if.then")
	endLabel := g.nextLabel("if.end")
	elseLabel := endLabel
	if s.Else != nil {
		elseLabel = g.nextLabel("if.else")
	}

	g.emitf("  br i1 %s, label %%%s, label %%%s", cond, thenLabel, elseLabel)

	g.emitLabel(thenLabel)
	g.generateCompoundStmt(s.Then)
	if !g.blockTerminated {
		g.emitf("  br label %%%s", endLabel)
	}

	if s.Else != nil {
		g.emitLabel(elseLabel)
		g.generateStmt(s.Else)
		if !g.blockTerminated {
			g.emitf("  br label %%%s", endLabel)
		}
	}

	g.emitLabel(endLabel)
}

func (g *Generator) generateWhileStmt(s *ast.WhileStmt) {
	condLabel := g.nextLabel("while.cond")
	bodyLabel := g.nextLabel("while.body")
	endLabel := g.nextLabel("while.end")

	g.emitf("  br label %%%s", condLabel)
	g.emitLabel(condLabel)
	cond := g.lowerExpr(s.Cond)
	g.emitf("  br i1 %s, label %%%s, label %%%s", cond, bodyLabel, endLabel)

	g.emitLabel(bodyLabel)
	g.loopExits = append(g.loopExits, loopLabels{continueLabel: condLabel, breakLabel: endLabel})
	g.generateCompoundStmt(s.Body)
	g.loopExits = g.loopExits[:len(g.loopExits)-1]
	if !g.blockTerminated {
		g.emitf("  br label %%%s", condLabel)
	}

	g.emitLabel(endLabel)
}

func (g *Generator) generateForStmt(s *ast.ForStmt) {
	if s.Init != nil {
		g.generateStmt(s.Init)
	}

	condLabel := g.nextLabel("for.cond")
	bodyLabel := g.nextLabel("for.body")
	incLabel := g.nextLabel("for.inc")
	endLabel := g.nextLabel("for.end")

	g.emitf("  br label %%%s", condLabel)
	g.emitLabel(condLabel)
	if s.Cond != nil {
		cond := g.lowerExpr(s.Cond)
		g.emitf("  br i1 %s, label %%%s, label %%%s", cond, bodyLabel, endLabel)
	} else {
		g.emitf("  br label %%%s", bodyLabel)
	}

	g.emitLabel(bodyLabel)
	g.loopExits = append(g.loopExits, loopLabels{continueLabel: incLabel, breakLabel: endLabel})
	g.generateCompoundStmt(s.Body)
	g.loopExits = g.loopExits[:len(g.loopExits)-1]
	if !g.blockTerminated {
		g.emitf("  br label %%%s", incLabel)
	}

	g.emitLabel(incLabel)
	if s.Increment != nil {
		g.generateStmt(s.Increment)
	}
	if !g.blockTerminated {
		g.emitf("  br label %%%s", condLabel)
	}

	g.emitLabel(endLabel)
}

func (g *Generator) generateReturnStmt(s *ast.ReturnStmt) {
	if s.Value == nil {
		g.emit("  ret void")
	} else {
		val := g.lowerExpr(s.Value)
		t := g.exprTypeOrError(s.Value)
		g.emitf("  ret %s %s", g.llvmType(t), val)
	}
	g.blockTerminated = true
}

func (g *Generator) generateBreakStmt(s *ast.BreakStmt) {
	if len(g.loopExits) == 0 {
		g.reportUnsupported(s.Span(), "break outside a loop")
		return
	}
	target := g.loopExits[len(g.loopExits)-1]
	g.emitf("  br label %%%s", target.breakLabel)
	g.blockTerminated = true
}

func (g *Generator) generateContinueStmt(s *ast.ContinueStmt) {
	if len(g.loopExits) == 0 {
		g.reportUnsupported(s.Span(), "continue outside a loop")
		return
	}
	target := g.loopExits[len(g.loopExits)-1]
	g.emitf("  br label %%%s", target.continueLabel)
	g.blockTerminated = true
}

func (g *Generator) exprTypeOrError(e ast.Expr) *types.Type {
	if e == nil {
		return types.ErrorType
	}
	return g.exprType(e)
}

// assignOpArithmetic maps a compound-assignment operator token to the
// plain binary operator it performs before storing back, or 0 if op is
// not a compound-assignment kind.
func assignOpArithmetic(op token.Kind) token.Kind {
	switch op {
	case token.PlusAssign:
		return token.Plus
	case token.MinusAssign:
		return token.Minus
	case token.StarAssign:
		return token.Star
	case token.SlashAssign:
		return token.Slash
	case token.PercentAssign:
		return token.Percent
	case token.AmpAssign:
		return token.Amp
	case token.PipeAssign:
		return token.Pipe
	case token.CaretAssign:
		return token.Caret
	case token.ShlAssign:
		return token.Shl
	case token.ShrAssign:
		return token.Shr
	default:
		return 0
	}
}
