package emitter

import (
	"fmt"
	"strings"

	"github.com/Verdex/code-gen/internal/ast"
)

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 4

type Emitter struct {
	chunk *ast.Chunk
}

func NewEmitter(chunk *ast.Chunk) *Emitter {
	return &Emitter{
		chunk: chunk,
	}
}

// Emit renders every top-level statement at depth 0, each followed by a
// line break.
func (e *Emitter) Emit() string {
	var sb strings.Builder
	for _, stmt := range e.chunk.Stmts {
		sb.WriteString(EmitStmt(stmt, 0))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func indent(depth int) string {
	return strings.Repeat(" ", depth*IndentWidth)
}

func emitForBody(stmts []ast.Stmt, depth int) string {
	var sb strings.Builder
	for _, stmt := range stmts {
		sb.WriteString(EmitStmt(stmt, depth))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func emitForExprList(exprs []ast.Expr, depth int) string {
	texts := make([]string, len(exprs))
	for i, expr := range exprs {
		texts[i] = EmitExpr(expr, depth)
	}

	return strings.Join(texts, ", ")
}

func emitForArgs(args []ast.Expr, depth int) string {
	return fmt.Sprintf("( %s )", emitForExprList(args, depth))
}

// EmitStmt renders one statement with every line indented for depth. The
// result has no trailing line break.
func EmitStmt(stmt ast.Stmt, depth int) string {
	switch stmt.(type) {
	case *ast.LocalVarDeclareStmt:
		return emitForLocalVarDeclareStmt(stmt.(*ast.LocalVarDeclareStmt), depth)
	case *ast.ReturnStmt:
		return emitForReturnStmt(stmt.(*ast.ReturnStmt), depth)
	case *ast.BreakStmt:
		return indent(depth) + "break"
	case *ast.IfStmt:
		return emitForIfStmt(stmt.(*ast.IfStmt), depth)
	case *ast.AssignVarStmt:
		return emitForAssignVarStmt(stmt.(*ast.AssignVarStmt), depth)
	case *ast.AssignListAccessStmt:
		return emitForAssignListAccessStmt(stmt.(*ast.AssignListAccessStmt), depth)
	case *ast.AssignTableAccessStmt:
		return emitForAssignTableAccessStmt(stmt.(*ast.AssignTableAccessStmt), depth)
	case *ast.WhileStmt:
		return emitForWhileStmt(stmt.(*ast.WhileStmt), depth)
	case *ast.RepeatStmt:
		return emitForRepeatStmt(stmt.(*ast.RepeatStmt), depth)
	case *ast.ForStmt:
		return emitForForStmt(stmt.(*ast.ForStmt), depth)
	case *ast.ForIStmt:
		return emitForForIStmt(stmt.(*ast.ForIStmt), depth)
	case *ast.FunCallStmt:
		funCallStmt := stmt.(*ast.FunCallStmt)
		return indent(depth) + EmitExpr(funCallStmt.Fun, depth) + emitForArgs(funCallStmt.Args, depth)
	case *ast.CallSystemFunStmt:
		callStmt := stmt.(*ast.CallSystemFunStmt)
		return indent(depth) + callStmt.Name + emitForArgs(callStmt.Args, depth)
	default:
		panic(fmt.Sprintf("emitter: unknown statement node %T", stmt))
	}
}

func emitForLocalVarDeclareStmt(localStmt *ast.LocalVarDeclareStmt, depth int) string {
	return fmt.Sprintf("%slocal %s", indent(depth), localStmt.Name)
}

func emitForReturnStmt(returnStmt *ast.ReturnStmt, depth int) string {
	if len(returnStmt.Exprs) == 0 {
		return indent(depth) + "return"
	}

	return fmt.Sprintf("%sreturn %s", indent(depth), emitForExprList(returnStmt.Exprs, depth))
}

func emitForIfStmt(ifStmt *ast.IfStmt, depth int) string {
	pad := indent(depth)

	// A branchless if can only run its else body.
	if len(ifStmt.Branches) == 0 {
		return pad + "do\n" + emitForBody(ifStmt.Else, depth+1) + pad + "end"
	}

	var sb strings.Builder
	for i, branch := range ifStmt.Branches {
		keyword := "if"
		if i > 0 {
			keyword = "elseif"
		}

		fmt.Fprintf(&sb, "%s%s %s then\n", pad, keyword, EmitExpr(branch.Test, depth))
		sb.WriteString(emitForBody(branch.Body, depth+1))
	}

	if len(ifStmt.Else) != 0 {
		sb.WriteString(pad + "else\n")
		sb.WriteString(emitForBody(ifStmt.Else, depth+1))
	}

	sb.WriteString(pad + "end")
	return sb.String()
}

func emitForAssignVarStmt(assignStmt *ast.AssignVarStmt, depth int) string {
	return fmt.Sprintf(
		"%s%s = %s",
		indent(depth),
		strings.Join(assignStmt.Vars, ", "),
		emitForExprList(assignStmt.Exprs, depth))
}

func emitForAssignListAccessStmt(assignStmt *ast.AssignListAccessStmt, depth int) string {
	return fmt.Sprintf(
		"%s%s[ %s ] = %s",
		indent(depth),
		EmitExpr(assignStmt.Target, depth),
		EmitExpr(assignStmt.Index, depth),
		EmitExpr(assignStmt.Value, depth))
}

func emitForAssignTableAccessStmt(assignStmt *ast.AssignTableAccessStmt, depth int) string {
	return fmt.Sprintf(
		"%s%s.%s = %s",
		indent(depth),
		EmitExpr(assignStmt.Target, depth),
		assignStmt.Field,
		EmitExpr(assignStmt.Value, depth))
}

func emitForWhileStmt(whileStmt *ast.WhileStmt, depth int) string {
	pad := indent(depth)
	return fmt.Sprintf(
		"%swhile %s do\n%s%send",
		pad,
		EmitExpr(whileStmt.Test, depth),
		emitForBody(whileStmt.Body, depth+1),
		pad)
}

func emitForRepeatStmt(repeatStmt *ast.RepeatStmt, depth int) string {
	pad := indent(depth)
	return fmt.Sprintf(
		"%srepeat\n%s%suntil %s",
		pad,
		emitForBody(repeatStmt.Body, depth+1),
		pad,
		EmitExpr(repeatStmt.Test, depth))
}

func emitForForStmt(forStmt *ast.ForStmt, depth int) string {
	pad := indent(depth)
	return fmt.Sprintf(
		"%sfor %s in %s do\n%s%send",
		pad,
		strings.Join(forStmt.Vars, ", "),
		EmitExpr(forStmt.Iterator, depth),
		emitForBody(forStmt.Body, depth+1),
		pad)
}

func emitForForIStmt(forStmt *ast.ForIStmt, depth int) string {
	step := "1"
	if forStmt.Step != nil {
		step = EmitExpr(forStmt.Step, depth)
	}

	pad := indent(depth)
	return fmt.Sprintf(
		"%sfor %s = %s, %s, %s do\n%s%send",
		pad,
		forStmt.Var,
		EmitExpr(forStmt.Start, depth),
		EmitExpr(forStmt.End, depth),
		step,
		emitForBody(forStmt.Body, depth+1),
		pad)
}

// EmitExpr renders one expression as a single fragment. Only function
// literals span several lines: the first body statement follows the header
// on the same line and the closing end is indented for depth.
func EmitExpr(expr ast.Expr, depth int) string {
	switch expr.(type) {
	case *ast.NilExpr:
		return "nil"
	case *ast.NumberExpr:
		return expr.(*ast.NumberExpr).Value
	case *ast.StringExpr:
		return expr.(*ast.StringExpr).Value
	case *ast.BoolExpr:
		if expr.(*ast.BoolExpr).Value {
			return "true"
		}
		return "false"
	case *ast.VarExpr:
		return expr.(*ast.VarExpr).Name
	case *ast.TableConsExpr:
		return emitForTableConsExpr(expr.(*ast.TableConsExpr), depth)
	case *ast.TableAccessExpr:
		tableAccessExpr := expr.(*ast.TableAccessExpr)
		return EmitExpr(tableAccessExpr.Base, depth) + "." + tableAccessExpr.Field
	case *ast.ListConsExpr:
		return emitForListConsExpr(expr.(*ast.ListConsExpr), depth)
	case *ast.ListAccessExpr:
		listAccessExpr := expr.(*ast.ListAccessExpr)
		return fmt.Sprintf(
			"%s[ %s ]",
			EmitExpr(listAccessExpr.Base, depth),
			EmitExpr(listAccessExpr.Index, depth))
	case *ast.FunCallExpr:
		funCallExpr := expr.(*ast.FunCallExpr)
		return EmitExpr(funCallExpr.Fun, depth) + emitForArgs(funCallExpr.Args, depth)
	case *ast.LambdaExpr:
		return emitForLambdaExpr(expr.(*ast.LambdaExpr), depth)
	case *ast.ParenExpr:
		return fmt.Sprintf("( %s )", EmitExpr(expr.(*ast.ParenExpr).Inner, depth))
	case *ast.CallSystemFunExpr:
		callExpr := expr.(*ast.CallSystemFunExpr)
		return callExpr.Name + emitForArgs(callExpr.Args, depth)
	case *ast.CallBinFunExpr:
		binExpr := expr.(*ast.CallBinFunExpr)
		return fmt.Sprintf(
			"%s %s %s",
			EmitExpr(binExpr.Left, depth),
			binExpr.Op,
			EmitExpr(binExpr.Right, depth))
	case *ast.CallUniFunExpr:
		uniExpr := expr.(*ast.CallUniFunExpr)
		return EmitExpr(uniExpr.Operand, depth) + uniExpr.Op
	default:
		panic(fmt.Sprintf("emitter: unknown expression node %T", expr))
	}
}

func emitForTableConsExpr(tableExpr *ast.TableConsExpr, depth int) string {
	entries := make([]string, len(tableExpr.Entries))
	for i, entry := range tableExpr.Entries {
		entries[i] = fmt.Sprintf("[\"%s\"] = %s", entry.Key, EmitExpr(entry.Value, depth))
	}

	return fmt.Sprintf("{ %s }", strings.Join(entries, "; "))
}

func emitForListConsExpr(listExpr *ast.ListConsExpr, depth int) string {
	return fmt.Sprintf("{ %s }", emitForExprList(listExpr.Elems, depth))
}

func emitForLambdaExpr(lambdaExpr *ast.LambdaExpr, depth int) string {
	return fmt.Sprintf(
		"function (%s) %s%send",
		strings.Join(lambdaExpr.Params, ", "),
		emitForBody(lambdaExpr.Body, depth+1),
		indent(depth))
}
