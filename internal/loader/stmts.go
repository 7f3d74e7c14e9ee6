package loader

import (
	"github.com/Verdex/code-gen/internal/ast"
	"gopkg.in/yaml.v3"
)

func (l *Loader) loadStmts(node *yaml.Node) []ast.Stmt {
	node = resolve(node)
	if node.Kind != yaml.SequenceNode {
		l.errorf(node, "expected sequence of statements, got %s", kindName(node))
		return nil
	}

	stmts := make([]ast.Stmt, 0, len(node.Content))
	for _, item := range node.Content {
		stmts = append(stmts, l.loadStmt(item))
	}
	return stmts
}

func (l *Loader) loadStmt(node *yaml.Node) ast.Stmt {
	node = resolve(node)
	if node.Kind == yaml.ScalarNode {
		if node.Value == "break" {
			return &ast.BreakStmt{}
		}
		l.errorf(node, "unknown statement %q", node.Value)
		return nil
	}

	tag, payload, ok := l.variant(node, "statement")
	if !ok {
		return nil
	}

	switch tag {
	case "local":
		return &ast.LocalVarDeclareStmt{Name: l.loadName(payload, tag)}
	case "return":
		return &ast.ReturnStmt{Exprs: l.loadExprs(payload, tag)}
	case "if":
		return l.loadIfStmt(payload)
	case "assign":
		f, ok := l.loadFields(payload, tag, []string{"vars", "exprs"})
		if !ok {
			return nil
		}
		return &ast.AssignVarStmt{
			Vars:  l.loadNames(f["vars"], tag),
			Exprs: l.loadExprs(f["exprs"], tag),
		}
	case "assign_index":
		f, ok := l.loadFields(payload, tag, []string{"target", "index", "value"})
		if !ok {
			return nil
		}
		return &ast.AssignListAccessStmt{
			Target: l.loadExpr(f["target"]),
			Index:  l.loadExpr(f["index"]),
			Value:  l.loadExpr(f["value"]),
		}
	case "assign_field":
		f, ok := l.loadFields(payload, tag, []string{"target", "field", "value"})
		if !ok {
			return nil
		}
		return &ast.AssignTableAccessStmt{
			Target: l.loadExpr(f["target"]),
			Field:  l.loadName(f["field"], tag),
			Value:  l.loadExpr(f["value"]),
		}
	case "while":
		f, ok := l.loadFields(payload, tag, []string{"test", "body"})
		if !ok {
			return nil
		}
		return &ast.WhileStmt{
			Test: l.loadExpr(f["test"]),
			Body: l.loadStmts(f["body"]),
		}
	case "repeat":
		f, ok := l.loadFields(payload, tag, []string{"test", "body"})
		if !ok {
			return nil
		}
		return &ast.RepeatStmt{
			Test: l.loadExpr(f["test"]),
			Body: l.loadStmts(f["body"]),
		}
	case "for":
		f, ok := l.loadFields(payload, tag, []string{"vars", "iter", "body"})
		if !ok {
			return nil
		}
		return &ast.ForStmt{
			Vars:     l.loadNames(f["vars"], tag),
			Iterator: l.loadExpr(f["iter"]),
			Body:     l.loadStmts(f["body"]),
		}
	case "fori":
		return l.loadForIStmt(payload)
	case "call":
		f, ok := l.loadFields(payload, tag, []string{"fun", "args"})
		if !ok {
			return nil
		}
		return &ast.FunCallStmt{
			Fun:  l.loadExpr(f["fun"]),
			Args: l.loadExprs(f["args"], tag),
		}
	case "syscall":
		f, ok := l.loadFields(payload, tag, []string{"name", "args"})
		if !ok {
			return nil
		}
		return &ast.CallSystemFunStmt{
			Name: l.loadName(f["name"], tag),
			Args: l.loadExprs(f["args"], tag),
		}
	default:
		l.errorf(node, "unknown statement %q", tag)
		return nil
	}
}

func (l *Loader) loadIfStmt(node *yaml.Node) ast.Stmt {
	f, ok := l.loadFields(node, "if", []string{"branches"}, "else")
	if !ok {
		return nil
	}

	branchesNode := f["branches"]
	if branchesNode.Kind != yaml.SequenceNode {
		l.errorf(branchesNode, "if: expected sequence of branches, got %s", kindName(branchesNode))
		return nil
	}

	branches := make([]ast.IfBranch, 0, len(branchesNode.Content))
	for _, item := range branchesNode.Content {
		bf, ok := l.loadFields(resolve(item), "if branch", []string{"test", "body"})
		if !ok {
			continue
		}
		branches = append(branches, ast.IfBranch{
			Test: l.loadExpr(bf["test"]),
			Body: l.loadStmts(bf["body"]),
		})
	}

	elseBody := make([]ast.Stmt, 0)
	if elseNode, found := f["else"]; found {
		elseBody = l.loadStmts(elseNode)
	}

	return &ast.IfStmt{
		Branches: branches,
		Else:     elseBody,
	}
}

func (l *Loader) loadForIStmt(node *yaml.Node) ast.Stmt {
	f, ok := l.loadFields(node, "fori", []string{"var", "start", "end", "body"}, "step")
	if !ok {
		return nil
	}

	forStmt := &ast.ForIStmt{
		Var:   l.loadName(f["var"], "fori"),
		Start: l.loadExpr(f["start"]),
		End:   l.loadExpr(f["end"]),
		Body:  l.loadStmts(f["body"]),
	}
	if stepNode, found := f["step"]; found {
		forStmt.Step = l.loadExpr(stepNode)
	}

	return forStmt
}
