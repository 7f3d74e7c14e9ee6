package loader

import (
	"github.com/Verdex/code-gen/internal/ast"
	"gopkg.in/yaml.v3"
)

func (l *Loader) loadExprs(node *yaml.Node, tag string) []ast.Expr {
	node = resolve(node)
	if node.Kind != yaml.SequenceNode {
		l.errorf(node, "%s: expected sequence of expressions, got %s", tag, kindName(node))
		return nil
	}

	exprs := make([]ast.Expr, 0, len(node.Content))
	for _, item := range node.Content {
		exprs = append(exprs, l.loadExpr(item))
	}
	return exprs
}

func (l *Loader) loadExpr(node *yaml.Node) ast.Expr {
	node = resolve(node)
	if node.Kind == yaml.ScalarNode {
		if node.Value == "nil" {
			return &ast.NilExpr{}
		}
		l.errorf(node, "unknown expression %q", node.Value)
		return nil
	}

	tag, payload, ok := l.variant(node, "expression")
	if !ok {
		return nil
	}

	switch tag {
	case "number":
		return &ast.NumberExpr{Value: l.loadName(payload, tag)}
	case "string":
		return &ast.StringExpr{Value: l.loadName(payload, tag)}
	case "bool":
		var value bool
		// Only the YAML 1.2 spellings; Decode alone would also take yes/no/on/off.
		if payload.Kind != yaml.ScalarNode || payload.ShortTag() != "!!bool" || payload.Decode(&value) != nil {
			l.errorf(payload, "bool: expected true or false, got %q", payload.Value)
			return nil
		}
		return &ast.BoolExpr{Value: value}
	case "var":
		return &ast.VarExpr{Name: l.loadName(payload, tag)}
	case "table":
		return l.loadTableConsExpr(payload)
	case "field":
		f, ok := l.loadFields(payload, tag, []string{"base", "name"})
		if !ok {
			return nil
		}
		return &ast.TableAccessExpr{
			Base:  l.loadExpr(f["base"]),
			Field: l.loadName(f["name"], tag),
		}
	case "list":
		return &ast.ListConsExpr{Elems: l.loadExprs(payload, tag)}
	case "index":
		f, ok := l.loadFields(payload, tag, []string{"base", "index"})
		if !ok {
			return nil
		}
		return &ast.ListAccessExpr{
			Base:  l.loadExpr(f["base"]),
			Index: l.loadExpr(f["index"]),
		}
	case "call":
		f, ok := l.loadFields(payload, tag, []string{"fun", "args"})
		if !ok {
			return nil
		}
		return &ast.FunCallExpr{
			Fun:  l.loadExpr(f["fun"]),
			Args: l.loadExprs(f["args"], tag),
		}
	case "lambda":
		f, ok := l.loadFields(payload, tag, []string{"params", "body"})
		if !ok {
			return nil
		}
		return &ast.LambdaExpr{
			Params: l.loadNames(f["params"], tag),
			Body:   l.loadStmts(f["body"]),
		}
	case "paren":
		return &ast.ParenExpr{Inner: l.loadExpr(payload)}
	case "syscall":
		f, ok := l.loadFields(payload, tag, []string{"name", "args"})
		if !ok {
			return nil
		}
		return &ast.CallSystemFunExpr{
			Name: l.loadName(f["name"], tag),
			Args: l.loadExprs(f["args"], tag),
		}
	case "binop":
		f, ok := l.loadFields(payload, tag, []string{"op", "left", "right"})
		if !ok {
			return nil
		}
		return &ast.CallBinFunExpr{
			Op:    l.loadName(f["op"], tag),
			Left:  l.loadExpr(f["left"]),
			Right: l.loadExpr(f["right"]),
		}
	case "unop":
		f, ok := l.loadFields(payload, tag, []string{"op", "operand"})
		if !ok {
			return nil
		}
		return &ast.CallUniFunExpr{
			Op:      l.loadName(f["op"], tag),
			Operand: l.loadExpr(f["operand"]),
		}
	default:
		l.errorf(node, "unknown expression %q", tag)
		return nil
	}
}

func (l *Loader) loadTableConsExpr(node *yaml.Node) ast.Expr {
	if node.Kind != yaml.SequenceNode {
		l.errorf(node, "table: expected sequence of entries, got %s", kindName(node))
		return nil
	}

	entries := make([]ast.TableEntry, 0, len(node.Content))
	for _, item := range node.Content {
		f, ok := l.loadFields(resolve(item), "table entry", []string{"key", "value"})
		if !ok {
			continue
		}
		entries = append(entries, ast.TableEntry{
			Key:   l.loadName(f["key"], "table entry"),
			Value: l.loadExpr(f["value"]),
		})
	}

	return &ast.TableConsExpr{Entries: entries}
}
