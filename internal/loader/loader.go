package loader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Verdex/code-gen/internal/ast"
	"github.com/Verdex/code-gen/internal/compiler_errors"
	"gopkg.in/yaml.v3"
)

type LoaderError struct {
	message string

	fileName string
	line     int
	column   int
}

func (e *LoaderError) GetMessage() string  { return e.message }
func (e *LoaderError) GetFileName() string { return e.fileName }
func (e *LoaderError) GetLine() int        { return e.line }
func (e *LoaderError) GetColumn() int      { return e.column }

// Loader decodes a YAML (or JSON) tree document into ast nodes. Problems are
// reported to the error handler and loading continues, so a single pass
// reports every malformed node. The returned tree is only meaningful when
// the handler has no errors.
type Loader struct {
	fileName string

	eh compiler_errors.ErrorHandler
}

func NewLoader(fileName string, eh compiler_errors.ErrorHandler) *Loader {
	return &Loader{
		fileName: fileName,
		eh:       eh,
	}
}

func (l *Loader) Load(data []byte) *ast.Chunk {
	root, ok := l.parseDocument(data)
	if !ok {
		return &ast.Chunk{}
	}

	// An empty document is an empty program.
	if root == nil {
		return &ast.Chunk{Stmts: make([]ast.Stmt, 0)}
	}

	return &ast.Chunk{Stmts: l.loadStmts(root)}
}

func (l *Loader) LoadStmt(data []byte) ast.Stmt {
	root, ok := l.parseDocument(data)
	if !ok {
		return nil
	}

	if root == nil {
		l.eh.AddError(&LoaderError{message: "expected a statement, got an empty document", fileName: l.fileName})
		return nil
	}

	return l.loadStmt(root)
}

func (l *Loader) parseDocument(data []byte) (*yaml.Node, bool) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		l.eh.AddError(&LoaderError{message: err.Error(), fileName: l.fileName})
		return nil, false
	}

	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, true
	}

	return document.Content[0], true
}

func (l *Loader) errorf(node *yaml.Node, format string, args ...any) {
	l.eh.AddError(&LoaderError{
		message:  fmt.Sprintf(format, args...),
		fileName: l.fileName,
		line:     node.Line,
		column:   node.Column,
	})
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}

// variant splits a one-key mapping into its tag and payload.
func (l *Loader) variant(node *yaml.Node, what string) (string, *yaml.Node, bool) {
	if node.Kind != yaml.MappingNode {
		l.errorf(node, "expected %s, got %s", what, kindName(node))
		return "", nil, false
	}

	if len(node.Content) != 2 {
		keys := make([]string, 0, len(node.Content)/2)
		for i := 0; i < len(node.Content); i += 2 {
			keys = append(keys, node.Content[i].Value)
		}
		l.errorf(node, "%s must have exactly one key, got [%s]", what, strings.Join(keys, ", "))
		return "", nil, false
	}

	return node.Content[0].Value, resolve(node.Content[1]), true
}

type fields map[string]*yaml.Node

// loadFields reads a mapping of named fields. Every required field must be
// present; fields outside required and optional are rejected.
func (l *Loader) loadFields(node *yaml.Node, tag string, required []string, optional ...string) (fields, bool) {
	if node.Kind != yaml.MappingNode {
		l.errorf(node, "%s: expected mapping, got %s", tag, kindName(node))
		return nil, false
	}

	ok := true
	result := make(fields)
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(required, key.Value) && !slices.Contains(optional, key.Value) {
			l.errorf(key, "%s: unknown field %q", tag, key.Value)
			ok = false
			continue
		}
		result[key.Value] = resolve(node.Content[i+1])
	}

	for _, name := range required {
		if _, found := result[name]; !found {
			l.errorf(node, "%s: missing field %q", tag, name)
			ok = false
		}
	}

	return result, ok
}

func (l *Loader) loadName(node *yaml.Node, tag string) string {
	if node.Kind != yaml.ScalarNode {
		l.errorf(node, "%s: expected name, got %s", tag, kindName(node))
		return ""
	}
	if node.ShortTag() == "!!null" {
		l.errorf(node, "%s: expected name, got null", tag)
		return ""
	}
	if node.Value == "" {
		l.errorf(node, "%s: expected name, got empty string", tag)
		return ""
	}
	return node.Value
}

func (l *Loader) loadNames(node *yaml.Node, tag string) []string {
	if node.Kind != yaml.SequenceNode {
		l.errorf(node, "%s: expected sequence of names, got %s", tag, kindName(node))
		return nil
	}

	names := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		names = append(names, l.loadName(resolve(item), tag))
	}
	return names
}
