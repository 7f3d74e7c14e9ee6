package ast

type AstNode interface {
	AstNode()
}

// Chunk is a whole Lua program: the top-level statement sequence.
type Chunk struct {
	Stmts []Stmt
}

type Stmt interface {
	AstNode
	stmtNode()
}

type Expr interface {
	AstNode
	exprNode()
}
