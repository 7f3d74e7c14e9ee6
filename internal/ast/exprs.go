package ast

type NilExpr struct{}

// NumberExpr and StringExpr hold literal text exactly as it must appear in
// the output, already formatted and escaped.
type NumberExpr struct {
	Value string
}

type StringExpr struct {
	Value string
}

type BoolExpr struct {
	Value bool
}

type VarExpr struct {
	Name string
}

type TableEntry struct {
	Key   string
	Value Expr
}

type TableConsExpr struct {
	Entries []TableEntry
}

type TableAccessExpr struct {
	Base  Expr
	Field string
}

type ListConsExpr struct {
	Elems []Expr
}

type ListAccessExpr struct {
	Base  Expr
	Index Expr
}

type FunCallExpr struct {
	Fun  Expr
	Args []Expr
}

type LambdaExpr struct {
	Params []string
	Body   []Stmt
}

type ParenExpr struct {
	Inner Expr
}

type CallSystemFunExpr struct {
	Name string
	Args []Expr
}

// CallBinFunExpr is an infix operator application. Op is emitted verbatim.
type CallBinFunExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

// CallUniFunExpr is a postfix operator application.
type CallUniFunExpr struct {
	Op      string
	Operand Expr
}

func (*NilExpr) AstNode()           {}
func (*NumberExpr) AstNode()        {}
func (*StringExpr) AstNode()        {}
func (*BoolExpr) AstNode()          {}
func (*VarExpr) AstNode()           {}
func (*TableConsExpr) AstNode()     {}
func (*TableAccessExpr) AstNode()   {}
func (*ListConsExpr) AstNode()      {}
func (*ListAccessExpr) AstNode()    {}
func (*FunCallExpr) AstNode()       {}
func (*LambdaExpr) AstNode()        {}
func (*ParenExpr) AstNode()         {}
func (*CallSystemFunExpr) AstNode() {}
func (*CallBinFunExpr) AstNode()    {}
func (*CallUniFunExpr) AstNode()    {}

func (*NilExpr) exprNode()           {}
func (*NumberExpr) exprNode()        {}
func (*StringExpr) exprNode()        {}
func (*BoolExpr) exprNode()          {}
func (*VarExpr) exprNode()           {}
func (*TableConsExpr) exprNode()     {}
func (*TableAccessExpr) exprNode()   {}
func (*ListConsExpr) exprNode()      {}
func (*ListAccessExpr) exprNode()    {}
func (*FunCallExpr) exprNode()       {}
func (*LambdaExpr) exprNode()        {}
func (*ParenExpr) exprNode()         {}
func (*CallSystemFunExpr) exprNode() {}
func (*CallBinFunExpr) exprNode()    {}
func (*CallUniFunExpr) exprNode()    {}
