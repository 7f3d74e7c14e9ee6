package ast

type LocalVarDeclareStmt struct {
	Name string
}

type ReturnStmt struct {
	Exprs []Expr
}

type BreakStmt struct{}

type IfBranch struct {
	Test Expr
	Body []Stmt
}

// IfStmt renders its first branch as if, the rest as elseif.
type IfStmt struct {
	Branches []IfBranch
	Else     []Stmt
}

type AssignVarStmt struct {
	Vars  []string
	Exprs []Expr
}

type AssignListAccessStmt struct {
	Target Expr
	Index  Expr
	Value  Expr
}

type AssignTableAccessStmt struct {
	Target Expr
	Field  string
	Value  Expr
}

type WhileStmt struct {
	Test Expr
	Body []Stmt
}

type RepeatStmt struct {
	Test Expr
	Body []Stmt
}

type ForStmt struct {
	Vars     []string
	Iterator Expr
	Body     []Stmt
}

// ForIStmt is the numeric for loop. A nil Step means the default step of 1.
type ForIStmt struct {
	Var   string
	Start Expr
	End   Expr
	Step  Expr
	Body  []Stmt
}

type FunCallStmt struct {
	Fun  Expr
	Args []Expr
}

type CallSystemFunStmt struct {
	Name string
	Args []Expr
}

func (*LocalVarDeclareStmt) AstNode()   {}
func (*ReturnStmt) AstNode()            {}
func (*BreakStmt) AstNode()             {}
func (*IfStmt) AstNode()                {}
func (*AssignVarStmt) AstNode()         {}
func (*AssignListAccessStmt) AstNode()  {}
func (*AssignTableAccessStmt) AstNode() {}
func (*WhileStmt) AstNode()             {}
func (*RepeatStmt) AstNode()            {}
func (*ForStmt) AstNode()               {}
func (*ForIStmt) AstNode()              {}
func (*FunCallStmt) AstNode()           {}
func (*CallSystemFunStmt) AstNode()     {}

func (*LocalVarDeclareStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()            {}
func (*BreakStmt) stmtNode()             {}
func (*IfStmt) stmtNode()                {}
func (*AssignVarStmt) stmtNode()         {}
func (*AssignListAccessStmt) stmtNode()  {}
func (*AssignTableAccessStmt) stmtNode() {}
func (*WhileStmt) stmtNode()             {}
func (*RepeatStmt) stmtNode()            {}
func (*ForStmt) stmtNode()               {}
func (*ForIStmt) stmtNode()              {}
func (*FunCallStmt) stmtNode()           {}
func (*CallSystemFunStmt) stmtNode()     {}
