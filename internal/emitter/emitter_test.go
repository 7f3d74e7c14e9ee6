package emitter

import (
	"strings"
	"testing"

	"github.com/Verdex/code-gen/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(value string) ast.Expr { return &ast.NumberExpr{Value: value} }
func ident(name string) ast.Expr { return &ast.VarExpr{Name: name} }

func breaks(n int) []ast.Stmt {
	stmts := make([]ast.Stmt, n)
	for i := range stmts {
		stmts[i] = &ast.BreakStmt{}
	}
	return stmts
}

func emit(stmts ...ast.Stmt) string {
	return NewEmitter(&ast.Chunk{Stmts: stmts}).Emit()
}

func TestIf(t *testing.T) {
	t.Run("single_branch", func(t *testing.T) {
		output := emit(&ast.IfStmt{
			Branches: []ast.IfBranch{{Test: num("0"), Body: breaks(2)}},
		})

		assert.Equal(t, "if 0 then\n    break\n    break\nend\n", output)
	})

	t.Run("elseif", func(t *testing.T) {
		output := emit(&ast.IfStmt{
			Branches: []ast.IfBranch{
				{Test: num("0"), Body: breaks(2)},
				{Test: num("1"), Body: breaks(2)},
			},
		})

		assert.Equal(t, "if 0 then\n    break\n    break\nelseif 1 then\n    break\n    break\nend\n", output)
	})

	t.Run("elseif_elseif_else", func(t *testing.T) {
		output := emit(&ast.IfStmt{
			Branches: []ast.IfBranch{
				{Test: num("0"), Body: breaks(2)},
				{Test: num("1"), Body: breaks(2)},
				{Test: num("2"), Body: breaks(2)},
			},
			Else: breaks(2),
		})

		expected := `if 0 then
    break
    break
elseif 1 then
    break
    break
elseif 2 then
    break
    break
else
    break
    break
end
`
		assert.Equal(t, expected, output)
	})

	t.Run("else", func(t *testing.T) {
		output := emit(&ast.IfStmt{
			Branches: []ast.IfBranch{{Test: num("0"), Body: breaks(2)}},
			Else:     breaks(2),
		})

		assert.Equal(t, "if 0 then\n    break\n    break\nelse\n    break\n    break\nend\n", output)
	})

	t.Run("nested", func(t *testing.T) {
		output := emit(&ast.IfStmt{
			Branches: []ast.IfBranch{{
				Test: num("0"),
				Body: []ast.Stmt{&ast.IfStmt{
					Branches: []ast.IfBranch{{Test: num("1"), Body: breaks(2)}},
				}},
			}},
		})

		assert.Equal(t, "if 0 then\n    if 1 then\n        break\n        break\n    end\nend\n", output)
	})

	t.Run("empty_else_is_omitted", func(t *testing.T) {
		output := emit(&ast.IfStmt{
			Branches: []ast.IfBranch{{Test: ident("x"), Body: breaks(1)}},
			Else:     []ast.Stmt{},
		})

		assert.NotContains(t, output, "else")
	})

	t.Run("empty_branch_body", func(t *testing.T) {
		output := emit(&ast.IfStmt{
			Branches: []ast.IfBranch{{Test: ident("x")}},
		})

		assert.Equal(t, "if x then\nend\n", output)
	})

	t.Run("no_branches", func(t *testing.T) {
		output := emit(&ast.IfStmt{Else: breaks(1)})

		assert.Equal(t, "do\n    break\nend\n", output)
	})
}

func TestLoops(t *testing.T) {
	t.Run("while", func(t *testing.T) {
		output := emit(&ast.WhileStmt{Test: &ast.BoolExpr{Value: true}, Body: breaks(1)})

		assert.Equal(t, "while true do\n    break\nend\n", output)
	})

	t.Run("repeat", func(t *testing.T) {
		output := emit(&ast.RepeatStmt{
			Test: &ast.CallBinFunExpr{Op: ">", Left: ident("i"), Right: num("10")},
			Body: []ast.Stmt{&ast.AssignVarStmt{
				Vars:  []string{"i"},
				Exprs: []ast.Expr{&ast.CallBinFunExpr{Op: "+", Left: ident("i"), Right: num("1")}},
			}},
		})

		assert.Equal(t, "repeat\n    i = i + 1\nuntil i > 10\n", output)
	})

	t.Run("for_in", func(t *testing.T) {
		output := emit(&ast.ForStmt{
			Vars:     []string{"k", "v"},
			Iterator: &ast.CallSystemFunExpr{Name: "pairs", Args: []ast.Expr{ident("t")}},
			Body: []ast.Stmt{&ast.CallSystemFunStmt{
				Name: "print",
				Args: []ast.Expr{ident("k"), ident("v")},
			}},
		})

		assert.Equal(t, "for k, v in pairs( t ) do\n    print( k, v )\nend\n", output)
	})

	t.Run("fori_default_step", func(t *testing.T) {
		output := emit(&ast.ForIStmt{Var: "i", Start: num("1"), End: num("10"), Body: breaks(1)})

		assert.Equal(t, "for i = 1, 10, 1 do\n    break\nend\n", output)
	})

	t.Run("fori_explicit_step", func(t *testing.T) {
		output := emit(&ast.ForIStmt{
			Var:   "i",
			Start: num("10"),
			End:   num("1"),
			Step:  num("-1"),
			Body:  breaks(1),
		})

		assert.Equal(t, "for i = 10, 1, -1 do\n    break\nend\n", output)
	})

	t.Run("nested_loops", func(t *testing.T) {
		output := emit(&ast.WhileStmt{
			Test: ident("a"),
			Body: []ast.Stmt{&ast.RepeatStmt{
				Test: ident("b"),
				Body: []ast.Stmt{&ast.ForIStmt{Var: "j", Start: num("1"), End: ident("n"), Body: breaks(1)}},
			}},
		})

		expected := `while a do
    repeat
        for j = 1, n, 1 do
            break
        end
    until b
end
`
		assert.Equal(t, expected, output)
	})
}

func TestSimpleStmts(t *testing.T) {
	tests := []struct {
		name     string
		stmt     ast.Stmt
		expected string
	}{
		{"local", &ast.LocalVarDeclareStmt{Name: "x"}, "local x"},
		{"break", &ast.BreakStmt{}, "break"},
		{"return_none", &ast.ReturnStmt{}, "return"},
		{"return_many", &ast.ReturnStmt{Exprs: []ast.Expr{ident("a"), &ast.NilExpr{}}}, "return a, nil"},
		{
			"assign_multi",
			&ast.AssignVarStmt{Vars: []string{"a", "b"}, Exprs: []ast.Expr{num("1"), num("2")}},
			"a, b = 1, 2",
		},
		{
			"assign_list_access",
			&ast.AssignListAccessStmt{Target: ident("xs"), Index: num("1"), Value: &ast.StringExpr{Value: `"a"`}},
			`xs[ 1 ] = "a"`,
		},
		{
			"assign_table_access",
			&ast.AssignTableAccessStmt{
				Target: &ast.TableAccessExpr{Base: ident("obj"), Field: "inner"},
				Field:  "count",
				Value:  num("0"),
			},
			"obj.inner.count = 0",
		},
		{
			"fun_call",
			&ast.FunCallStmt{Fun: &ast.TableAccessExpr{Base: ident("io"), Field: "write"}, Args: []ast.Expr{num("1")}},
			"io.write( 1 )",
		},
		{"fun_call_no_args", &ast.FunCallStmt{Fun: ident("f")}, "f(  )"},
		{"call_system_fun_no_args", &ast.CallSystemFunStmt{Name: "print"}, "print(  )"},
		{
			"call_system_fun",
			&ast.CallSystemFunStmt{Name: "print", Args: []ast.Expr{&ast.StringExpr{Value: `"hi"`}, num("2")}},
			`print( "hi", 2 )`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EmitStmt(tt.stmt, 0))
			assert.Equal(t, "        "+tt.expected, EmitStmt(tt.stmt, 2))
		})
	}
}

func TestExprs(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{"nil", &ast.NilExpr{}, "nil"},
		{"true", &ast.BoolExpr{Value: true}, "true"},
		{"false", &ast.BoolExpr{Value: false}, "false"},
		{"number_verbatim", num("0x1F"), "0x1F"},
		{"string_verbatim", &ast.StringExpr{Value: `'it\'s'`}, `'it\'s'`},
		{"var", ident("foo"), "foo"},
		{
			"table_cons",
			&ast.TableConsExpr{Entries: []ast.TableEntry{
				{Key: "a", Value: num("1")},
				{Key: "b", Value: &ast.StringExpr{Value: `"x"`}},
			}},
			`{ ["a"] = 1; ["b"] = "x" }`,
		},
		{"table_cons_empty", &ast.TableConsExpr{}, "{  }"},
		{"table_access", &ast.TableAccessExpr{Base: ident("t"), Field: "x"}, "t.x"},
		{"list_cons", &ast.ListConsExpr{Elems: []ast.Expr{num("1"), num("2"), num("3")}}, "{ 1, 2, 3 }"},
		{"list_cons_empty", &ast.ListConsExpr{}, "{  }"},
		{"list_access", &ast.ListAccessExpr{Base: ident("xs"), Index: ident("i")}, "xs[ i ]"},
		{
			"fun_call",
			&ast.FunCallExpr{Fun: ident("f"), Args: []ast.Expr{ident("a"), ident("b")}},
			"f( a, b )",
		},
		{
			"fun_call_chained",
			&ast.FunCallExpr{Fun: &ast.FunCallExpr{Fun: ident("f")}, Args: []ast.Expr{num("1")}},
			"f(  )( 1 )",
		},
		{"paren", &ast.ParenExpr{Inner: ident("a")}, "( a )"},
		{
			"call_system_fun",
			&ast.CallSystemFunExpr{Name: "tostring", Args: []ast.Expr{num("5")}},
			"tostring( 5 )",
		},
		{
			"bin_fun_no_auto_parens",
			&ast.CallBinFunExpr{
				Op:    "*",
				Left:  &ast.CallBinFunExpr{Op: "+", Left: ident("a"), Right: ident("b")},
				Right: ident("c"),
			},
			"a + b * c",
		},
		{
			"bin_fun_explicit_parens",
			&ast.CallBinFunExpr{
				Op:    "*",
				Left:  &ast.ParenExpr{Inner: &ast.CallBinFunExpr{Op: "+", Left: ident("a"), Right: ident("b")}},
				Right: ident("c"),
			},
			"( a + b ) * c",
		},
		{"uni_fun_postfix", &ast.CallUniFunExpr{Op: "#", Operand: ident("xs")}, "xs#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EmitExpr(tt.expr, 0))
			assert.Equal(t, tt.expected, EmitExpr(tt.expr, 3))
		})
	}
}

func TestLambda(t *testing.T) {
	identity := &ast.LambdaExpr{
		Params: []string{"x"},
		Body:   []ast.Stmt{&ast.ReturnStmt{Exprs: []ast.Expr{ident("x")}}},
	}

	t.Run("expression", func(t *testing.T) {
		assert.Equal(t, "function (x)     return x\nend", EmitExpr(identity, 0))
		assert.Equal(t, "function (x)         return x\n    end", EmitExpr(identity, 1))
	})

	t.Run("no_params_empty_body", func(t *testing.T) {
		assert.Equal(t, "function () end", EmitExpr(&ast.LambdaExpr{}, 0))
	})

	t.Run("assigned_inside_block", func(t *testing.T) {
		output := emit(&ast.WhileStmt{
			Test: ident("running"),
			Body: []ast.Stmt{&ast.AssignVarStmt{
				Vars: []string{"f"},
				Exprs: []ast.Expr{&ast.LambdaExpr{
					Params: []string{"a", "b"},
					Body: []ast.Stmt{&ast.ReturnStmt{Exprs: []ast.Expr{
						&ast.CallBinFunExpr{Op: "+", Left: ident("a"), Right: ident("b")},
					}}},
				}},
			}},
		})

		expected := `while running do
    f = function (a, b)         return a + b
    end
end
`
		assert.Equal(t, expected, output)
	})

	t.Run("passed_as_argument", func(t *testing.T) {
		output := emit(&ast.CallSystemFunStmt{
			Name: "pcall",
			Args: []ast.Expr{&ast.LambdaExpr{Body: breaks(1)}},
		})

		assert.Equal(t, "pcall( function ()     break\nend )\n", output)
	})
}

func TestEmitProgram(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", emit())
	})

	t.Run("one_line_per_statement", func(t *testing.T) {
		output := emit(
			&ast.LocalVarDeclareStmt{Name: "x"},
			&ast.AssignVarStmt{Vars: []string{"x"}, Exprs: []ast.Expr{num("1")}},
			&ast.CallSystemFunStmt{Name: "print", Args: []ast.Expr{ident("x")}},
		)

		assert.Equal(t, "local x\nx = 1\nprint( x )\n", output)
		assert.NotContains(t, output, "\n\n")
	})
}

func sampleChunk() *ast.Chunk {
	return &ast.Chunk{Stmts: []ast.Stmt{
		&ast.LocalVarDeclareStmt{Name: "total"},
		&ast.AssignVarStmt{Vars: []string{"total"}, Exprs: []ast.Expr{num("0")}},
		&ast.ForStmt{
			Vars:     []string{"_", "v"},
			Iterator: &ast.CallSystemFunExpr{Name: "ipairs", Args: []ast.Expr{ident("xs")}},
			Body: []ast.Stmt{
				&ast.IfStmt{
					Branches: []ast.IfBranch{
						{
							Test: &ast.CallBinFunExpr{Op: ">", Left: ident("v"), Right: num("0")},
							Body: []ast.Stmt{&ast.AssignVarStmt{
								Vars:  []string{"total"},
								Exprs: []ast.Expr{&ast.CallBinFunExpr{Op: "+", Left: ident("total"), Right: ident("v")}},
							}},
						},
						{
							Test: &ast.CallBinFunExpr{Op: "==", Left: ident("v"), Right: num("0")},
							Body: []ast.Stmt{&ast.WhileStmt{Test: ident("busy"), Body: breaks(1)}},
						},
					},
					Else: []ast.Stmt{&ast.RepeatStmt{Test: ident("done"), Body: breaks(2)}},
				},
			},
		},
		&ast.ReturnStmt{Exprs: []ast.Expr{ident("total")}},
	}}
}

func TestDeterministic(t *testing.T) {
	chunk := sampleChunk()
	e := NewEmitter(chunk)

	first := e.Emit()
	assert.Equal(t, first, e.Emit())
	assert.Equal(t, first, NewEmitter(sampleChunk()).Emit())
}

func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

func TestIndentation(t *testing.T) {
	output := NewEmitter(sampleChunk()).Emit()
	require.True(t, strings.HasSuffix(output, "\n"))

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.NotEmpty(t, lines)

	var openers []int
	for _, line := range lines {
		spaces := leadingSpaces(line)
		assert.Zero(t, spaces%IndentWidth, "line %q", line)
		assert.NotContains(t, line, "\t")

		word := strings.Fields(line)[0]
		switch word {
		case "end", "until":
			require.NotEmpty(t, openers, "line %q", line)
			assert.Equal(t, openers[len(openers)-1], spaces, "line %q", line)
			openers = openers[:len(openers)-1]
			continue
		case "elseif", "else":
			require.NotEmpty(t, openers, "line %q", line)
			assert.Equal(t, openers[len(openers)-1], spaces, "line %q", line)
			continue
		}

		if len(openers) > 0 {
			assert.Equal(t, openers[len(openers)-1]+IndentWidth, spaces, "line %q", line)
		} else {
			assert.Zero(t, spaces, "line %q", line)
		}

		if word == "if" || word == "while" || word == "for" || word == "repeat" {
			openers = append(openers, spaces)
		}
	}

	assert.Empty(t, openers)
}

func TestDoesNotMutateInput(t *testing.T) {
	chunk := sampleChunk()
	NewEmitter(chunk).Emit()

	assert.Equal(t, sampleChunk(), chunk)
}
