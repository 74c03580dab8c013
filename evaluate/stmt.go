package evaluate

import (
	"fmt"

	"github.com/mklane/sqleval/evaluate/expr"
	"github.com/mklane/sqleval/sql"
)

type Stmt interface {
	fmt.Stringer
	Execute(ses *Session) (*Result, error)
}

// Result is the rows a statement produced; a nil Result means the statement
// produced none.
type Result struct {
	Columns []sql.Identifier
	Rows    [][]sql.Value
}

type Set struct {
	Variable sql.Identifier
	Expr     expr.Expr
}

func (stmt *Set) String() string {
	return fmt.Sprintf("SET %s = %s", stmt.Variable, stmt.Expr)
}

func (stmt *Set) Execute(ses *Session) (*Result, error) {
	val, err := expr.EvalValue(ses, stmt.Expr)
	if err != nil {
		return nil, err
	}
	return nil, ses.SetVariable(stmt.Variable, val)
}

type Drop struct {
	Variable sql.Identifier
}

func (stmt *Drop) String() string {
	return fmt.Sprintf("DROP %s", stmt.Variable)
}

func (stmt *Drop) Execute(ses *Session) (*Result, error) {
	return nil, ses.DropVariable(stmt.Variable)
}

type Show struct{}

func (_ *Show) String() string {
	return "SHOW VARIABLES"
}

func (_ *Show) Execute(ses *Session) (*Result, error) {
	vars, err := ses.Variables()
	if err != nil {
		return nil, err
	}

	rows := make([][]sql.Value, 0, len(vars))
	for _, v := range vars {
		rows = append(rows, []sql.Value{sql.StringValue(v.Name.String()), v.Value})
	}
	return &Result{
		Columns: []sql.Identifier{sql.ID("variable"), sql.ID("value")},
		Rows:    rows,
	}, nil
}

// Eval is a bare expression used as a statement; it produces a single row with
// the expression's value.
type Eval struct {
	Expr expr.Expr
}

func (stmt *Eval) String() string {
	return stmt.Expr.String()
}

func (stmt *Eval) Execute(ses *Session) (*Result, error) {
	val, err := expr.EvalValue(ses, stmt.Expr)
	if err != nil {
		return nil, err
	}
	return &Result{
		Columns: []sql.Identifier{sql.ID("value")},
		Rows:    [][]sql.Value{{val}},
	}, nil
}
