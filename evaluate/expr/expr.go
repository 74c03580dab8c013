package expr

import (
	"fmt"

	"github.com/mklane/sqleval/sql"
)

type Expr interface {
	fmt.Stringer
	Equal(e Expr) bool
}

type Op int

const (
	AddOp Op = iota
	AndOp
	DivideOp
	EqualOp
	GreaterEqualOp
	GreaterThanOp
	LessEqualOp
	LessThanOp
	MultiplyOp
	NegateOp
	NoOp
	NotEqualOp
	NotOp
	OrOp
	SubtractOp
)

var ops = [...]struct {
	name       string
	precedence int
}{
	AddOp:          {"+", 7},
	AndOp:          {"AND", 2},
	DivideOp:       {"/", 8},
	EqualOp:        {"==", 4},
	GreaterEqualOp: {">=", 5},
	GreaterThanOp:  {">", 5},
	LessEqualOp:    {"<=", 5},
	LessThanOp:     {"<", 5},
	MultiplyOp:     {"*", 8},
	NegateOp:       {"-", 9},
	NoOp:           {"", 11},
	NotEqualOp:     {"!=", 4},
	NotOp:          {"NOT", 3},
	OrOp:           {"OR", 1},
	SubtractOp:     {"-", 7},
}

func (op Op) Precedence() int {
	return ops[op].precedence
}

func (op Op) String() string {
	return ops[op].name
}

// Literal is a number or single-quoted string as written in the source text;
// it stays un-typed until something forces a type on it.
type Literal struct {
	Lit *sql.Literal
}

func (l *Literal) String() string {
	return l.Lit.String()
}

func (l *Literal) Equal(e Expr) bool {
	l2, ok := e.(*Literal)
	if !ok {
		return false
	}
	return *l.Lit == *l2.Lit
}

func NumberLit(text string) *Literal {
	return &Literal{sql.NumberLit(text)}
}

func StringLit(text string) *Literal {
	return &Literal{sql.StringLit(text)}
}

// Constant is a typed value appearing directly in an expression: TRUE, FALSE,
// or NULL.
type Constant struct {
	Value sql.Value
}

func (c *Constant) String() string {
	return sql.Format(c.Value)
}

func (c *Constant) Equal(e Expr) bool {
	c2, ok := e.(*Constant)
	if !ok {
		return false
	}
	return sql.Equal(c.Value, c2.Value)
}

func Nil() *Constant {
	return &Constant{nil}
}

func True() *Constant {
	return &Constant{sql.BoolValue(true)}
}

func False() *Constant {
	return &Constant{sql.BoolValue(false)}
}

// Ref is a reference to a session variable.
type Ref sql.Identifier

func (r Ref) String() string {
	return sql.Identifier(r).String()
}

func (r Ref) Equal(e Expr) bool {
	r2, ok := e.(Ref)
	return ok && r == r2
}

type Unary struct {
	Op   Op
	Expr Expr
}

func (u *Unary) String() string {
	if ops[u.Op].name == "" {
		return u.Expr.String()
	}
	return fmt.Sprintf("(%s %s)", ops[u.Op].name, u.Expr)
}

func (u *Unary) Equal(e Expr) bool {
	u2, ok := e.(*Unary)
	if !ok {
		return false
	}
	return u.Op == u2.Op && u.Expr.Equal(u2.Expr)
}

type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, ops[b.Op].name, b.Right)
}

func (b *Binary) Equal(e Expr) bool {
	b2, ok := e.(*Binary)
	if !ok {
		return false
	}
	return b.Op == b2.Op && b.Left.Equal(b2.Left) && b.Right.Equal(b2.Right)
}
