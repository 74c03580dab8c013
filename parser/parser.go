package parser

import (
	"fmt"
	"io"
	"runtime"

	"github.com/mklane/sqleval/evaluate"
	"github.com/mklane/sqleval/evaluate/expr"
	"github.com/mklane/sqleval/parser/scanner"
	"github.com/mklane/sqleval/parser/token"
	"github.com/mklane/sqleval/sql"
)

type Parser interface {
	Parse() (evaluate.Stmt, error)
	ParseExpr() (expr.Expr, error)
}

type parser struct {
	scanner   scanner.Scanner
	sctx      scanner.ScanCtx
	unscanned bool
}

func NewParser(rr io.RuneReader, fn string) Parser {
	var p parser
	p.scanner.Init(rr, fn)
	return &p
}

func (p *parser) Parse() (stmt evaluate.Stmt, err error) {
	t := p.scan()
	for t == token.EndOfStatement {
		t = p.scan()
	}
	if t == token.EOF {
		return nil, io.EOF
	}
	p.unscan()

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			err = r.(error)
			stmt = nil
		}
	}()

	stmt = p.parseStmt()
	p.expectEnd()
	return
}

func (p *parser) error(msg string) {
	panic(fmt.Errorf("%s: %s", p.sctx.Position, msg))
}

func (p *parser) scan() rune {
	if p.unscanned {
		p.unscanned = false
		return p.sctx.Token
	}

	p.scanner.Scan(&p.sctx)
	if p.sctx.Token == token.Error {
		p.error(p.sctx.Error.Error())
	}
	return p.sctx.Token
}

func (p *parser) unscan() {
	p.unscanned = true
}

func (p *parser) got() string {
	switch p.sctx.Token {
	case token.EOF:
		return "end of file"
	case token.EndOfStatement:
		return "end of statement"
	case token.Error:
		return fmt.Sprintf("error %s", p.sctx.Error)
	case token.Identifier:
		return fmt.Sprintf("identifier %s", p.sctx.Identifier)
	case token.Reserved:
		return fmt.Sprintf("reserved identifier %s", p.sctx.Identifier)
	case token.String:
		return fmt.Sprintf("string %q", p.sctx.String)
	case token.Number:
		return fmt.Sprintf("number %s", p.sctx.String)
	}

	return token.Format(p.sctx.Token)
}

func (p *parser) expectReserved(ids ...sql.Identifier) sql.Identifier {
	t := p.scan()
	if t == token.Reserved {
		for _, kw := range ids {
			if kw == p.sctx.Identifier {
				return kw
			}
		}
	}

	var msg string
	if len(ids) == 1 {
		msg = ids[0].String()
	} else {
		for i, kw := range ids {
			if i == len(ids)-1 {
				msg += ", or "
			} else if i > 0 {
				msg += ", "
			}
			msg += kw.String()
		}
	}

	p.error(fmt.Sprintf("expected keyword %s got %s", msg, p.got()))
	return 0
}

func (p *parser) optionalReserved(ids ...sql.Identifier) bool {
	t := p.scan()
	if t == token.Reserved {
		for _, kw := range ids {
			if kw == p.sctx.Identifier {
				return true
			}
		}
	}

	p.unscan()
	return false
}

func (p *parser) expectIdentifier(msg string) sql.Identifier {
	t := p.scan()
	if t != token.Identifier {
		p.error(fmt.Sprintf("%s got %s", msg, p.got()))
	}
	return p.sctx.Identifier
}

func (p *parser) expectTokens(tokens ...rune) rune {
	t := p.scan()
	for _, r := range tokens {
		if t == r {
			return r
		}
	}

	var msg string
	if len(tokens) == 1 {
		msg = token.Format(tokens[0])
	} else {
		for i, r := range tokens {
			if i == len(tokens)-1 {
				msg += ", or "
			} else if i > 0 {
				msg += ", "
			}
			msg += token.Format(r)
		}
	}

	p.error(fmt.Sprintf("expected %s got %s", msg, p.got()))
	return 0
}

func (p *parser) maybeToken(mr rune) bool {
	if p.scan() == mr {
		return true
	}
	p.unscan()
	return false
}

func (p *parser) expectEnd() {
	if t := p.scan(); t != token.EOF && t != token.EndOfStatement {
		p.error(fmt.Sprintf("expected the end of the statement got %s", p.got()))
	}
}

/*
<stmt>:
      SET <var> = <expr>
    | SHOW VARIABLES
    | DROP <var>
    | <expr>
*/

func (p *parser) parseStmt() evaluate.Stmt {
	if p.optionalReserved(sql.SET, sql.SHOW, sql.DROP) {
		switch p.sctx.Identifier {
		case sql.SET:
			return p.parseSet()
		case sql.SHOW:
			p.expectReserved(sql.VARIABLES)
			return &evaluate.Show{}
		case sql.DROP:
			return &evaluate.Drop{
				Variable: p.expectIdentifier("expected a variable"),
			}
		}
	}

	return &evaluate.Eval{Expr: p.parseExpr()}
}

func (p *parser) parseSet() evaluate.Stmt {
	nam := p.expectIdentifier("expected a variable")
	p.expectTokens(token.Equal)
	return &evaluate.Set{
		Variable: nam,
		Expr:     p.parseExpr(),
	}
}

func (p *parser) ParseExpr() (e expr.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			err = r.(error)
			e = nil
		}
	}()

	e = p.parseExpr()
	return
}

/*
<expr>:
      <literal>
    | - <expr>
    | NOT <expr>
    | ( <expr> )
    | <expr> <op> <expr>
    | <var>
<op>:
      + - * /
    | = == != <> < <= > >=
    | AND | OR
*/

var binaryOps = map[rune]expr.Op{
	token.Equal:        expr.EqualOp,
	token.EqualEqual:   expr.EqualOp,
	token.BangEqual:    expr.NotEqualOp,
	token.Greater:      expr.GreaterThanOp,
	token.GreaterEqual: expr.GreaterEqualOp,
	token.Less:         expr.LessThanOp,
	token.LessEqual:    expr.LessEqualOp,
	token.LessGreater:  expr.NotEqualOp,
	token.Minus:        expr.SubtractOp,
	token.Plus:         expr.AddOp,
	token.Slash:        expr.DivideOp,
	token.Star:         expr.MultiplyOp,
}

func (p *parser) parseExpr() expr.Expr {
	var e expr.Expr
	r := p.scan()
	if r == token.Reserved {
		if p.sctx.Identifier == sql.TRUE {
			e = expr.True()
		} else if p.sctx.Identifier == sql.FALSE {
			e = expr.False()
		} else if p.sctx.Identifier == sql.NULL {
			e = expr.Nil()
		} else if p.sctx.Identifier == sql.NOT {
			e = p.parseUnaryExpr(expr.NotOp)
		} else {
			p.error(fmt.Sprintf("unexpected identifier %s", p.sctx.Identifier))
		}
	} else if r == token.String {
		e = expr.StringLit(p.sctx.String)
	} else if r == token.Number {
		e = expr.NumberLit(p.sctx.String)
	} else if r == token.Identifier {
		e = expr.Ref(p.sctx.Identifier)
	} else if r == token.Minus {
		// - <expr>
		e = p.parseUnaryExpr(expr.NegateOp)
	} else if r == token.LParen {
		// ( <expr> )
		e = &expr.Unary{Op: expr.NoOp, Expr: p.parseExpr()}
		if p.scan() != token.RParen {
			p.error(fmt.Sprintf("expected closing parenthesis got %s", p.got()))
		}
	} else {
		p.error(fmt.Sprintf("expected an expression got %s", p.got()))
	}

	var op expr.Op
	r = p.scan()
	op, ok := binaryOps[r]
	if !ok {
		if r == token.Reserved && p.sctx.Identifier == sql.AND {
			op = expr.AndOp
		} else if r == token.Reserved && p.sctx.Identifier == sql.OR {
			op = expr.OrOp
		} else {
			p.unscan()
			return e
		}
	}

	// Parsing is right recursive; descend to the leftmost operand with the
	// same or lower precedence so that operators stay left associative.
	e2 := p.parseExpr()
	if b2, ok := e2.(*expr.Binary); ok && b2.Op.Precedence() <= op.Precedence() {
		b := b2
		for {
			if bl, ok := b.Left.(*expr.Binary); ok && bl.Op.Precedence() <= op.Precedence() {
				b = bl
			} else {
				break
			}
		}

		b.Left = &expr.Binary{Op: op, Left: e, Right: b.Left}
		e = e2
	} else {
		e = &expr.Binary{Op: op, Left: e, Right: e2}
	}
	return e
}

func (p *parser) parseUnaryExpr(op expr.Op) expr.Expr {
	e := p.parseExpr()
	if b, ok := e.(*expr.Binary); ok && b.Op.Precedence() < op.Precedence() {
		for {
			if bl, ok := b.Left.(*expr.Binary); ok && bl.Op.Precedence() < op.Precedence() {
				b = bl
			} else {
				break
			}
		}

		b.Left = &expr.Unary{Op: op, Expr: b.Left}
		return e
	}

	return &expr.Unary{Op: op, Expr: e}
}
