package expr

import (
	"fmt"
	"strconv"

	"github.com/mklane/sqleval/sql"
)

// EvalContext supplies the typed values that expressions borrow: the stored
// session variables. The values it returns must stay alive and unmodified for
// the duration of the evaluation that borrows them.
type EvalContext interface {
	Variable(nam sql.Identifier) (sql.Value, bool)
}

// Eval reduces an expression to an evaluated result, borrowing literals from
// the AST and typed values from the context wherever possible; only computed
// results are owned.
func Eval(ectx EvalContext, e Expr) (Evaluated, error) {
	return eval(ectx, e, false)
}

// EvalValue reduces an expression all the way to a typed value.
func EvalValue(ectx EvalContext, e Expr) (sql.Value, error) {
	ev, err := Eval(ectx, e)
	if err != nil {
		return nil, err
	}
	return Value(ev)
}

// cmpText selects the borrowed-text representation for string literals in
// comparison positions, where the inner text can be used without wrapping it.
func eval(ectx EvalContext, e Expr, cmpText bool) (Evaluated, error) {
	switch e := e.(type) {
	case *Literal:
		if cmpText && e.Lit.Kind == sql.StringLiteral {
			return StringRef{e.Lit.Text}, nil
		}
		return LiteralRef{e.Lit}, nil
	case *Constant:
		return ValueRef{e.Value}, nil
	case Ref:
		val, ok := ectx.Variable(sql.Identifier(e))
		if !ok {
			return nil, fmt.Errorf("engine: %s not found", e)
		}
		return ValueRef{val}, nil
	case *Unary:
		return evalUnary(ectx, e, cmpText)
	case *Binary:
		return evalBinary(ectx, e)
	default:
		panic(fmt.Sprintf("unexpected type for expr.Expr: %T: %v", e, e))
	}
}

func evalUnary(ectx EvalContext, u *Unary, cmpText bool) (Evaluated, error) {
	if u.Op == NoOp {
		return eval(ectx, u.Expr, cmpText)
	}

	ev, err := eval(ectx, u.Expr, false)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case NegateOp:
		if lit, ok := literalOperand(ev); ok {
			nl, ok := literalNegate(lit)
			if !ok {
				return nil, fmt.Errorf("engine: want number got %s", ev)
			}
			return OwnedLiteral{nl}, nil
		}
		val, ok := valueOperand(ev)
		if !ok {
			return nil, fmt.Errorf("engine: want number got %s", ev)
		}
		if val == nil {
			return OwnedValue{nil}, nil
		}
		nv, err := sql.Negate(val)
		if err != nil {
			return nil, err
		}
		return OwnedValue{nv}, nil
	case NotOp:
		val, err := Value(ev)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return OwnedValue{nil}, nil
		}
		b, ok := val.(sql.BoolValue)
		if !ok {
			return nil, fmt.Errorf("engine: want boolean got %s", val)
		}
		return OwnedValue{sql.BoolValue(!b)}, nil
	}
	panic(fmt.Sprintf("unexpected unary op: %s", u.Op))
}

func evalBinary(ectx EvalContext, b *Binary) (Evaluated, error) {
	switch b.Op {
	case AddOp, SubtractOp, MultiplyOp, DivideOp:
		return evalArith(ectx, b)
	case EqualOp, NotEqualOp, LessThanOp, LessEqualOp, GreaterThanOp, GreaterEqualOp:
		return evalCompare(ectx, b)
	case AndOp, OrOp:
		return evalLogical(ectx, b)
	}
	panic(fmt.Sprintf("unexpected binary op: %s", b.Op))
}

// isNull reports a typed NULL; a literal is never NULL.
func isNull(ev Evaluated) bool {
	val, ok := valueOperand(ev)
	return ok && val == nil
}

func evalArith(ectx EvalContext, b *Binary) (Evaluated, error) {
	lev, err := eval(ectx, b.Left, false)
	if err != nil {
		return nil, err
	}
	rev, err := eval(ectx, b.Right, false)
	if err != nil {
		return nil, err
	}
	if isNull(lev) || isNull(rev) {
		return OwnedValue{nil}, nil
	}

	switch b.Op {
	case AddOp:
		return Add(lev, rev)
	case SubtractOp:
		return Subtract(lev, rev)
	case MultiplyOp:
		return Multiply(lev, rev)
	case DivideOp:
		return Divide(lev, rev)
	}
	panic(fmt.Sprintf("unexpected arithmetic op: %s", b.Op))
}

// materializeLiterals keeps owned literals out of comparisons: a computed
// literal, and its peer, become typed values first. This is what makes the
// owned-literal comparison pairs in Equal unreachable from the evaluator.
func materializeLiterals(a, b Evaluated) (Evaluated, Evaluated, error) {
	_, aol := a.(OwnedLiteral)
	_, bol := b.(OwnedLiteral)
	if !aol && !bol {
		return a, b, nil
	}

	av, err := Value(a)
	if err != nil {
		return nil, nil, err
	}
	bv, err := Value(b)
	if err != nil {
		return nil, nil, err
	}
	return OwnedValue{av}, OwnedValue{bv}, nil
}

func evalCompare(ectx EvalContext, b *Binary) (Evaluated, error) {
	lev, err := eval(ectx, b.Left, true)
	if err != nil {
		return nil, err
	}
	rev, err := eval(ectx, b.Right, true)
	if err != nil {
		return nil, err
	}
	if isNull(lev) || isNull(rev) {
		return OwnedValue{nil}, nil
	}
	lev, rev, err = materializeLiterals(lev, rev)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case EqualOp:
		return OwnedValue{sql.BoolValue(Equal(lev, rev))}, nil
	case NotEqualOp:
		return OwnedValue{sql.BoolValue(!Equal(lev, rev))}, nil
	}

	cmp, ok := Compare(lev, rev)
	if !ok {
		// Incomparable is NULL, not an error.
		return OwnedValue{nil}, nil
	}
	var ret bool
	switch b.Op {
	case LessThanOp:
		ret = cmp < 0
	case LessEqualOp:
		ret = cmp <= 0
	case GreaterThanOp:
		ret = cmp > 0
	case GreaterEqualOp:
		ret = cmp >= 0
	}
	return OwnedValue{sql.BoolValue(ret)}, nil
}

func evalLogical(ectx EvalContext, b *Binary) (Evaluated, error) {
	lval, err := EvalValue(ectx, b.Left)
	if err != nil {
		return nil, err
	}
	rval, err := EvalValue(ectx, b.Right)
	if err != nil {
		return nil, err
	}
	if lval == nil || rval == nil {
		return OwnedValue{nil}, nil
	}

	lb, ok := lval.(sql.BoolValue)
	if !ok {
		return nil, fmt.Errorf("engine: want boolean got %s", lval)
	}
	rb, ok := rval.(sql.BoolValue)
	if !ok {
		return nil, fmt.Errorf("engine: want boolean got %s", rval)
	}
	if b.Op == AndOp {
		return OwnedValue{lb && rb}, nil
	}
	return OwnedValue{lb || rb}, nil
}

// Value materializes an evaluated result into a typed value: numeric literals
// become integers when they fit and floats otherwise, string text becomes a
// string value.
func Value(ev Evaluated) (sql.Value, error) {
	switch ev := ev.(type) {
	case LiteralRef:
		return literalValue(ev.Lit)
	case OwnedLiteral:
		return literalValue(&ev.Lit)
	case StringRef:
		return sql.StringValue(ev.Str), nil
	case ValueRef:
		return ev.Val, nil
	case OwnedValue:
		return ev.Val, nil
	}
	panic(fmt.Sprintf("unexpected type for expr.Evaluated: %T: %v", ev, ev))
}

func literalValue(lit *sql.Literal) (sql.Value, error) {
	switch lit.Kind {
	case sql.NumberLiteral:
		if i, err := strconv.ParseInt(lit.Text, 10, 64); err == nil {
			return sql.Int64Value(i), nil
		}
		if f, err := strconv.ParseFloat(lit.Text, 64); err == nil {
			return sql.Float64Value(f), nil
		}
		return nil, fmt.Errorf("engine: malformed number %s", lit)
	case sql.StringLiteral:
		return sql.StringValue(lit.Text), nil
	}
	panic(fmt.Sprintf("unexpected literal kind: %d: %s", lit.Kind, lit))
}
