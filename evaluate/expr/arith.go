package expr

import (
	"github.com/mklane/sqleval/sql"
)

type literalFunc func(l1, l2 *sql.Literal) (sql.Literal, error)
type valueFunc func(v1, v2 sql.Value) (sql.Value, error)

// arith dispatches one arithmetic operator over two evaluated results. Two
// literals combine in the literal domain and stay un-typed; as soon as a typed
// value is involved, the literal side is coerced to the peer's type and the
// typed domain does the work. The result is always owned, never a reference
// into an operand.
func arith(lfn literalFunc, vfn valueFunc, a, b Evaluated) (Evaluated, error) {
	if _, ok := a.(StringRef); ok {
		return nil, ErrStringArithmetic
	}
	if _, ok := b.(StringRef); ok {
		return nil, ErrStringArithmetic
	}

	alit, aok := literalOperand(a)
	blit, bok := literalOperand(b)
	switch {
	case aok && bok:
		lit, err := lfn(alit, blit)
		if err != nil {
			return nil, err
		}
		return OwnedLiteral{lit}, nil
	case aok:
		bval, _ := valueOperand(b)
		cv, err := sql.ConvertLiteral(bval, alit)
		if err != nil {
			return nil, err
		}
		val, err := vfn(cv, bval)
		if err != nil {
			return nil, err
		}
		return OwnedValue{val}, nil
	case bok:
		aval, _ := valueOperand(a)
		cv, err := sql.ConvertLiteral(aval, blit)
		if err != nil {
			return nil, err
		}
		val, err := vfn(aval, cv)
		if err != nil {
			return nil, err
		}
		return OwnedValue{val}, nil
	}

	aval, _ := valueOperand(a)
	bval, _ := valueOperand(b)
	val, err := vfn(aval, bval)
	if err != nil {
		return nil, err
	}
	return OwnedValue{val}, nil
}

func Add(a, b Evaluated) (Evaluated, error) {
	return arith(literalAdd, sql.Add, a, b)
}

func Subtract(a, b Evaluated) (Evaluated, error) {
	return arith(literalSubtract, sql.Subtract, a, b)
}

func Multiply(a, b Evaluated) (Evaluated, error) {
	return arith(literalMultiply, sql.Multiply, a, b)
}

func Divide(a, b Evaluated) (Evaluated, error) {
	return arith(literalDivide, sql.Divide, a, b)
}
