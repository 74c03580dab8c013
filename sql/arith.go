package sql

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero = errors.New("engine: division by zero")
)

func numOp(v1 Value, v2 Value, ifn func(i1, i2 Int64Value) (Value, error),
	ffn func(f1, f2 Float64Value) (Value, error)) (Value, error) {

	switch v1 := v1.(type) {
	case Int64Value:
		switch v2 := v2.(type) {
		case Int64Value:
			return ifn(v1, v2)
		case Float64Value:
			return ffn(Float64Value(v1), v2)
		}
	case Float64Value:
		switch v2 := v2.(type) {
		case Int64Value:
			return ffn(v1, Float64Value(v2))
		case Float64Value:
			return ffn(v1, v2)
		}
	default:
		return nil, fmt.Errorf("engine: want number got %s", Format(v1))
	}
	return nil, fmt.Errorf("engine: want number got %s", Format(v2))
}

// Add, Subtract, Multiply, and Divide combine two numeric values, producing an
// integer when both operands are integers and a float otherwise. Integer
// arithmetic wraps on overflow, matching int64.
func Add(v1, v2 Value) (Value, error) {
	return numOp(v1, v2,
		func(i1, i2 Int64Value) (Value, error) {
			return i1 + i2, nil
		},
		func(f1, f2 Float64Value) (Value, error) {
			return f1 + f2, nil
		})
}

func Subtract(v1, v2 Value) (Value, error) {
	return numOp(v1, v2,
		func(i1, i2 Int64Value) (Value, error) {
			return i1 - i2, nil
		},
		func(f1, f2 Float64Value) (Value, error) {
			return f1 - f2, nil
		})
}

func Multiply(v1, v2 Value) (Value, error) {
	return numOp(v1, v2,
		func(i1, i2 Int64Value) (Value, error) {
			return i1 * i2, nil
		},
		func(f1, f2 Float64Value) (Value, error) {
			return f1 * f2, nil
		})
}

// Divide truncates toward zero for integers; integer division by zero is an
// error rather than a panic. Float division follows IEEE 754.
func Divide(v1, v2 Value) (Value, error) {
	return numOp(v1, v2,
		func(i1, i2 Int64Value) (Value, error) {
			if i2 == 0 {
				return nil, ErrDivisionByZero
			}
			return i1 / i2, nil
		},
		func(f1, f2 Float64Value) (Value, error) {
			return f1 / f2, nil
		})
}

func Negate(v Value) (Value, error) {
	switch v := v.(type) {
	case Int64Value:
		return -v, nil
	case Float64Value:
		return -v, nil
	}
	return nil, fmt.Errorf("engine: want number got %s", Format(v))
}
