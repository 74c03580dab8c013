package sql_test

import (
	"testing"

	"github.com/mklane/sqleval/sql"
)

func TestArith(t *testing.T) {
	cases := []struct {
		op     func(v1, v2 sql.Value) (sql.Value, error)
		nam    string
		v1, v2 sql.Value
		ret    sql.Value
		fail   bool
	}{
		{op: sql.Add, nam: "Add", v1: sql.Int64Value(2), v2: sql.Int64Value(3),
			ret: sql.Int64Value(5)},
		{op: sql.Add, nam: "Add", v1: sql.Int64Value(2), v2: sql.Float64Value(0.5),
			ret: sql.Float64Value(2.5)},
		{op: sql.Add, nam: "Add", v1: sql.Float64Value(0.5), v2: sql.Int64Value(2),
			ret: sql.Float64Value(2.5)},
		{op: sql.Add, nam: "Add", v1: sql.StringValue("abc"), v2: sql.Int64Value(2),
			fail: true},
		{op: sql.Add, nam: "Add", v1: sql.Int64Value(2), v2: sql.BoolValue(true),
			fail: true},
		{op: sql.Subtract, nam: "Subtract", v1: sql.Int64Value(2), v2: sql.Int64Value(3),
			ret: sql.Int64Value(-1)},
		{op: sql.Subtract, nam: "Subtract", v1: sql.Float64Value(2.5),
			v2: sql.Float64Value(0.5), ret: sql.Float64Value(2)},
		{op: sql.Multiply, nam: "Multiply", v1: sql.Int64Value(2), v2: sql.Int64Value(3),
			ret: sql.Int64Value(6)},
		{op: sql.Multiply, nam: "Multiply", v1: sql.Int64Value(4), v2: sql.Float64Value(0.5),
			ret: sql.Float64Value(2)},
		{op: sql.Divide, nam: "Divide", v1: sql.Int64Value(2), v2: sql.Int64Value(3),
			ret: sql.Int64Value(0)},
		{op: sql.Divide, nam: "Divide", v1: sql.Int64Value(-7), v2: sql.Int64Value(2),
			ret: sql.Int64Value(-3)},
		{op: sql.Divide, nam: "Divide", v1: sql.Int64Value(1), v2: sql.Int64Value(0),
			fail: true},
		{op: sql.Divide, nam: "Divide", v1: sql.Float64Value(3), v2: sql.Int64Value(2),
			ret: sql.Float64Value(1.5)},
	}

	for _, c := range cases {
		ret, err := c.op(c.v1, c.v2)
		if c.fail {
			if err == nil {
				t.Errorf("%s(%s, %s) did not fail", c.nam, sql.Format(c.v1), sql.Format(c.v2))
			}
			continue
		}
		if err != nil {
			t.Errorf("%s(%s, %s) failed with %s", c.nam, sql.Format(c.v1), sql.Format(c.v2),
				err)
		} else if !sql.Equal(ret, c.ret) {
			t.Errorf("%s(%s, %s) got %s want %s", c.nam, sql.Format(c.v1), sql.Format(c.v2),
				sql.Format(ret), sql.Format(c.ret))
		}
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := sql.Divide(sql.Int64Value(1), sql.Int64Value(0))
	if err != sql.ErrDivisionByZero {
		t.Errorf("Divide(1, 0) got %v want %s", err, sql.ErrDivisionByZero)
	}
}

func TestNegate(t *testing.T) {
	cases := []struct {
		v    sql.Value
		ret  sql.Value
		fail bool
	}{
		{v: sql.Int64Value(123), ret: sql.Int64Value(-123)},
		{v: sql.Float64Value(-1.5), ret: sql.Float64Value(1.5)},
		{v: sql.StringValue("abc"), fail: true},
		{v: sql.BoolValue(true), fail: true},
	}

	for _, c := range cases {
		ret, err := sql.Negate(c.v)
		if c.fail {
			if err == nil {
				t.Errorf("Negate(%s) did not fail", sql.Format(c.v))
			}
			continue
		}
		if err != nil {
			t.Errorf("Negate(%s) failed with %s", sql.Format(c.v), err)
		} else if !sql.Equal(ret, c.ret) {
			t.Errorf("Negate(%s) got %s want %s", sql.Format(c.v), sql.Format(ret),
				sql.Format(c.ret))
		}
	}
}
