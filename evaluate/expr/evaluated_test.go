package expr_test

import (
	"testing"

	"github.com/mklane/sqleval/evaluate/expr"
	"github.com/mklane/sqleval/sql"
)

func numberRef(s string) expr.Evaluated {
	return expr.LiteralRef{Lit: sql.NumberLit(s)}
}

func stringLitRef(s string) expr.Evaluated {
	return expr.LiteralRef{Lit: sql.StringLit(s)}
}

func ownedNumber(s string) expr.Evaluated {
	return expr.OwnedLiteral{Lit: sql.Literal{Kind: sql.NumberLiteral, Text: s}}
}

func textRef(s string) expr.Evaluated {
	return expr.StringRef{Str: s}
}

func valueRef(v sql.Value) expr.Evaluated {
	return expr.ValueRef{Val: v}
}

func ownedValue(v sql.Value) expr.Evaluated {
	return expr.OwnedValue{Val: v}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b expr.Evaluated
		ret  bool
	}{
		{numberRef("123"), numberRef("123"), true},
		{numberRef("123"), numberRef("456"), false},
		{stringLitRef("abc"), stringLitRef("abc"), true},
		{numberRef("123"), stringLitRef("123"), false},
		{stringLitRef("abc"), textRef("abc"), true},
		{textRef("abc"), stringLitRef("abc"), true},
		{stringLitRef("abc"), textRef("abcd"), false},
		{numberRef("123"), textRef("123"), false},
		{textRef("abc"), textRef("abc"), true},
		{textRef("abc"), textRef("xyz"), false},
		{numberRef("123"), valueRef(sql.Int64Value(123)), true},
		{valueRef(sql.Int64Value(123)), numberRef("123"), true},
		{numberRef("123"), valueRef(sql.Int64Value(456)), false},
		{numberRef("1.5"), valueRef(sql.Float64Value(1.5)), true},
		{stringLitRef("abc"), valueRef(sql.StringValue("abc")), true},
		{stringLitRef("abc"), valueRef(sql.Int64Value(123)), false},
		{numberRef("123"), valueRef(sql.StringValue("123")), false},
		{numberRef("123"), valueRef(nil), false},
		{valueRef(nil), valueRef(nil), true},
		{textRef("abc"), valueRef(sql.StringValue("abc")), true},
		{textRef("abc"), valueRef(sql.Int64Value(123)), false},
		{textRef("abc"), valueRef(nil), false},
		{valueRef(sql.Int64Value(123)), valueRef(sql.Int64Value(123)), true},
		{valueRef(sql.Int64Value(123)), ownedValue(sql.Int64Value(123)), true},
		{ownedValue(sql.Int64Value(123)), ownedValue(sql.Int64Value(123)), true},
		{ownedValue(sql.Int64Value(123)), valueRef(sql.Float64Value(123)), true},
		{ownedValue(sql.StringValue("abc")), textRef("abc"), true},
		{ownedValue(sql.Int64Value(123)), numberRef("123"), true},
		{ownedNumber("123"), valueRef(sql.Int64Value(123)), true},
		{valueRef(sql.Int64Value(123)), ownedNumber("123"), true},
		{ownedNumber("123"), valueRef(sql.Int64Value(456)), false},
		{ownedNumber("123"), textRef("123"), false},
		{textRef("123"), ownedNumber("123"), false},
	}

	for _, c := range cases {
		ret := expr.Equal(c.a, c.b)
		if ret != c.ret {
			t.Errorf("Equal(%s, %s) got %v want %v", c.a, c.b, ret, c.ret)
		}
	}
}

func TestEqualSymmetric(t *testing.T) {
	evs := []expr.Evaluated{
		numberRef("123"),
		numberRef("456"),
		stringLitRef("abc"),
		textRef("abc"),
		textRef("123"),
		valueRef(sql.Int64Value(123)),
		valueRef(sql.StringValue("abc")),
		valueRef(nil),
		ownedValue(sql.Int64Value(123)),
		ownedValue(sql.Float64Value(1.5)),
	}

	for _, a := range evs {
		for _, b := range evs {
			if expr.Equal(a, b) != expr.Equal(b, a) {
				t.Errorf("Equal(%s, %s) != Equal(%s, %s)", a, b, b, a)
			}
		}
	}
}

func shouldPanic(t *testing.T, what string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", what)
		}
	}()
	fn()
}

func TestEqualPanics(t *testing.T) {
	cases := []struct {
		a, b expr.Evaluated
	}{
		{ownedNumber("123"), ownedNumber("123")},
		{ownedNumber("123"), numberRef("123")},
		{numberRef("123"), ownedNumber("123")},
		{ownedNumber("123"), ownedValue(sql.Int64Value(123))},
		{ownedValue(sql.Int64Value(123)), ownedNumber("123")},
	}

	for _, c := range cases {
		a, b := c.a, c.b
		shouldPanic(t, "Equal("+a.String()+", "+b.String()+")",
			func() {
				expr.Equal(a, b)
			})
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b expr.Evaluated
		cmp  int
		ok   bool
	}{
		{numberRef("2"), numberRef("5"), -1, true},
		{numberRef("5"), numberRef("2"), 1, true},
		{numberRef("5"), numberRef("5"), 0, true},
		{stringLitRef("abc"), stringLitRef("abd"), -1, true},
		{stringLitRef("abc"), stringLitRef("abc"), 0, true},
		{numberRef("123"), stringLitRef("123"), 0, false},
		{numberRef("1.5"), numberRef("2"), 0, false},
		{numberRef("123"), valueRef(sql.Int64Value(456)), -1, true},
		{valueRef(sql.Int64Value(456)), numberRef("123"), 1, true},
		{numberRef("1.5"), valueRef(sql.Float64Value(1.25)), 1, true},
		{numberRef("123"), valueRef(sql.StringValue("123")), 0, false},
		{stringLitRef("abc"), valueRef(sql.StringValue("abd")), -1, true},
		{numberRef("123"), valueRef(nil), 0, false},
		{textRef("abc"), textRef("abd"), -1, true},
		{textRef("abc"), textRef("abc"), 0, true},
		{textRef("abc"), numberRef("123"), 0, false},
		{numberRef("123"), textRef("123"), 0, false},
		{textRef("abc"), stringLitRef("abc"), 0, false},
		{textRef("abc"), valueRef(sql.StringValue("abd")), -1, true},
		{valueRef(sql.StringValue("abd")), textRef("abc"), 1, true},
		{textRef("abc"), valueRef(sql.Int64Value(123)), 0, false},
		{valueRef(sql.Int64Value(123)), valueRef(sql.Int64Value(456)), -1, true},
		{valueRef(sql.Int64Value(123)), valueRef(sql.Float64Value(123)), 0, true},
		{valueRef(sql.Int64Value(123)), valueRef(sql.StringValue("abc")), 0, false},
		{valueRef(sql.Int64Value(123)), valueRef(nil), 0, false},
		{valueRef(nil), valueRef(nil), 0, false},
		{ownedValue(sql.Int64Value(123)), valueRef(sql.Int64Value(456)), -1, true},
		{ownedNumber("2"), numberRef("5"), -1, true},
		{ownedNumber("123"), valueRef(sql.Int64Value(123)), 0, true},
		{ownedNumber("123"), textRef("123"), 0, false},
	}

	for _, c := range cases {
		cmp, ok := expr.Compare(c.a, c.b)
		if ok != c.ok {
			t.Errorf("Compare(%s, %s) got ok %v want %v", c.a, c.b, ok, c.ok)
		} else if ok && cmp != c.cmp {
			t.Errorf("Compare(%s, %s) got %d want %d", c.a, c.b, cmp, c.cmp)
		}
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	evs := []expr.Evaluated{
		numberRef("2"),
		numberRef("5"),
		stringLitRef("abc"),
		textRef("abc"),
		valueRef(sql.Int64Value(3)),
		valueRef(sql.Float64Value(4.5)),
		valueRef(sql.StringValue("abd")),
		valueRef(nil),
		ownedValue(sql.Int64Value(7)),
	}

	for _, a := range evs {
		for _, b := range evs {
			cmp1, ok1 := expr.Compare(a, b)
			cmp2, ok2 := expr.Compare(b, a)
			if ok1 != ok2 {
				t.Errorf("Compare(%s, %s) got ok %v; reversed got %v", a, b, ok1, ok2)
			} else if ok1 && cmp1 != -cmp2 {
				t.Errorf("Compare(%s, %s) got %d; reversed got %d", a, b, cmp1, cmp2)
			}
		}
	}
}
