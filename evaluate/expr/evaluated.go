package expr

import (
	"fmt"
	"strings"

	"github.com/mklane/sqleval/sql"
)

// Evaluated is the result of reducing one expression node. It is a closed sum
// over five representations: a literal may be borrowed from the AST or owned
// as the result of literal arithmetic, a typed value may be borrowed from a
// stored variable or owned as the result of typed arithmetic, and raw string
// text may be borrowed from a string literal so it can be compared without
// wrapping it in a literal or a value.
//
// An Evaluated lives for a single comparison or arithmetic call; the borrowed
// representations must not outlive whatever they borrow from, and every
// arithmetic result is owned so it never dangles.
type Evaluated interface {
	fmt.Stringer
	evaluated()
}

// LiteralRef borrows a literal node from the AST.
type LiteralRef struct {
	Lit *sql.Literal
}

// OwnedLiteral holds a freshly computed literal, the result of arithmetic on
// two numeric literals.
type OwnedLiteral struct {
	Lit sql.Literal
}

// StringRef borrows the inner text of a single-quoted string.
type StringRef struct {
	Str string
}

// ValueRef borrows a typed value owned elsewhere, such as a stored session
// variable or a constant in the AST.
type ValueRef struct {
	Val sql.Value
}

// OwnedValue holds a freshly computed typed value.
type OwnedValue struct {
	Val sql.Value
}

func (_ LiteralRef) evaluated()   {}
func (_ OwnedLiteral) evaluated() {}
func (_ StringRef) evaluated()    {}
func (_ ValueRef) evaluated()     {}
func (_ OwnedValue) evaluated()   {}

func (lr LiteralRef) String() string {
	return lr.Lit.String()
}

func (ol OwnedLiteral) String() string {
	return ol.Lit.String()
}

func (sr StringRef) String() string {
	return fmt.Sprintf("'%s'", sr.Str)
}

func (vr ValueRef) String() string {
	return sql.Format(vr.Val)
}

func (ov OwnedValue) String() string {
	return sql.Format(ov.Val)
}

// The evaluator never compares two owned literals, or an owned literal
// against a borrowed one: arithmetic results are materialized into typed
// values before such comparisons ever happen. Reaching one of these pairs
// means the caller broke that contract.
func invariantViolation(what string, a, b Evaluated) {
	panic(fmt.Sprintf("evaluate: invariant violation: %s of %s and %s", what, a, b))
}

// litEqualString reports whether a literal is a single-quoted string with
// inner text equal to s; any other literal kind is unequal.
func litEqualString(lit *sql.Literal, s string) bool {
	return lit.Kind == sql.StringLiteral && lit.Text == s
}

// valEqualString reports whether a typed value is text equal to s; any other
// value, NULL included, is unequal.
func valEqualString(val sql.Value, s string) bool {
	sv, ok := val.(sql.StringValue)
	return ok && string(sv) == s
}

// valEqualLiteral coerces the literal to the value's own type and compares;
// a literal that does not convert is unequal.
func valEqualLiteral(val sql.Value, lit *sql.Literal) bool {
	if val == nil {
		return false
	}
	cv, err := sql.ConvertLiteral(val, lit)
	if err != nil {
		return false
	}
	return sql.Equal(val, cv)
}

// Equal reports whether two evaluated results are equal. It is symmetric for
// every pair the evaluator can construct; see invariantViolation for the
// pairs it cannot.
func Equal(a, b Evaluated) bool {
	switch a := a.(type) {
	case LiteralRef:
		switch b := b.(type) {
		case LiteralRef:
			return *a.Lit == *b.Lit
		case StringRef:
			return litEqualString(a.Lit, b.Str)
		case ValueRef:
			return valEqualLiteral(b.Val, a.Lit)
		case OwnedValue:
			return valEqualLiteral(b.Val, a.Lit)
		case OwnedLiteral:
			invariantViolation("equality", a, b)
		}
	case StringRef:
		switch b := b.(type) {
		case LiteralRef:
			return litEqualString(b.Lit, a.Str)
		case StringRef:
			return a.Str == b.Str
		case ValueRef:
			return valEqualString(b.Val, a.Str)
		case OwnedValue:
			return valEqualString(b.Val, a.Str)
		case OwnedLiteral:
			return false
		}
	case ValueRef:
		switch b := b.(type) {
		case LiteralRef:
			return valEqualLiteral(a.Val, b.Lit)
		case OwnedLiteral:
			return valEqualLiteral(a.Val, &b.Lit)
		case StringRef:
			return valEqualString(a.Val, b.Str)
		case ValueRef:
			return sql.Equal(a.Val, b.Val)
		case OwnedValue:
			return sql.Equal(a.Val, b.Val)
		}
	case OwnedValue:
		switch b := b.(type) {
		case LiteralRef:
			return valEqualLiteral(a.Val, b.Lit)
		case StringRef:
			return valEqualString(a.Val, b.Str)
		case ValueRef:
			return sql.Equal(a.Val, b.Val)
		case OwnedValue:
			return sql.Equal(a.Val, b.Val)
		case OwnedLiteral:
			invariantViolation("equality", a, b)
		}
	case OwnedLiteral:
		switch b := b.(type) {
		case ValueRef:
			return valEqualLiteral(b.Val, &a.Lit)
		case StringRef:
			return false
		default:
			invariantViolation("equality", a, b)
		}
	}
	panic(fmt.Sprintf("unexpected type for expr.Evaluated: %T: %v", a, a))
}

// literalCompare orders two literals: numbers parse as int64 and compare
// numerically, strings compare lexicographically, and any other pairing is
// incomparable.
func literalCompare(l1, l2 *sql.Literal) (int, bool) {
	if l1.Kind != l2.Kind {
		return 0, false
	}
	switch l1.Kind {
	case sql.NumberLiteral:
		i1, ok1 := parseInteger(l1)
		i2, ok2 := parseInteger(l2)
		if !ok1 || !ok2 {
			return 0, false
		}
		if i1 < i2 {
			return -1, true
		} else if i1 > i2 {
			return 1, true
		}
		return 0, true
	case sql.StringLiteral:
		return strings.Compare(l1.Text, l2.Text), true
	}
	return 0, false
}

// valLiteralCompare orders a typed value against a literal by coercing the
// literal to the value's own type; incomparable if the coercion or the typed
// comparison fails.
func valLiteralCompare(val sql.Value, lit *sql.Literal) (int, bool) {
	if val == nil {
		return 0, false
	}
	cv, err := sql.ConvertLiteral(val, lit)
	if err != nil {
		return 0, false
	}
	cmp, err := val.Compare(cv)
	if err != nil {
		return 0, false
	}
	return cmp, true
}

func valStringCompare(val sql.Value, s string) (int, bool) {
	sv, ok := val.(sql.StringValue)
	if !ok {
		return 0, false
	}
	return strings.Compare(string(sv), s), true
}

func valCompare(v1, v2 sql.Value) (int, bool) {
	if v1 == nil || v2 == nil {
		return 0, false
	}
	cmp, err := v1.Compare(v2)
	if err != nil {
		return 0, false
	}
	return cmp, true
}

func reverse(cmp int, ok bool) (int, bool) {
	return -cmp, ok
}

// literalOperand unwraps the ownership of a literal representation; ordering
// and arithmetic treat borrowed and owned literals alike.
func literalOperand(ev Evaluated) (*sql.Literal, bool) {
	switch ev := ev.(type) {
	case LiteralRef:
		return ev.Lit, true
	case OwnedLiteral:
		return &ev.Lit, true
	}
	return nil, false
}

func valueOperand(ev Evaluated) (sql.Value, bool) {
	switch ev := ev.(type) {
	case ValueRef:
		return ev.Val, true
	case OwnedValue:
		return ev.Val, true
	}
	return nil, false
}

// Compare orders two evaluated results: -1, 0, or 1 when they are ordered,
// and false when the pair is incomparable. Mirrored calls reverse the result
// rather than recomputing it.
func Compare(a, b Evaluated) (int, bool) {
	if alit, ok := literalOperand(a); ok {
		if blit, ok := literalOperand(b); ok {
			return literalCompare(alit, blit)
		}
		if bval, ok := valueOperand(b); ok {
			return reverse(valLiteralCompare(bval, alit))
		}
		// String text never orders against a literal.
		return 0, false
	}

	if aval, ok := valueOperand(a); ok {
		if blit, ok := literalOperand(b); ok {
			return valLiteralCompare(aval, blit)
		}
		if bval, ok := valueOperand(b); ok {
			return valCompare(aval, bval)
		}
		return valStringCompare(aval, b.(StringRef).Str)
	}

	astr := a.(StringRef).Str
	switch b := b.(type) {
	case StringRef:
		return strings.Compare(astr, b.Str), true
	case ValueRef:
		return reverse(valStringCompare(b.Val, astr))
	case OwnedValue:
		return reverse(valStringCompare(b.Val, astr))
	}
	return 0, false
}
