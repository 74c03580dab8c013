package expr

import (
	"errors"
	"strconv"

	"github.com/mklane/sqleval/sql"
)

// InvariantError is a contract breach by the caller: the evaluator routed a
// value into a combination its own construction rules exclude. It is never a
// consequence of the expression being evaluated and must not be treated as an
// ordinary evaluation error.
type InvariantError string

func (e InvariantError) Error() string {
	return string(e)
}

var (
	// ErrStringArithmetic is an invariant fault: bare string text is never a
	// valid arithmetic operand and the evaluator never routes one there.
	ErrStringArithmetic = InvariantError(
		"evaluate: string text used as an arithmetic operand")

	// ErrLiteralArithmetic is an ordinary evaluation error: literal
	// arithmetic needs two integer literals.
	ErrLiteralArithmetic = errors.New("evaluate: want integer literals for arithmetic")
)

func parseInteger(lit *sql.Literal) (int64, bool) {
	if lit.Kind != sql.NumberLiteral {
		return 0, false
	}
	i, err := strconv.ParseInt(lit.Text, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// integerLiterals parses both operands of literal arithmetic. A string
// literal, or numeric text that does not fit an int64, is a normal evaluation
// error, not an invariant fault.
func integerLiterals(l1, l2 *sql.Literal) (int64, int64, error) {
	i1, ok := parseInteger(l1)
	if !ok {
		return 0, 0, ErrLiteralArithmetic
	}
	i2, ok := parseInteger(l2)
	if !ok {
		return 0, 0, ErrLiteralArithmetic
	}
	return i1, i2, nil
}

func integerLiteral(i int64) sql.Literal {
	return sql.Literal{Kind: sql.NumberLiteral, Text: strconv.FormatInt(i, 10)}
}

// Literal arithmetic parses, combines, and restringifies: the result is a new
// owned numeric literal, still un-typed. Addition and multiplication wrap on
// overflow, matching the typed integer domain.
func literalAdd(l1, l2 *sql.Literal) (sql.Literal, error) {
	i1, i2, err := integerLiterals(l1, l2)
	if err != nil {
		return sql.Literal{}, err
	}
	return integerLiteral(i1 + i2), nil
}

func literalSubtract(l1, l2 *sql.Literal) (sql.Literal, error) {
	i1, i2, err := integerLiterals(l1, l2)
	if err != nil {
		return sql.Literal{}, err
	}
	return integerLiteral(i1 - i2), nil
}

func literalMultiply(l1, l2 *sql.Literal) (sql.Literal, error) {
	i1, i2, err := integerLiterals(l1, l2)
	if err != nil {
		return sql.Literal{}, err
	}
	return integerLiteral(i1 * i2), nil
}

// literalDivide truncates toward zero; division by zero is an error.
func literalDivide(l1, l2 *sql.Literal) (sql.Literal, error) {
	i1, i2, err := integerLiterals(l1, l2)
	if err != nil {
		return sql.Literal{}, err
	}
	if i2 == 0 {
		return sql.Literal{}, sql.ErrDivisionByZero
	}
	return integerLiteral(i1 / i2), nil
}

// literalNegate negates a numeric literal textually, keeping it un-typed so
// that "-1.5" stays a literal rather than forcing a float.
func literalNegate(lit *sql.Literal) (sql.Literal, bool) {
	if lit.Kind != sql.NumberLiteral {
		return sql.Literal{}, false
	}
	if len(lit.Text) > 0 && lit.Text[0] == '-' {
		return sql.Literal{Kind: sql.NumberLiteral, Text: lit.Text[1:]}, true
	}
	return sql.Literal{Kind: sql.NumberLiteral, Text: "-" + lit.Text}, true
}
