package sql

import (
	"fmt"
	"strconv"
)

type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
)

// Literal is a value as written in source text, not yet bound to a runtime
// type: either the raw text of a number or the inner text of a single-quoted
// string. Booleans and NULL never appear here; the parser turns them directly
// into typed values.
type Literal struct {
	Kind LiteralKind
	Text string
}

func (l *Literal) String() string {
	if l.Kind == StringLiteral {
		return fmt.Sprintf("'%s'", l.Text)
	}
	return l.Text
}

func NumberLit(s string) *Literal {
	return &Literal{Kind: NumberLiteral, Text: s}
}

func StringLit(s string) *Literal {
	return &Literal{Kind: StringLiteral, Text: s}
}

// ConvertLiteral constructs a value with the same type as tmpl from the raw
// text of lit: an integer peer parses the literal as an integer, a float peer
// as a float, a string peer takes a string literal's inner text. Any other
// pairing is an error.
func ConvertLiteral(tmpl Value, lit *Literal) (Value, error) {
	switch tmpl.(type) {
	case Int64Value:
		if lit.Kind != NumberLiteral {
			return nil, fmt.Errorf("engine: want an integer got %s", lit)
		}
		i, err := strconv.ParseInt(lit.Text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("engine: want an integer got %s", lit)
		}
		return Int64Value(i), nil
	case Float64Value:
		if lit.Kind != NumberLiteral {
			return nil, fmt.Errorf("engine: want a float got %s", lit)
		}
		f, err := strconv.ParseFloat(lit.Text, 64)
		if err != nil {
			return nil, fmt.Errorf("engine: want a float got %s", lit)
		}
		return Float64Value(f), nil
	case StringValue:
		if lit.Kind != StringLiteral {
			return nil, fmt.Errorf("engine: want a string got %s", lit)
		}
		return StringValue(lit.Text), nil
	}
	return nil, fmt.Errorf("engine: cannot convert literal %s to the type of %s", lit,
		Format(tmpl))
}
