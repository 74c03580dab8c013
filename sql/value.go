package sql

import (
	"fmt"
	"strings"
)

const (
	NullString  = "NULL"
	TrueString  = "true"
	FalseString = "false"
)

// Value is a typed runtime value: the result of evaluating an expression or the
// stored value of a session variable. A nil Value is NULL.
type Value interface {
	fmt.Stringer

	// return -1 if v1 < v2
	// return 0 if v1 == v2
	// return 1 if v1 > v2
	// return an error if v1 and v2 are not comparable
	Compare(v2 Value) (int, error)
}

type BoolValue bool

func (b BoolValue) String() string {
	if b {
		return TrueString
	}
	return FalseString
}

func (b1 BoolValue) Compare(v2 Value) (int, error) {
	b2, ok := v2.(BoolValue)
	if !ok {
		return 0, fmt.Errorf("engine: want boolean got %s", Format(v2))
	}
	if b1 == b2 {
		return 0, nil
	} else if b2 {
		return -1, nil
	}
	return 1, nil
}

type Int64Value int64

func (i Int64Value) String() string {
	return fmt.Sprintf("%v", int64(i))
}

func (i1 Int64Value) Compare(v2 Value) (int, error) {
	switch v2 := v2.(type) {
	case Int64Value:
		if i1 < v2 {
			return -1, nil
		} else if i1 > v2 {
			return 1, nil
		}
		return 0, nil
	case Float64Value:
		if Float64Value(i1) < v2 {
			return -1, nil
		} else if Float64Value(i1) > v2 {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("engine: want number got %s", Format(v2))
}

type Float64Value float64

func (f Float64Value) String() string {
	return fmt.Sprintf("%v", float64(f))
}

func (f1 Float64Value) Compare(v2 Value) (int, error) {
	switch v2 := v2.(type) {
	case Int64Value:
		f2 := Float64Value(v2)
		if f1 < f2 {
			return -1, nil
		} else if f1 > f2 {
			return 1, nil
		}
		return 0, nil
	case Float64Value:
		if f1 < v2 {
			return -1, nil
		} else if f1 > v2 {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("engine: want number got %s", Format(v2))
}

type StringValue string

func (s StringValue) String() string {
	return fmt.Sprintf("'%s'", string(s))
}

func (s1 StringValue) Compare(v2 Value) (int, error) {
	s2, ok := v2.(StringValue)
	if !ok {
		return 0, fmt.Errorf("engine: want string got %s", Format(v2))
	}
	return strings.Compare(string(s1), string(s2)), nil
}

// Equal reports whether two values are equal; values of incomparable types are
// never equal. NULL is equal only to NULL.
func Equal(v1, v2 Value) bool {
	if v1 == nil || v2 == nil {
		return v1 == nil && v2 == nil
	}
	cmp, err := v1.Compare(v2)
	return err == nil && cmp == 0
}

func Format(v Value) string {
	if v == nil {
		return NullString
	}
	return v.String()
}
