package engine_test

import (
	"testing"

	"github.com/mklane/sqleval/engine"
	"github.com/mklane/sqleval/engine/memkv"
	"github.com/mklane/sqleval/sql"
	"github.com/mklane/sqleval/testutil"
)

func openEngine(t *testing.T) *engine.Engine {
	t.Helper()

	e, err := engine.Open(memkv.Engine{}, "", testutil.SetupLogger("engine_test.log"))
	if err != nil {
		t.Fatalf("Open() failed with %s", err)
	}
	return e
}

func checkGet(t *testing.T, e *engine.Engine, nam sql.Identifier, val sql.Value, ok bool) {
	t.Helper()

	ret, found, err := e.Get(nam)
	if err != nil {
		t.Errorf("Get(%s) failed with %s", nam, err)
		return
	}
	if found != ok {
		t.Errorf("Get(%s) got found %v want %v", nam, found, ok)
		return
	}
	if found && !sql.Equal(ret, val) {
		t.Errorf("Get(%s) got %s want %s", nam, sql.Format(ret), sql.Format(val))
	}
}

func TestEngine(t *testing.T) {
	e := openEngine(t)
	defer e.Close()

	x := sql.ID("x")
	y := sql.ID("y")
	s := sql.ID("s")

	checkGet(t, e, x, nil, false)

	err := e.Set(x, sql.Int64Value(123))
	if err != nil {
		t.Fatalf("Set(x) failed with %s", err)
	}
	err = e.Set(y, sql.Float64Value(1.5))
	if err != nil {
		t.Fatalf("Set(y) failed with %s", err)
	}
	err = e.Set(s, sql.StringValue("abc"))
	if err != nil {
		t.Fatalf("Set(s) failed with %s", err)
	}

	checkGet(t, e, x, sql.Int64Value(123), true)
	checkGet(t, e, y, sql.Float64Value(1.5), true)
	checkGet(t, e, s, sql.StringValue("abc"), true)

	err = e.Set(x, sql.BoolValue(true))
	if err != nil {
		t.Fatalf("Set(x) failed with %s", err)
	}
	checkGet(t, e, x, sql.BoolValue(true), true)

	err = e.Set(x, nil)
	if err != nil {
		t.Fatalf("Set(x) failed with %s", err)
	}
	checkGet(t, e, x, nil, true)

	vars, err := e.Variables()
	if err != nil {
		t.Fatalf("Variables() failed with %s", err)
	}
	want := []engine.Variable{
		{Name: s, Value: sql.StringValue("abc")},
		{Name: x, Value: nil},
		{Name: y, Value: sql.Float64Value(1.5)},
	}
	if len(vars) != len(want) {
		t.Fatalf("Variables() got %d variables want %d", len(vars), len(want))
	}
	for i := range vars {
		if vars[i].Name != want[i].Name || !sql.Equal(vars[i].Value, want[i].Value) {
			t.Errorf("Variables()[%d] got %s = %s want %s = %s", i, vars[i].Name,
				sql.Format(vars[i].Value), want[i].Name, sql.Format(want[i].Value))
		}
	}

	err = e.Drop(y)
	if err != nil {
		t.Fatalf("Drop(y) failed with %s", err)
	}
	checkGet(t, e, y, nil, false)

	err = e.Drop(y)
	if err == nil {
		t.Error("Drop(y) did not fail")
	}
}
