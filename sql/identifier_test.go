package sql_test

import (
	"testing"

	"github.com/mklane/sqleval/sql"
)

func TestIdentifier(t *testing.T) {
	if sql.UnquotedID("set") != sql.SET {
		t.Errorf(`UnquotedID("set") got %d want SET`, sql.UnquotedID("set"))
	}
	if sql.UnquotedID("Show") != sql.SHOW {
		t.Errorf(`UnquotedID("Show") got %d want SHOW`, sql.UnquotedID("Show"))
	}
	if !sql.SET.IsReserved() {
		t.Error("SET.IsReserved() got false want true")
	}

	abc := sql.UnquotedID("abc")
	if abc.IsReserved() {
		t.Error(`UnquotedID("abc").IsReserved() got true want false`)
	}
	if sql.UnquotedID("ABC") != abc {
		t.Error(`UnquotedID("ABC") != UnquotedID("abc")`)
	}
	if abc.String() != "abc" {
		t.Errorf(`UnquotedID("abc").String() got %q want "abc"`, abc.String())
	}

	if sql.QuotedID("ABC") == abc {
		t.Error(`QuotedID("ABC") == UnquotedID("abc")`)
	}
	if sql.QuotedID("ABC") != sql.QuotedID("ABC") {
		t.Error(`QuotedID("ABC") != QuotedID("ABC")`)
	}
	if sql.QuotedID("set").IsReserved() {
		t.Error(`QuotedID("set").IsReserved() got true want false`)
	}
	if sql.QuotedID("abc") != abc {
		t.Error(`QuotedID("abc") != UnquotedID("abc")`)
	}
}
