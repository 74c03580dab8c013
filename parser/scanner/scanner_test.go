package scanner_test

import (
	"strings"
	"testing"

	"github.com/mklane/sqleval/parser/scanner"
	"github.com/mklane/sqleval/parser/token"
	"github.com/mklane/sqleval/sql"
)

type scanResult struct {
	tok rune
	id  sql.Identifier
	str string
}

func scanAll(t *testing.T, src string) []scanResult {
	t.Helper()

	var s scanner.Scanner
	s.Init(strings.NewReader(src), "test")

	var results []scanResult
	for {
		var sctx scanner.ScanCtx
		s.Scan(&sctx)
		if sctx.Token == token.EOF {
			break
		}
		if sctx.Token == token.Error {
			t.Fatalf("Scan(%q) failed with %s", src, sctx.Error)
		}
		results = append(results,
			scanResult{tok: sctx.Token, id: sctx.Identifier, str: sctx.String})
	}
	return results
}

func TestScan(t *testing.T) {
	cases := []struct {
		src  string
		want []scanResult
	}{
		{"123", []scanResult{{tok: token.Number, str: "123"}}},
		{"1.5", []scanResult{{tok: token.Number, str: "1.5"}}},
		{"'abc'", []scanResult{{tok: token.String, str: "abc"}}},
		{"''", []scanResult{{tok: token.String, str: ""}}},
		{"'it''s'", []scanResult{{tok: token.String, str: "it's"}}},
		{"abc", []scanResult{{tok: token.Identifier, id: sql.ID("abc")}}},
		{"ABC", []scanResult{{tok: token.Identifier, id: sql.ID("abc")}}},
		{`"Quoted"`, []scanResult{{tok: token.Identifier, id: sql.QuotedID("Quoted")}}},
		{"[abc]", []scanResult{{tok: token.Identifier, id: sql.ID("abc")}}},
		{"set", []scanResult{{tok: token.Reserved, id: sql.SET}}},
		{"NULL", []scanResult{{tok: token.Reserved, id: sql.NULL}}},
		{"1 + 2", []scanResult{
			{tok: token.Number, str: "1"},
			{tok: token.Plus},
			{tok: token.Number, str: "2"},
		}},
		{"1+2", []scanResult{
			{tok: token.Number, str: "1"},
			{tok: token.Plus},
			{tok: token.Number, str: "2"},
		}},
		{"a <= b", []scanResult{
			{tok: token.Identifier, id: sql.ID("a")},
			{tok: token.LessEqual},
			{tok: token.Identifier, id: sql.ID("b")},
		}},
		{"a <> b != c == d", []scanResult{
			{tok: token.Identifier, id: sql.ID("a")},
			{tok: token.LessGreater},
			{tok: token.Identifier, id: sql.ID("b")},
			{tok: token.BangEqual},
			{tok: token.Identifier, id: sql.ID("c")},
			{tok: token.EqualEqual},
			{tok: token.Identifier, id: sql.ID("d")},
		}},
		{"set x = 5;", []scanResult{
			{tok: token.Reserved, id: sql.SET},
			{tok: token.Identifier, id: sql.ID("x")},
			{tok: token.Equal},
			{tok: token.Number, str: "5"},
			{tok: token.EndOfStatement},
		}},
		{"(1)", []scanResult{
			{tok: token.LParen},
			{tok: token.Number, str: "1"},
			{tok: token.RParen},
		}},
		{"1 -- comment\n + 2", []scanResult{
			{tok: token.Number, str: "1"},
			{tok: token.Plus},
			{tok: token.Number, str: "2"},
		}},
		{"1 /* comment\n more */ + 2", []scanResult{
			{tok: token.Number, str: "1"},
			{tok: token.Plus},
			{tok: token.Number, str: "2"},
		}},
		{"1 - 2", []scanResult{
			{tok: token.Number, str: "1"},
			{tok: token.Minus},
			{tok: token.Number, str: "2"},
		}},
	}

	for _, c := range cases {
		results := scanAll(t, c.src)
		if len(results) != len(c.want) {
			t.Errorf("Scan(%q) got %d tokens want %d", c.src, len(results), len(c.want))
			continue
		}
		for i, r := range results {
			w := c.want[i]
			if r.tok != w.tok {
				t.Errorf("Scan(%q)[%d] got %s want %s", c.src, i,
					token.Format(r.tok), token.Format(w.tok))
			} else if r.tok == token.Identifier || r.tok == token.Reserved {
				if r.id != w.id {
					t.Errorf("Scan(%q)[%d] got %s want %s", c.src, i, r.id, w.id)
				}
			} else if r.tok == token.Number || r.tok == token.String {
				if r.str != w.str {
					t.Errorf("Scan(%q)[%d] got %q want %q", c.src, i, r.str, w.str)
				}
			}
		}
	}
}

func TestScanErrors(t *testing.T) {
	cases := []string{
		"'abc",
		`"abc`,
		"@",
		"=!",
	}

	for _, src := range cases {
		var s scanner.Scanner
		s.Init(strings.NewReader(src), "test")

		var sctx scanner.ScanCtx
		for {
			s.Scan(&sctx)
			if sctx.Token == token.EOF {
				t.Errorf("Scan(%q) did not fail", src)
				break
			}
			if sctx.Token == token.Error {
				break
			}
		}
	}
}
