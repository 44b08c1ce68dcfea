package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Alanissocool/plain-lang/pkg/ast"
)

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want ast.Statement
	}{
		{"set", "set x to 5", ast.Set("x", ast.Int(5))},
		{"set with article and period", "set the x to 5.", ast.Set("x", ast.Int(5))},
		{"leading zeros", "set x to 007", ast.Set("x", ast.Int(7))},
		{"set string", `set greeting to "hi there"`, ast.Set("greeting", ast.Str("hi there"))},
		{"add", "add 3 to the x", ast.Add(ast.Int(3), "x")},
		{"subtract", "subtract 2 from x", ast.Sub(ast.Int(2), "x")},
		{"multiply", "multiply the x by it", ast.Mul("x", ast.It())},
		{"show", "show the x", ast.Show(ast.ID("x"))},
		{"show on the screen", "show on the screen the x", ast.Show(ast.ID("x"))},
		{"show on screen", "show on screen x", ast.Show(ast.ID("x"))},
		{"print", `print the "hi"`, ast.Show(ast.Str("hi"))},
		{"display result", "display the x result", ast.Show(ast.ID("x"))},
		{"pronoun", "show it", ast.Show(ast.It())},
		{
			"if",
			"if the x is greater than 3 then show x",
			ast.If(ast.Gt(ast.ID("x"), ast.Int(3)), ast.Show(ast.ID("x"))),
		},
		{
			"if equal string",
			`if x is equal to "a" then show x`,
			ast.If(ast.Eq(ast.ID("x"), ast.Str("a")), ast.Show(ast.ID("x"))),
		},
		{
			"chained comparisons associate right",
			"show x is less than y is greater than 2",
			ast.Show(ast.Lt(ast.ID("x"), ast.Gt(ast.ID("y"), ast.Int(2)))),
		},
		{
			"sequence nests right",
			"set x to 5 then add 3 to x then show x",
			ast.Seq(ast.Set("x", ast.Int(5)), ast.Add(ast.Int(3), "x"), ast.Show(ast.ID("x"))),
		},
		{
			"if branch takes the rest of the chain",
			"if x is greater than 3 then show x then show y",
			ast.If(ast.Gt(ast.ID("x"), ast.Int(3)), ast.Seq(ast.Show(ast.ID("x")), ast.Show(ast.ID("y")))),
		},
		{
			"count loop skips filler",
			"count to 3 and when you are done display the x",
			ast.Count(ast.Int(3), ast.Show(ast.ID("x"))),
		},
		{
			"count loop discards statements before the body",
			"set x to 0 then count to 3 then add 1 to x then display x",
			ast.Seq(ast.Set("x", ast.Int(0)), ast.Count(ast.Int(3), ast.Show(ast.ID("x")))),
		},
		{
			"count loop body keeps its chain",
			"count to 2 and show x then show y",
			ast.Count(ast.Int(2), ast.Seq(ast.Show(ast.ID("x")), ast.Show(ast.ID("y")))),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"", "empty line"},
		{"   ", "empty line"},
		{"@#$", "empty line"},
		{"set x", "unexpected end of tokens"},
		{"set x 5", "expected 'to'"},
		{"set 5 to x", "expected identifier"},
		{"add 3 x", "expected 'to'"},
		{"add 3 to", "unexpected end of tokens"},
		{"subtract 3 to x", "expected 'from'"},
		{"multiply x 2", "expected 'by'"},
		{"show on x", "expected 'screen'"},
		{"if x show x", "expected 'then'"},
		{"if x then", "unexpected end of tokens"},
		{"show x then", "expected statement after 'then'"},
		{"hello world", "unknown statement"},
		{"Set x to 5", "unknown statement"},
		{"show x is bigger than 3", "expected comparison"},
		{"show x is greater 3", "expected 'than'"},
		{"show x is equal 3", "expected 'to'"},
		{"show x is", "unexpected end of tokens"},
		{"show then", "unknown atom"},
		{"show x y", "extra tokens"},
		{"show x. show y", "extra tokens"},
		{"count 3 show x", "expected 'to'"},
		{"count to 3 and add 1 to x", "unexpected end of tokens"},
		{"show 99999999999999999999", "integer literal out of range: 99999999999999999999"},
	}
	for _, tc := range tests {
		stmt, err := Parse(tc.src)
		if err == nil {
			t.Fatalf("%q: expected error %q, got tree %#v", tc.src, tc.want, stmt)
		}
		if stmt != nil {
			t.Fatalf("%q: expected no tree alongside the error, got %#v", tc.src, stmt)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%q: expected *ParseError, got %T", tc.src, err)
		}
		if parseErr.Message != tc.want {
			t.Fatalf("%q: expected error %q, got %q", tc.src, tc.want, parseErr.Message)
		}
	}
}

func TestParseStrictLexing(t *testing.T) {
	if _, err := Parse("show x @"); err != nil {
		t.Fatalf("lenient parse failed: %v", err)
	}
	_, err := ParseWithOptions("show x @", Options{StrictLexing: true})
	if err == nil || err.Error() != `unrecognized input "@"` {
		t.Fatalf("expected unrecognized input error, got %v", err)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	sources := []string{
		"set x to 5",
		`set the greeting to "hello"`,
		"add 3 to x then subtract it from y then multiply z by 2",
		"show on the screen x is equal to 4",
		"if x is less than 10 then show x then show y",
		"count to 3 and when you are done display the x",
	}
	for _, src := range sources {
		first, err := Parse(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		rendered := ast.Render(first)
		second, err := Parse(rendered)
		if err != nil {
			t.Fatalf("%q rendered as %q: %v", src, rendered, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%q did not survive rendering as %q (-first +second):\n%s", src, rendered, diff)
		}
	}
}
