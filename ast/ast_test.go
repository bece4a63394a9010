// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"math"
	"testing"

	"github.com/creachadair/jview/ast"
)

func TestString(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "hi"\`), `"say \"hi\"\\"`},

		{ast.Number(-0.00239), `-0.00239`},
		{ast.Number(0), `0`},
		{ast.Number(15), `15`},
		{ast.Number(-25), `-25`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Number(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", ast.Null{}),
		}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", ast.String("Dennis")),
			ast.Field("age", ast.Number(37)),
			ast.Field("isOld", ast.Bool(false)),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.Array{
				ast.Number(5),
				ast.Number(10),
				ast.Bool(true),
			}),
			ast.Field("page", ast.Object{
				ast.Field("token", ast.String("xyz-pdq-zvm")),
				ast.Field("count", ast.Number(100)),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},

		{ast.Field("k", ast.Array{}), `"k":[]`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestIndent(t *testing.T) {
	v := ast.Object{
		ast.Field("b", ast.Number(1)),
		ast.Field("a", ast.Array{ast.Bool(true), ast.Object{}, ast.Array{}}),
		ast.Field("c", ast.Object{ast.Field("d", ast.Null{})}),
	}
	const want = `{
  "b": 1,
  "a": [
    true,
    {},
    []
  ],
  "c": {
    "d": null
  }
}`
	if got := ast.Indent(v, "  "); got != want {
		t.Errorf("Indent:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if got, want := ast.Indent(v, ""), v.JSON(); got != want {
		t.Errorf("Indent with no unit: got %s, want %s", got, want)
	}
	if got := ast.Indent(ast.String("x"), "  "); got != `"x"` {
		t.Errorf("Indent(string): got %s, want %q", got, `"x"`)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1.5, "-1.5"},
		{0.1, "0.1"},
		{123456789, "123456789"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e21, "1.5e+21"},
		{-2e300, "-2e+300"},
		{0.000001, "0.000001"},
		{0.0000001, "1e-7"},
		{1.25e-10, "1.25e-10"},
		{5e-324, "5e-324"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
		{math.NaN(), "null"},
	}
	for _, test := range tests {
		if got := ast.FormatNumber(test.input); got != test.want {
			t.Errorf("FormatNumber(%v): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestNumberIsInt(t *testing.T) {
	for _, v := range []float64{0, 1, -3, 1e10} {
		if !ast.Number(v).IsInt() {
			t.Errorf("IsInt(%v): got false, want true", v)
		}
	}
	for _, v := range []float64{0.5, -3.25, 1e-9} {
		if ast.Number(v).IsInt() {
			t.Errorf("IsInt(%v): got true, want false", v)
		}
	}
}
