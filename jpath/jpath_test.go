package jpath_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jview/jpath"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  jpath.Path
	}{
		{"$", nil},
		{" $ ", nil},
		{"$.store.book[0].title", jpath.Path{
			{Kind: jpath.Member, Name: "store", Pos: 1},
			{Kind: jpath.Member, Name: "book", Pos: 7},
			{Kind: jpath.Index, Index: 0, Pos: 12},
			{Kind: jpath.Member, Name: "title", Pos: 15},
		}},
		{`$['apple sauce']["say \"hi\""][12]`, jpath.Path{
			{Kind: jpath.Member, Name: "apple sauce", Pos: 1},
			{Kind: jpath.Member, Name: `say "hi"`, Pos: 16},
			{Kind: jpath.Index, Index: 12, Pos: 30},
		}},
		{`$["a\tb"][""]`, jpath.Path{
			{Kind: jpath.Member, Name: "a\tb", Pos: 1},
			{Kind: jpath.Member, Name: "", Pos: 9},
		}},
		{`$.'odd key'`, jpath.Path{{Kind: jpath.Member, Name: "odd key", Pos: 1}}},
		{`$[word]`, jpath.Path{{Kind: jpath.Member, Name: "word", Pos: 1}}},
	}
	for _, test := range tests {
		got, err := jpath.Parse(test.input)
		if err != nil {
			t.Errorf("Parse %q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse %q: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"$", "$"},
		{"$.a[0].b", "$.a[0].b"},
		{"$['a b'][3]", `$["a b"][3]`},
		{`$["x"]['y']`, "$.x.y"},
		{`$["a.b"]`, `$["a.b"]`},
		{`$["a\nb"]`, `$["a\nb"]`},
	}
	for _, test := range tests {
		p, err := jpath.Parse(test.input)
		if err != nil {
			t.Fatalf("Parse %q: %v", test.input, err)
		}
		if got := p.String(); got != test.want {
			t.Errorf("Parse %q: got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "missing root marker at position 0"},
		{"a.b", "missing root marker at position 0"},
		{"$.", "invalid name at position 2"},
		{"$[", "invalid name at position 2"},
		{"$[1", "missing close bracket at position 3"},
		{`$["abc]`, "invalid name at position 2"},
		{"$x", "invalid path step at position 1"},
		{"$..author", "recursive descent is not supported at position 1"},
		{"$.store.*", "wildcards are not supported at position 8"},
		{"$.book[*]", "wildcards are not supported at position 7"},
		{"$.book[?(@.isbn)]", "filters are not supported at position 7"},
		{"$.book[(@.length-1)]", "scripts are not supported at position 7"},
		{"$.book[-1]", "negative indices and slices are not supported at position 7"},
		{"$.book[0:2]", "slices and unions are not supported at position 8"},
		{"$.book[0,1]", "slices and unions are not supported at position 8"},
	}
	for _, test := range tests {
		p, err := jpath.Parse(test.input)
		if err == nil {
			t.Errorf("Parse %q: got %v, want error", test.input, p)
			continue
		}
		var perr *jpath.Error
		if !errors.As(err, &perr) {
			t.Errorf("Parse %q: got %T, want *jpath.Error", test.input, err)
		}
		if got := err.Error(); got != test.want {
			t.Errorf("Parse %q: got %q, want %q", test.input, got, test.want)
		}
	}
}
