// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"testing"

	"github.com/creachadair/jview/tree"
	"github.com/google/go-cmp/cmp"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		path tree.Path
		want string
	}{
		{nil, "$"},
		{tree.Path{"a", 0, "b c"}, `$.a[0]["b c"]`},
		{tree.Path{"x_1", "0"}, `$.x_1.0`},
		{tree.Path{`say "hi"`}, `$["say \"hi\""]`},
		{tree.Path{""}, `$[""]`},
		{tree.Path{"日本"}, `$["日本"]`},
	}
	for _, test := range tests {
		if got := test.path.String(); got != test.want {
			t.Errorf("String %#v: got %q, want %q", test.path, got, test.want)
		}
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		want  tree.Path
	}{
		{"$", tree.Path{}},
		{" $.a ", tree.Path{"a"}},
		{"$.store.book[0].title", tree.Path{"store", "book", 0, "title"}},
		{`$['store']["odd key"][2]`, tree.Path{"store", "odd key", 2}},
		{`$["a\nb"]`, tree.Path{"a\nb"}},
	}
	for _, test := range tests {
		got, err := tree.ParsePath(test.input)
		if err != nil {
			t.Errorf("ParsePath %q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParsePath %q (-want, +got):\n%s", test.input, diff)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, input := range []string{
		"", "a.b", "$..a", "$.*", "$[*]", "$[1:2]", "$[-1]", "$[1,2]", "$[?(@.x)]", "$[(1)]",
	} {
		if got, err := tree.ParsePath(input); err == nil {
			t.Errorf("ParsePath %q: got %v, want error", input, got)
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	paths := []tree.Path{
		{},
		{"a", 0, "b c"},
		{"0", 0},
		{`q"uote`, "back\\slash", 12},
		{"tab\there", "é"},
	}
	for _, p := range paths {
		got, err := tree.ParsePath(p.String())
		if err != nil {
			t.Errorf("ParsePath %q: %v", p.String(), err)
			continue
		}
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("Round trip %q (-want, +got):\n%s", p.String(), diff)
		}
	}
}

func TestPathChild(t *testing.T) {
	base := tree.Path{"a"}
	x := base.Child("x")
	y := base.Child(1)
	if x.String() != "$.a.x" || y.String() != "$.a[1]" {
		t.Errorf("Child: got %v, %v", x, y)
	}
	if !x.Parent().Equal(base) {
		t.Errorf("Parent: got %v, want %v", x.Parent(), base)
	}
	if got := tree.Path(nil).Parent(); len(got) != 0 {
		t.Errorf("Parent of root: got %v", got)
	}
}
