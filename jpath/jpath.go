// Package jpath parses the subset of JSONPath that names a single node of a
// JSON value: a root marker followed by member names and array indices.
package jpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/jview"
)

/*
Grammar:

   path = "$" { step }
   step = "." name
   step = "[" name "]"
   step = "[" INDEX "]"
   name = WORD
   name = "'" QTEXT "'"
   name = JSTRING

   WORD = RE `\w+`
  QTEXT = RE `[^']*`
  INDEX = RE `\d+`
JSTRING = { a JSON string literal in double quotes }

The other forms of JSONPath (wildcards, recursive descent, slices, unions,
filters, and scripts) select sets of nodes, and are reported as errors.
*/

// A Kind identifies the type of a path step.
type Kind byte

const (
	Member Kind = iota + 1 // object member by name
	Index                  // array element by offset
)

func (k Kind) String() string {
	switch k {
	case Member:
		return "member"
	case Index:
		return "index"
	}
	return "invalid"
}

// A Step is a single step of a path.
type Step struct {
	Kind  Kind
	Name  string // for Member
	Index int    // for Index
	Pos   int    // offset of the step in the input
}

// A Path is a parsed path expression. An empty Path denotes the root.
type Path []Step

// String renders p in canonical form. Names that are words use dot notation,
// and all others use bracketed JSON strings.
func (p Path) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range p {
		switch {
		case s.Kind == Index:
			fmt.Fprintf(&buf, "[%d]", s.Index)
		case wordRE.MatchString(s.Name) && len(wordRE.FindString(s.Name)) == len(s.Name):
			buf.WriteString(".")
			buf.WriteString(s.Name)
		default:
			fmt.Fprintf(&buf, "[%s]", jview.Quote(s.Name))
		}
	}
	return buf.String()
}

// An Error reports a syntax error in a path.
type Error struct {
	Pos     int // offset in the input
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s at position %d", e.Message, e.Pos) }

// Parse parses s as a path. Leading and trailing whitespace is ignored.
func Parse(s string) (Path, error) {
	p := &parser{src: strings.TrimSpace(s)}
	if !p.accept("$") {
		return nil, p.fail("missing root marker")
	}
	var out Path
	for p.pos < len(p.src) {
		step, err := p.step()
		if err != nil {
			return nil, err
		}
		out = append(out, step)
	}
	return out, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) rest() string { return p.src[p.pos:] }

func (p *parser) accept(tok string) bool {
	if strings.HasPrefix(p.rest(), tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) fail(msg string, args ...any) error {
	return &Error{Pos: p.pos, Message: fmt.Sprintf(msg, args...)}
}

func (p *parser) step() (Step, error) {
	start := p.pos
	switch {
	case p.accept(".."):
		p.pos = start
		return Step{}, p.fail("recursive descent is not supported")

	case p.accept("."):
		if strings.HasPrefix(p.rest(), "*") {
			return Step{}, p.fail("wildcards are not supported")
		}
		name, err := p.name()
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: Member, Name: name, Pos: start}, nil

	case p.accept("["):
		var step Step
		if m := indexRE.FindString(p.rest()); m != "" {
			n, err := strconv.Atoi(m)
			if err != nil {
				return Step{}, p.fail("invalid index %q", m)
			}
			p.pos += len(m)
			step = Step{Kind: Index, Index: n, Pos: start}
		} else if err := p.unsupported(); err != nil {
			return Step{}, err
		} else {
			name, err := p.name()
			if err != nil {
				return Step{}, err
			}
			step = Step{Kind: Member, Name: name, Pos: start}
		}
		if strings.HasPrefix(p.rest(), ":") || strings.HasPrefix(p.rest(), ",") {
			return Step{}, p.fail("slices and unions are not supported")
		}
		if !p.accept("]") {
			return Step{}, p.fail("missing close bracket")
		}
		return step, nil
	}
	return Step{}, p.fail("invalid path step")
}

// unsupported reports an error if the bracketed value at p selects more than
// one node.
func (p *parser) unsupported() error {
	r := p.rest()
	switch {
	case strings.HasPrefix(r, "*"):
		return p.fail("wildcards are not supported")
	case strings.HasPrefix(r, "?("):
		return p.fail("filters are not supported")
	case strings.HasPrefix(r, "("):
		return p.fail("scripts are not supported")
	case strings.HasPrefix(r, "-"), strings.HasPrefix(r, ":"):
		return p.fail("negative indices and slices are not supported")
	}
	return nil
}

func (p *parser) name() (string, error) {
	r := p.rest()
	if m := wordRE.FindString(r); m != "" {
		p.pos += len(m)
		return m, nil
	}
	if m := quoteRE.FindStringSubmatch(r); m != nil {
		p.pos += len(m[0])
		return m[1], nil
	}
	if m := dquoteRE.FindString(r); m != "" {
		dec, err := jview.Unquote(m)
		if err != nil {
			return "", p.fail("invalid quoted name: %v", err)
		}
		p.pos += len(m)
		return string(dec), nil
	}
	return "", p.fail("invalid name")
}

var (
	wordRE  = regexp.MustCompile(`^\w+`)
	indexRE = regexp.MustCompile(`^\d+`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)

	dquoteRE = regexp.MustCompile(`^"(?:[^"\\]|\\.)*"`)
)
