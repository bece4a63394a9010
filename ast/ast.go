// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values,
// and a parser that constructs syntax trees from JSON source.
//
// Values are immutable once constructed by the parser. Each parse produces a
// new value graph that shares no structure with any previous one.
package ast

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jview"
)

// A Value is an arbitrary JSON value: one of Object, Array, String, Number,
// Bool, or Null. A *Member is also a Value, to support traversal.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// An Object is a collection of key-value members, in the order of their first
// appearance in the source.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len returns the number of members in o.
func (o Object) Len() int { return len(o) }

// JSON satisfies the Value interface.
func (o Object) JSON() string { return string(appendJSON(nil, o, "", 0)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// JSON satisfies the Value interface. The encoding of a member is its quoted
// key and value separated by a colon.
func (m *Member) JSON() string {
	buf := jview.AppendQuote(nil, m.Key)
	buf = append(buf, ':')
	return string(appendJSON(buf, m.Value, "", 0))
}

// An Array is a sequence of values.
type Array []Value

// Len returns the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string { return string(appendJSON(nil, a, "", 0)) }

// A String is a string value. The value holds the decoded string contents.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return jview.Quote(string(s)) }

// A Number is a numeric value, stored with the precision of a float64.
type Number float64

// JSON satisfies the Value interface.
func (n Number) JSON() string { return FormatNumber(float64(n)) }

// IsInt reports whether n has an integer value.
func (n Number) IsInt() bool { return float64(n) == math.Trunc(float64(n)) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// Indent returns the JSON encoding of v with one level of indentation per
// level of nesting, using unit as the indentation string. Object keys are
// followed by ": ". Empty objects and arrays are rendered as {} and [].
// If unit == "", Indent returns v.JSON().
func Indent(v Value, unit string) string {
	return string(appendJSON(nil, v, unit, 0))
}

func appendJSON(buf []byte, v Value, unit string, depth int) []byte {
	switch t := v.(type) {
	case Object:
		if len(t) == 0 {
			return append(buf, "{}"...)
		}
		buf = append(buf, '{')
		for i, m := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendBreak(buf, unit, depth+1)
			buf = jview.AppendQuote(buf, m.Key)
			buf = append(buf, ':')
			if unit != "" {
				buf = append(buf, ' ')
			}
			buf = appendJSON(buf, m.Value, unit, depth+1)
		}
		buf = appendBreak(buf, unit, depth)
		return append(buf, '}')

	case Array:
		if len(t) == 0 {
			return append(buf, "[]"...)
		}
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendBreak(buf, unit, depth+1)
			buf = appendJSON(buf, elt, unit, depth+1)
		}
		buf = appendBreak(buf, unit, depth)
		return append(buf, ']')

	case String:
		return jview.AppendQuote(buf, string(t))
	case nil:
		return append(buf, "null"...)
	default:
		return append(buf, v.JSON()...)
	}
}

func appendBreak(buf []byte, unit string, depth int) []byte {
	if unit == "" {
		return buf
	}
	buf = append(buf, '\n')
	for range depth {
		buf = append(buf, unit...)
	}
	return buf
}

// FormatNumber renders f in the shortest form that round-trips, following the
// conventions of JavaScript number-to-string conversion: values whose
// magnitude is below 1e-6 or at least 1e21 use exponent notation ("1e-7",
// "1.5e+21"), and all others use plain decimal notation. Negative zero
// renders as "0", and non-finite values render as "null".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return "null"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
