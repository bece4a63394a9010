// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/jview"
)

// Options control the syntax accepted by the parser. A zero Options accepts
// only standard JSON.
type Options struct {
	AllowComments       bool // accept /* block */ and // line comments
	AllowTrailingCommas bool // accept a comma after the last member or element
}

// ParseSingle parses a single JSON value from r, which must contain exactly
// one value and nothing else but whitespace. In case of a syntax error, the
// returned error has concrete type *jview.SyntaxError.
func ParseSingle(r io.Reader) (Value, error) { return Options{}.ParseSingle(r) }

// ParseSingle parses a single JSON value from r, according to the settings
// of o.
func (o Options) ParseSingle(r io.Reader) (Value, error) {
	st := jview.NewStream(r)
	st.AllowComments(o.AllowComments)
	st.AllowTrailingCommas(o.AllowTrailingCommas)

	h := new(parseHandler)
	if err := st.ParseSingle(h); err != nil {
		return nil, err
	} else if !h.done {
		return nil, errors.New("incomplete value")
	}
	return h.root, nil
}

// A frame is a partially-constructed object or array.
type frame struct {
	obj  Object
	arr  Array
	keys map[string]int // object member offsets by key; nil for arrays
	key  string         // the key of the current member
}

// A parseHandler implements the jview.Handler interface to construct abstract
// syntax trees for JSON values.
type parseHandler struct {
	stk  []*frame
	root Value
	done bool
}

func (h *parseHandler) top() *frame { return h.stk[len(h.stk)-1] }

func (h *parseHandler) pop() *frame {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) push(f *frame) { h.stk = append(h.stk, f) }

// reduceValue adds a complete value to the container atop the stack, or
// records it as the root if the stack is empty.
//
// When an object has more than one member with the same key, the last value
// wins, but the member keeps the position of the first occurrence.
func (h *parseHandler) reduceValue(v Value) error {
	if len(h.stk) == 0 {
		h.root, h.done = v, true
		return nil
	}
	f := h.top()
	if f.keys == nil {
		f.arr = append(f.arr, v)
	} else if i, ok := f.keys[f.key]; ok {
		f.obj[i].Value = v
	} else {
		f.keys[f.key] = len(f.obj)
		f.obj = append(f.obj, &Member{Key: f.key, Value: v})
	}
	return nil
}

func (h *parseHandler) BeginObject(loc jview.Anchor) error {
	h.push(&frame{obj: Object{}, keys: make(map[string]int)})
	return nil
}

func (h *parseHandler) EndObject(loc jview.Anchor) error {
	return h.reduceValue(h.pop().obj)
}

func (h *parseHandler) BeginArray(loc jview.Anchor) error {
	h.push(&frame{arr: Array{}})
	return nil
}

func (h *parseHandler) EndArray(loc jview.Anchor) error {
	return h.reduceValue(h.pop().arr)
}

func (h *parseHandler) BeginMember(loc jview.Anchor) error {
	key, err := jview.Unquote(string(loc.Text()))
	if err != nil {
		return fmt.Errorf("invalid key at %v: %w", loc.Location().First, err)
	}
	h.top().key = string(key)
	return nil
}

func (h *parseHandler) EndMember(loc jview.Anchor) error { return nil }

func (h *parseHandler) Value(loc jview.Anchor) error {
	text := string(loc.Text())
	switch loc.Token() {
	case jview.String:
		dec, err := jview.Unquote(text)
		if err != nil {
			return fmt.Errorf("invalid string at %v: %w", loc.Location().First, err)
		}
		return h.reduceValue(String(dec))
	case jview.Integer, jview.Number:
		// Literals too large for a float64 become infinite, and serialize as
		// null. Values too small round toward zero.
		v, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("invalid number at %v: %w", loc.Location().First, err)
		}
		return h.reduceValue(Number(v))
	case jview.True, jview.False:
		return h.reduceValue(Bool(loc.Token() == jview.True))
	case jview.Null:
		return h.reduceValue(Null{})
	default:
		return fmt.Errorf("unknown value %v", loc.Token())
	}
}

func (h *parseHandler) EndOfInput(loc jview.Anchor) {}
