// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A pair of
// \u escapes forming a UTF-16 surrogate pair decodes to a single rune.
// Invalid escapes and unpaired surrogates are replaced by the Unicode
// replacement rune. Unquote reports an error for an incomplete escape
// sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the next rune after the escape to figure out what to
		// substitute. There should not be errors here, but if there are, insert
		// replacement runes (utf8.RuneError == '\ufffd').
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			v, rest, err := decodeU4(src)
			if err != nil {
				return nil, err
			}
			src = rest
			if hi := v; utf16.IsSurrogate(hi) {
				v = utf8.RuneError
				if t, ok := cutEscapeU(src); ok {
					if lo, tail, err := decodeU4(t); err == nil {
						if dr := utf16.DecodeRune(hi, lo); dr != utf8.RuneError {
							v, src = dr, tail
						}
					}
				}
			}
			dec = utf8.AppendRune(dec, v)
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// cutEscapeU reports whether src begins with `\u`, and if so returns the
// remainder of src after it.
func cutEscapeU(src mem.RO) (mem.RO, bool) {
	if src.Len() >= 2 && src.At(0) == '\\' && src.At(1) == 'u' {
		return src.SliceFrom(2), true
	}
	return src, false
}

// decodeU4 decodes the four hex digits of a \u escape at the front of src.
// Invalid digits decode as the replacement rune.
func decodeU4(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	v, err := parseHex(src.SliceTo(4))
	if err != nil {
		return utf8.RuneError, src.SliceFrom(4), nil
	}
	return rune(v), src.SliceFrom(4), nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
