// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON string, including the enclosing double
// quotation marks.
func Quote(src mem.RO) []byte {
	return AppendQuote(make([]byte, 0, src.Len()+2), src)
}

// AppendQuote appends the JSON string encoding of src to dst, including the
// enclosing double quotation marks, and returns the extended slice.
//
// Control characters, quotation marks and backslashes are escaped. Other
// runes are copied through, and invalid UTF-8 is replaced by U+FFFD.
func AppendQuote(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		if r < utf8.RuneSelf {
			switch {
			case r < ' ':
				if b := controlEsc[r]; b != 0 {
					dst = append(dst, '\\', b)
				} else {
					dst = append(dst, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			case r == '\\' || r == '"':
				dst = append(dst, '\\', byte(r))
			default:
				dst = append(dst, byte(r))
			}
			continue
		}
		dst = utf8.AppendRune(dst, r)
	}
	return append(dst, '"')
}
