// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jview implements a JSON scanner and parser that report the byte
// offset of every syntax error, as the foundation of an interactive JSON
// inspection tool.
//
// # Scanning
//
// A Scanner splits its input into tokens. Each call to Next advances to the
// next token, whose type, text, and Location are then available:
//
//	s := jview.NewScanner(input)
//	for s.Next() == nil {
//	   fmt.Println(s.Token(), s.Location())
//	}
//
// Next reports io.EOF once the input is consumed, and a *SyntaxError if the
// input contains a malformed token.
//
// # Parsing
//
// A Stream drives a Handler through the structure of its input. ParseSingle
// requires the input to hold exactly one value, which is the common case for
// a document being edited:
//
//	st := jview.NewStream(strings.NewReader(text))
//	if err := st.ParseSingle(h); err != nil {
//	   return err // a *jview.SyntaxError
//	}
//
// Parse and ParseOne handle inputs made of several concatenated values.
//
// By default only standard JSON is accepted. AllowComments admits /* block */
// and // line comments, and AllowTrailingCommas admits a comma after the last
// member of an object or element of an array.
//
// Position converts a byte offset into a 1-based line number and a 0-based
// column, for reporting.
//
// # Errors
//
// The text of a *SyntaxError has one of two shapes. If the input ended before
// a value was complete, the text contains "unexpected end of input".
// Otherwise it contains "at position N", where N is the byte offset of the
// offending input. The diag package recovers these offsets from error text.
//
// # Handlers
//
// The Handler interface accepts parser events from a Stream. The methods of
// a handler correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// Each method is passed an Anchor value that can be used to retrieve location
// and type information. See the comments on the Handler type for the meaning
// of each method's anchor value. The Anchor passed to a handler method is only
// valid for the duration of that method call; the handler must copy any data
// it needs to retain beyond the lifetime of the call.
//
// The parser ensures that corresponding Begin and End methods are correctly
// paired, or that a SyntaxError is reported.
package jview
