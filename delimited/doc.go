// Package delimited reads and writes records as delimited text.
//
// The engine runs against a compiled codec.Schema: Writer formats each field
// with its codec, encodes it delimiter-safe, and emits one line per record;
// Reader splits and decodes each line, parses fields positionally, and
// yields records lazily.
//
// # Wire Format
//
// One record per line; fields joined by the configured separator; an
// optional leading header line of external field names. A line terminator
// never appears literally inside a field: the escaping discipline rewrites
// it as an escape sequence, and the quoting discipline carries it inside a
// quoted field, which the reader reassembles from continuation lines.
//
// # Escaping Disciplines
//
// With Config.Escape set, occurrences of the separator and the escape
// character are escape-prefixed and line terminators become the sequences
// n and r:
//
//	a,b   →  a\,b        (sep ',', escape '\')
//	a\nb  →  a\nb        (the two-character sequence, not a newline)
//
// Without an escape character, fields wrap in the quote character when they
// contain the separator, a quote, or a line terminator, and embedded quotes
// double:
//
//	a,b   →  "a,b"
//	say " →  "say """
//
// # Streaming
//
// Writer consumes record sequences incrementally and Reader is lazy and
// forward-only, so arbitrarily large inputs stream through in constant
// memory. Per-line read errors are yielded inline and do not corrupt
// subsequent reads.
package delimited
