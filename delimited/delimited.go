package delimited

import (
	"io"
	"iter"

	"github.com/typerow/typerow/codec"
)

// Write streams a record sequence to w as delimited text, prefixed by a
// header row when cfg.Header is set. Records are consumed incrementally.
func Write(schema *codec.Schema, records iter.Seq[codec.Record], w io.Writer, cfg Config) error {
	wr, err := NewWriter(w, schema, cfg)
	if err != nil {
		return err
	}
	return wr.WriteAll(records)
}

// Read returns a lazy record sequence over r, consuming and checking the
// header first when cfg.Header is set. The sequence yields per-line errors
// inline; see Reader.Records.
func Read(schema *codec.Schema, r io.Reader, cfg Config) (iter.Seq2[codec.Record, error], error) {
	rd, err := NewReader(r, schema, cfg)
	if err != nil {
		return nil, err
	}
	return rd.Records(), nil
}
