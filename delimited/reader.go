package delimited

import (
	"io"
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/typerow/typerow"
	"github.com/typerow/typerow/codec"
	"github.com/typerow/typerow/errors"
)

// Reader streams records from delimited text. It is forward-only and
// single-pass: it tracks the current line and must not be shared across
// goroutines without external synchronization.
//
// A parse failure on one record does not corrupt the stream; the next Read
// continues with the following line, so callers choose per occurrence
// whether to abort, skip, or collect errors.
type Reader struct {
	src        typerow.LineSource
	schema     *codec.Schema
	cfg        Config
	line       int // last consumed physical line, 1-based
	headerDone bool
}

// NewReader creates a Reader over an io.Reader. The configuration is
// validated up front.
func NewReader(r io.Reader, schema *codec.Schema, cfg Config) (*Reader, error) {
	return NewReaderFrom(newLineSource(r), schema, cfg)
}

// NewReaderFrom creates a Reader over any line source.
func NewReaderFrom(src typerow.LineSource, schema *codec.Schema, cfg Config) (*Reader, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Reader{src: src, schema: schema, cfg: cfg}, nil
}

// Line returns the number of the last physical line consumed.
func (r *Reader) Line() int { return r.line }

// ReadHeader consumes the header line and checks the decoded names against
// the schema's external names: exact name and order, not set membership.
// Calling it explicitly suppresses the automatic check on the first Read.
func (r *Reader) ReadHeader() error {
	if r.headerDone {
		return nil
	}
	r.headerDone = true

	fields, _, err := r.logicalLine()
	if err == io.EOF {
		return errors.New(errors.PhaseRead, errors.KindHeaderMismatch).
			Detail("missing header line").
			Build()
	}
	if err != nil {
		return err
	}

	expected := r.schema.Names()
	n := max(len(fields), len(expected))
	for i := 0; i < n; i++ {
		var want, got string
		if i < len(expected) {
			want = expected[i]
		}
		if i < len(fields) {
			got = fields[i]
		}
		if want != got {
			return errors.HeaderMismatch(i+1, want, got)
		}
	}
	return nil
}

// Read returns the next record. The first call consumes the header when
// the configuration expects one. io.EOF signals the end of input; any
// other error is positioned at the failing line and field.
func (r *Reader) Read() (codec.Record, error) {
	if r.cfg.Header && !r.headerDone {
		if err := r.ReadHeader(); err != nil {
			return nil, err
		}
	}

	fields, startLine, err := r.logicalLine()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		debugf("line rejected", zap.Int("line", startLine), zap.Error(err))
		return nil, err
	}

	if len(fields) != r.schema.Len() {
		err := errors.WithPosition(
			errors.ArityMismatch(errors.PhaseRead, len(fields), r.schema.Len()),
			startLine, 0)
		debugf("line rejected", zap.Int("line", startLine), zap.Error(err))
		return nil, err
	}

	rec := make(codec.Record, len(fields))
	for i, col := range r.schema.Columns() {
		v, err := col.Codec.Parse(fields[i])
		if err != nil {
			err := errors.WithPosition(err, startLine, i+1)
			debugf("field rejected", zap.Int("line", startLine), zap.Int("field", i+1), zap.Error(err))
			return nil, err
		}
		rec[i] = v
	}
	return rec, nil
}

// Records returns a lazy, single-pass sequence over the remaining records.
// Per-line errors are yielded inline with a nil record; the sequence
// continues past them until the consumer stops pulling or input ends.
func (r *Reader) Records() iter.Seq2[codec.Record, error] {
	return func(yield func(codec.Record, error) bool) {
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

// logicalLine reads one logical record line, appending physical
// continuation lines while the quoting discipline reports an open quote.
// It returns decoded fields and the first physical line number.
//
// The source keeps any trailing '\r': on a complete line it is terminator
// residue and is trimmed before splitting, but when the line ends inside
// an open quote it is field content, so the untrimmed line is rejoined
// with the next one and the original "\r\n" survives.
func (r *Reader) logicalLine() ([]string, int, error) {
	raw, err := r.src.ReadLine()
	if err != nil {
		return nil, r.line, err
	}
	r.line++
	start := r.line

	for {
		fields, needMore, err := splitFields(strings.TrimSuffix(raw, "\r"), r.cfg)
		if err != nil {
			return nil, start, errors.WithPosition(err, start, 0)
		}
		if !needMore {
			return fields, start, nil
		}

		next, err := r.src.ReadLine()
		if err == io.EOF {
			return nil, start, errors.MalformedEscape(start, "unterminated quoted field")
		}
		if err != nil {
			return nil, start, err
		}
		r.line++
		raw = raw + "\n" + next
	}
}
