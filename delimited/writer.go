package delimited

import (
	"io"
	"iter"

	"go.uber.org/zap"

	"github.com/typerow/typerow"
	"github.com/typerow/typerow/codec"
	"github.com/typerow/typerow/errors"
)

// Writer streams records to a sink as delimited text. Records are written
// in input order, one line each, never buffered as a whole set. Writer is
// not safe for concurrent use.
type Writer struct {
	sink        typerow.LineSink
	schema      *codec.Schema
	cfg         Config
	wroteHeader bool
	err         error
}

// NewWriter creates a Writer over an io.Writer. The configuration is
// validated up front.
func NewWriter(w io.Writer, schema *codec.Schema, cfg Config) (*Writer, error) {
	return NewWriterTo(newLineSink(w), schema, cfg)
}

// NewWriterTo creates a Writer over any line sink.
func NewWriterTo(sink typerow.LineSink, schema *codec.Schema, cfg Config) (*Writer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Writer{sink: sink, schema: schema, cfg: cfg}, nil
}

// WriteHeader emits one line of the schema's external names. Calling it
// explicitly suppresses the automatic header on the first Write.
func (w *Writer) WriteHeader() error {
	if w.err != nil {
		return w.err
	}
	w.wroteHeader = true
	debugf("write header", zap.Strings("names", w.schema.Names()))
	if err := w.sink.WriteLine(joinFields(w.schema.Names(), w.cfg)); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Write formats and emits one record. The first Write emits the header
// first when the configuration asks for one. An arity mismatch or a
// formatting failure aborts the writer: output correctness cannot be
// partially salvaged, so subsequent calls return the same error.
func (w *Writer) Write(rec codec.Record) error {
	if w.err != nil {
		return w.err
	}
	if w.cfg.Header && !w.wroteHeader {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}

	if len(rec) != w.schema.Len() {
		w.err = errors.ArityMismatch(errors.PhaseWrite, len(rec), w.schema.Len())
		return w.err
	}

	fields := make([]string, len(rec))
	for i, col := range w.schema.Columns() {
		s, err := col.Codec.Format(rec[i])
		if err != nil {
			w.err = err
			return err
		}
		fields[i] = s
	}

	if err := w.sink.WriteLine(joinFields(fields, w.cfg)); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll consumes a record sequence incrementally, so unbounded inputs
// stream through without being held in memory. It stops on the first error.
func (w *Writer) WriteAll(records iter.Seq[codec.Record]) error {
	for rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush forces buffered output to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if f, ok := w.sink.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
