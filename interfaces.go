package typerow

// LineSource yields delimited text one line at a time, without the '\n'
// terminator. A preceding '\r' is passed through untouched; the consumer
// decides whether it is terminator residue or content. Implementations
// report io.EOF when no lines remain.
type LineSource interface {
	ReadLine() (string, error)
}

// LineSink consumes delimited text one line at a time. Implementations
// append the line terminator themselves.
type LineSink interface {
	WriteLine(line string) error
}
