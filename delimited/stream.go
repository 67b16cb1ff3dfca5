package delimited

import (
	"bufio"
	"io"
	"strings"

	"github.com/typerow/typerow"
)

// lineSource adapts an io.Reader into a typerow.LineSource. Lines are
// terminated by '\n'; the final line may lack a terminator. A preceding
// '\r' is kept: whether it is terminator residue or quoted field content
// depends on the quote state, which only the reader knows.
type lineSource struct {
	br *bufio.Reader
}

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{br: bufio.NewReader(r)}
}

func (s *lineSource) ReadLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.EOF
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// lineSink adapts an io.Writer into a typerow.LineSink with buffering.
type lineSink struct {
	bw *bufio.Writer
}

func newLineSink(w io.Writer) *lineSink {
	return &lineSink{bw: bufio.NewWriter(w)}
}

func (s *lineSink) WriteLine(line string) error {
	if _, err := s.bw.WriteString(line); err != nil {
		return err
	}
	return s.bw.WriteByte('\n')
}

func (s *lineSink) Flush() error {
	return s.bw.Flush()
}

var (
	_ typerow.LineSource = (*lineSource)(nil)
	_ typerow.LineSink   = (*lineSink)(nil)
)
