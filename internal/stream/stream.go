// Package stream provides the line-oriented I/O shared by the plotutils
// tools: unbuffered one-line-in-one-line-out transfer and the error
// taxonomy for downstream pipe closure.
package stream

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"syscall"
)

// Exit codes for the expected terminal conditions.
const (
	ExitEPIPE     = 32
	ExitInterrupt = 130
)

// LineReader yields input lines with a single trailing newline stripped.
type LineReader struct {
	r *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line without its trailing "\n". A final line
// without a newline is returned as-is; io.EOF follows once input is
// exhausted.
func (lr *LineReader) Next() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// LineWriter joins fields with a delimiter and writes one line per call
// directly to the underlying writer, so a downstream consumer sees every
// line without delay.
type LineWriter struct {
	w     io.Writer
	delim string
}

func NewLineWriter(w io.Writer, delim string) *LineWriter {
	return &LineWriter{w: w, delim: delim}
}

func (lw *LineWriter) WriteFields(fields []string) error {
	_, err := io.WriteString(lw.w, strings.Join(fields, lw.delim)+"\n")
	return err
}

// WriteFloats writes one line of float values in Go's shortest decimal
// representation.
func (lw *LineWriter) WriteFloats(vals []float64) error {
	fields := make([]string, len(vals))
	for i, v := range vals {
		fields[i] = FormatFloat(v)
	}
	return lw.WriteFields(fields)
}

// FormatFloat renders v the way the rest of the toolchain expects on the
// wire: shortest representation that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// IsBrokenPipe reports whether err means the downstream reader closed its
// end of the pipe. This is an expected terminal condition for a producer,
// not a bug.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
