package ui

import (
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/apirek/plotutils/internal/fieldsel"
	"github.com/apirek/plotutils/internal/series"
	"github.com/apirek/plotutils/internal/smooth"
	"github.com/apirek/plotutils/internal/stream"
)

// ReaderOptions configures how stdin rows are parsed into the buffer.
type ReaderOptions struct {
	Delimiter  string
	Fields     fieldsel.List
	TimeLayout string
}

// Reader parses delimited rows into the shared sample buffer from a
// background goroutine. The first selected field is the timestamp, the
// rest are numeric series.
type Reader struct {
	r    io.Reader
	buf  *series.Buffer
	opts ReaderOptions
}

func NewReader(r io.Reader, buf *series.Buffer, opts ReaderOptions) *Reader {
	return &Reader{r: r, buf: buf, opts: opts}
}

// Start launches the reader goroutine and returns a notification channel:
// one (coalesced) signal per appended row, closed when input is exhausted.
func (rd *Reader) Start() <-chan struct{} {
	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		rd.read(ch)
	}()
	return ch
}

func (rd *Reader) read(ch chan<- struct{}) {
	lr := stream.NewLineReader(rd.r)
	for {
		line, err := lr.Next()
		if err != nil {
			return
		}

		fields := rd.opts.Fields.Project(strings.Split(line, rd.opts.Delimiter))
		if len(fields) < 2 {
			log.Errorf("need a timestamp and at least one value, line: %q", line)
			continue
		}
		ts, err := time.ParseInLocation(rd.opts.TimeLayout, fields[0], time.Local)
		if err != nil {
			log.Errorf("%v, line: %q", err, line)
			continue
		}

		rd.buf.Append(float64(ts.UnixNano())/1e9, smooth.ParseValues(fields[1:]))

		// Coalesce: a pending signal already covers this row.
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
