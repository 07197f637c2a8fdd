// Package replay re-emits historical delimited rows at their original
// relative cadence, keyed on a timestamp in the first selected field.
package replay

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/apirek/plotutils/internal/fieldsel"
	"github.com/apirek/plotutils/internal/stream"
)

// DefaultTimeLayout matches the timestamp format the tools exchange by
// default: wall-clock seconds with microsecond precision.
const DefaultTimeLayout = "2006-01-02 15:04:05.000000"

// Pacer computes how long to sleep before emitting a row so that output
// keeps the input's relative timing. Time spent processing between rows is
// subtracted from the next delay; delays never go negative.
type Pacer struct {
	prev    time.Time
	hasPrev bool
	enter   time.Time
	clock   func() time.Time
}

func NewPacer() *Pacer {
	return &Pacer{clock: time.Now}
}

// Delay returns the sleep required before the row stamped ts. The first
// row is emitted immediately.
func (p *Pacer) Delay(ts time.Time) time.Duration {
	if !p.hasPrev {
		return 0
	}
	d := ts.Sub(p.prev) - p.clock().Sub(p.enter)
	if d < 0 {
		return 0
	}
	return d
}

// Mark records that the row stamped ts is being emitted now. Call after
// sleeping, immediately before the write, so the next Delay measures only
// processing time.
func (p *Pacer) Mark(ts time.Time) {
	p.prev = ts
	p.hasPrev = true
	p.enter = p.clock()
}

// Options configures one replay run.
type Options struct {
	Delimiter  string
	Fields     fieldsel.List
	TimeLayout string
	Files      []string
}

// Run replays the given files in order to w. Rows with an unparseable
// timestamp are diagnosed and skipped; the replay continues.
func Run(ctx context.Context, w io.Writer, opts Options) error {
	lw := stream.NewLineWriter(w, opts.Delimiter)
	pacer := NewPacer()
	for _, name := range opts.Files {
		if err := replayFile(ctx, lw, pacer, name, opts); err != nil {
			return err
		}
	}
	return nil
}

func replayFile(ctx context.Context, lw *stream.LineWriter, pacer *Pacer, name string, opts Options) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	lr := stream.NewLineReader(f)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := lr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", name)
		}

		fields := opts.Fields.Project(strings.Split(line, opts.Delimiter))
		if len(fields) == 0 {
			log.Errorf("no fields selected, line: %q, file: %s", line, name)
			continue
		}
		ts, err := time.ParseInLocation(opts.TimeLayout, fields[0], time.Local)
		if err != nil {
			log.Errorf("%v, line: %q, file: %s", err, line, name)
			continue
		}

		if d := pacer.Delay(ts); d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
		pacer.Mark(ts)

		out := append([]string{time.Now().Format(opts.TimeLayout)}, fields[1:]...)
		if err := lw.WriteFields(out); err != nil {
			return err
		}
	}
}
