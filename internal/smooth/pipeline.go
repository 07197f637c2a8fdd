package smooth

import (
	"context"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/apirek/plotutils/internal/fieldsel"
	"github.com/apirek/plotutils/internal/stream"
)

// Options configures one smoothing run.
type Options struct {
	Delimiter string
	Fields    fieldsel.List
	Window    int
}

// Run reads delimited lines from r until EOF, smooths the selected columns
// and writes one output line per input line to w. Cancellation is honored
// between lines.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	sm, err := New(opts.Window)
	if err != nil {
		return err
	}

	lr := stream.NewLineReader(r)
	lw := stream.NewLineWriter(w, opts.Delimiter)
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
			return err
		}

		fields := strings.Split(line, opts.Delimiter)
		avgs, err := sm.Update(ParseValues(opts.Fields.Project(fields)))
		if err != nil {
			log.Warnf("%v, line: %q", err, line)
		}
		if err := lw.WriteFloats(avgs); err != nil {
			return err
		}
	}
}
