package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers.
// A failing writer does not stop the others; errors are combined.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: append([]io.Writer(nil), writers...),
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	// report the full length as long as at least one writer accepted it,
	// otherwise log.Logger treats the write as short
	if err != nil && len(multierr.Errors(err)) == len(cw.writers) {
		return 0, err
	}
	return len(p), err
}

// Close closes every writer that is also an io.Closer (e.g. the lumberjack logger).
func (cw *CombinedWriter) Close() error {
	var err error
	for _, w := range cw.writers {
		if c, ok := w.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
