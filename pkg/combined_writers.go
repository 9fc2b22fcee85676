package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans log output out to several sinks, typically stdout and a rotated file.
// A write succeeds as long as one sink took the whole message; per-sink failures are kept in Err.
type CombinedWriter struct {
	Writers []io.Writer
	Err     error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var errs error
	delivered := false
	for _, w := range cw.Writers {
		n, err := w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		delivered = true
	}

	cw.Err = errs
	if !delivered && len(cw.Writers) > 0 {
		return 0, errs
	}
	return len(p), nil
}
