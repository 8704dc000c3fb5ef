package telemetry

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is a structured logger that owns its output file.
type Logger struct {
	*log.Logger
	w io.WriteCloser
}

// NewLogger writes JSON lines to path, or discards everything when path is
// empty. The terminal belongs to the UI, so nothing is logged to stderr.
func NewLogger(path string, debug bool) (*Logger, error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	if path == "" {
		return &Logger{
			Logger: log.NewWithOptions(io.Discard, log.Options{Level: level}),
			w:      nopCloser{Writer: io.Discard},
		}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Logger{
		Logger: log.NewWithOptions(f, log.Options{
			Level:           level,
			Prefix:          "riskcalc",
			ReportTimestamp: true,
			Formatter:       log.JSONFormatter,
		}),
		w: f,
	}, nil
}

func (l *Logger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	return l.w.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
