// Package logging builds the logrus logger shared by the CLI and the pipeline.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/trendclust"
)

// ErrBadFormat indicates a log format other than "text" or "json".
var ErrBadFormat = fmt.Errorf("logging: unknown format: %w", trendclust.ErrInvalidInput)

// New returns a logger writing to w (stderr when nil) at level, formatted
// as "text" or "json".
func New(level, format string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w: %w", trendclust.ErrInvalidInput, err)
	}
	if w == nil {
		w = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	switch strings.ToLower(format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrBadFormat)
	}

	return l, nil
}
