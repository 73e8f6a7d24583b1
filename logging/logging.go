// Package logging builds the logrus loggers used by the storage
// adapters and the gRPC host service.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Field names shared by every scoped logger.
const (
	FieldScope    = "scope"
	FieldTime     = "@time"
	FieldLevel    = "level"
	FieldMessage  = "msg"
	FieldInstance = "instance"
)

// Options configures a scoped logger.
type Options struct {
	// Level is a logrus level name; empty means "info".
	Level string
	// JSON selects JSON output instead of text.
	JSON bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New returns a logger whose entries carry the scope name and the
// host's instance name.
func New(scope string, opts Options) (*logrus.Entry, error) {
	l := logrus.New()
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	l.SetOutput(out)

	level := logrus.InfoLevel
	if opts.Level != "" {
		lvl, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = lvl
	}
	l.SetLevel(level)

	fieldMap := logrus.FieldMap{
		logrus.FieldKeyTime:  FieldTime,
		logrus.FieldKeyLevel: FieldLevel,
		logrus.FieldKeyMsg:   FieldMessage,
	}
	if opts.JSON {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano, FieldMap: fieldMap})
	} else {
		l.SetFormatter(&logrus.TextFormatter{TimestampFormat: time.RFC3339Nano, FieldMap: fieldMap})
	}

	hostname, _ := os.Hostname()
	return l.WithFields(logrus.Fields{
		FieldScope:    scope,
		FieldInstance: hostname,
	}), nil
}

// Discard returns a logger that drops everything. Adapters use it
// when the caller supplies none.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
