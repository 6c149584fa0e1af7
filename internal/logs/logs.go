// Package logs builds the logrus loggers used across the module.
package logs

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// formatter prefixes every entry with its owner.
type formatter struct {
	owner string
	lf    log.Formatter
}

// Format satisfies the log.Formatter interface.
func (f *formatter) Format(e *log.Entry) ([]byte, error) {
	e.Message = fmt.Sprintf("[%s] %s", f.owner, e.Message)
	return f.lf.Format(e)
}

// NewLogger returns a text logger at Info level whose messages are prefixed with [owner].
func NewLogger(owner string) *log.Logger {
	logger := log.New()
	logger.SetFormatter(&formatter{
		owner: owner,
		lf: &log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.StampMilli,
		},
	})
	return logger
}

// NewLoggerWithLevel is NewLogger with the level parsed from a logrus level name such as "debug" or "warn".
func NewLoggerWithLevel(owner, level string) (*log.Logger, error) {
	logger := NewLogger(owner)
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(log.PanicLevel)
	return logger
}
