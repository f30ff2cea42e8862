package storage

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// badgerLogger routes BadgerDB's log output through zerolog.
type badgerLogger struct {
	log zerolog.Logger
}

func newBadgerLogger(l zerolog.Logger) *badgerLogger {
	return &badgerLogger{log: l.With().Str("component", "badger").Logger()}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msg(trim(format, args))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msg(trim(format, args))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msg(trim(format, args))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msg(trim(format, args))
}

func trim(format string, args []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
