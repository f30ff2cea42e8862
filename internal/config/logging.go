package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging configures the global zerolog logger.
func (l LogConfig) SetupLogging() {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if l.Console {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
