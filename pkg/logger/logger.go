// Package logger configures zerolog to emit plain console lines of the form
//
//	15:04:05.000 LEVEL:	message
//
// with any structured fields appended as key=value pairs.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/r11/denonctl/internal/defaults"
	"github.com/r11/denonctl/internal/validation"
)

func init() {
	// The console writer re-parses the timestamp; keep sub-second precision in the event.
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// Init installs the process-wide logger on stdout at debug level.
func Init() {
	log.Logger = New(os.Stdout, zerolog.DebugLevel)
}

// New returns a logger writing formatted lines to w, dropping events below level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(NewConsoleWriter(w)).Level(level).With().Timestamp().Logger()
}

func NewConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: defaults.GetTimeFormat(),
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
		FormatPrepare: prefixLevel,
		FormatMessage: func(i interface{}) string {
			s, _ := i.(string)
			return s
		},
	}
}

// prefixLevel folds the level into the message so the two are separated by a
// tab rather than the writer's part separator.
func prefixLevel(evt map[string]interface{}) error {
	msg, _ := evt[zerolog.MessageFieldName].(string)
	lvl, _ := evt[zerolog.LevelFieldName].(string)
	evt[zerolog.MessageFieldName] = fmt.Sprintf("%s:\t%s", LevelName(lvl), msg)
	return nil
}

// LevelName maps a zerolog level string to the upper-case name printed on each line.
func LevelName(level string) string {
	switch level {
	case zerolog.LevelWarnValue:
		return "WARNING"
	case zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return "CRITICAL"
	case "":
		return "NOTSET"
	default:
		return strings.ToUpper(level)
	}
}

// ParseLevel converts a configured level name into a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	if err := validation.ValidateLogLevel(name); err != nil {
		return zerolog.NoLevel, err
	}

	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("failed to parse log level: %w", err)
	}

	return level, nil
}
