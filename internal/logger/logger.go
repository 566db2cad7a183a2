package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the global logger for interactive use. Debug level when
// TRIPDESK_DEBUG is set.
func Init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	Log = zerolog.New(output).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	if os.Getenv("TRIPDESK_DEBUG") != "" {
		Log = Log.Level(zerolog.DebugLevel)
	}
}
