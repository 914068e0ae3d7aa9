package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger carries debug output; it discards everything unless --debug or
// DEBUG=true is set.
var logger = zerolog.Nop()

func debugEnabled() bool {
	return Debug || os.Getenv("DEBUG") == "true"
}

func setupLogger(w io.Writer, debug bool) {
	if !debug {
		logger = zerolog.Nop()
		return
	}
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
