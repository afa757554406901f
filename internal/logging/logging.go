// apps/go-tui/internal/logging/logging.go
//
// zerolog setup. The interactive game owns the terminal, so logs default to
// a file in the OS temp dir; "-" selects a console writer on stderr.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Stderr is the LOG_FILE value that sends logs to stderr instead of a file.
const Stderr = "-"

// DefaultFile is where logs go when no path is configured.
func DefaultFile() string {
	return filepath.Join(os.TempDir(), "wordle.log")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup sets the global level and points the global logger at path.
// The returned Closer releases the log file, if one was opened.
func Setup(level, path string) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	if path == Stderr {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
		return nopCloser{}, nil
	}
	if path == "" {
		path = DefaultFile()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
