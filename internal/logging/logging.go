// Package logging configures zerolog loggers for cmdmock components.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root = zerolog.New(consoleWriter(os.Stderr)).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
)

// Setup configures the global log level and output writer. Level accepts the
// standard zerolog names (trace, debug, info, warn, error). An empty level
// keeps the default of warn.
func Setup(level string, out io.Writer) error {
	parsed := zerolog.WarnLevel
	if strings.TrimSpace(level) != "" {
		var err error
		parsed, err = zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	if out == nil {
		out = os.Stderr
	}

	mu.Lock()
	root = zerolog.New(consoleWriter(out)).
		Level(parsed).
		With().Timestamp().Logger()
	mu.Unlock()

	return nil
}

// Component returns a logger tagged with the component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", name).Logger()
}

func consoleWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
}
