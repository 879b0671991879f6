// Package logger holds the process-wide zerolog instance.
//
// Call Init once from main, then Get from anywhere that needs to log.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum level emitted: trace, debug, info, warn, error.
	// Empty or unrecognised values fall back to info.
	Level string
	// Pretty switches to coloured console output for local development.
	// Leave false in production to keep pure JSON lines.
	Pretty bool
	// Output is where log lines go. Defaults to os.Stdout.
	Output io.Writer
}

var (
	root  zerolog.Logger
	once  sync.Once
	ready bool
)

// Init builds the singleton logger. Only the first call has any effect.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		root = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Caller().
			Logger()

		ready = true
	})
	return root
}

// Get returns the singleton logger. Panics if Init has not been called yet.
func Get() zerolog.Logger {
	if !ready {
		panic("logger: Get called before Init")
	}
	return root
}

// Reset tears down the singleton so the next Init rebuilds it. Tests only.
func Reset() {
	once = sync.Once{}
	root = zerolog.Logger{}
	ready = false
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
