// Package logging writes structured logs to a rotating file next to the databases
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/thenoetrevino/ledger/internal/config"
)

const timeFormat = "2006-01-02 15:04:05"

// Logger is the application logger configured by Init
var Logger = zerolog.Nop()

// Init sets the global level and points the logger at a rotating file.
// Logs never go to stdout so they cannot interleave with the menu.
// The returned closer flushes and closes the file.
//
// When the log directory cannot be created, logs are discarded and the
// error is returned alongside a usable closer so the caller can carry on.
func Init(cfg config.LogConfig, path string) (io.Closer, error) {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	if err := ensureLogDir(path); err != nil {
		SetOutput(io.Discard)
		return nopCloser{}, fmt.Errorf("logging disabled: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	SetOutput(fileWriter)

	return fileWriter, nil
}

// SetOutput routes the application logger to w in human-readable form
func SetOutput(w io.Writer) {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    true,
	}
	Logger = zerolog.New(output).With().Timestamp().Logger()
	log.Logger = Logger
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LevelForVerbosity raises level according to the -v count
func LevelForVerbosity(level string, verbosity int) string {
	switch {
	case verbosity >= 2:
		return "trace"
	case verbosity == 1:
		return "debug"
	default:
		return level
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
