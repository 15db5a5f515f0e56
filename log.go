package flexchrome

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "flexchrome",
	Level:  log.WarnLevel,
})

// SetLogger replaces the package logger. Passing nil restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(os.Stderr, log.Options{Prefix: "flexchrome", Level: log.WarnLevel})
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}
