package logger

import (
	"io"
	"log"
	"os"
)

type Logger interface {
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger writing to stderr, each line tagged with prefix.
func New(prefix string) Logger {
	if prefix != "" {
		prefix = "[" + prefix + "] "
	}
	return &stdLogger{l: log.New(os.Stderr, prefix, log.LstdFlags|log.Lmsgprefix)}
}

// Nop discards everything; handy in tests.
func Nop() Logger { return &stdLogger{l: log.New(io.Discard, "", 0)} }

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Warnf(format string, v ...any)  { s.l.Printf("[WARN] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
