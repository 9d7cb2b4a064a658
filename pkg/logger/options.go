package logger

import (
	"errors"
	"io"
)

type Option func(*ZapLogger)

func MaxSize(size int) Option {
	return func(l *ZapLogger) {
		l.maxSize = size
	}
}

func MaxBackups(backups int) Option {
	return func(l *ZapLogger) {
		l.maxBackups = backups
	}
}

func MaxAge(age int) Option {
	return func(l *ZapLogger) {
		l.maxAge = age
	}
}

func SetLevel(level Level) Option {
	return func(l *ZapLogger) {
		l.level = level
	}
}

// File enables rotated file output. An empty name disables it.
func File(name string) Option {
	return func(l *ZapLogger) {
		l.filename = name
	}
}

// Output replaces stdout as the console sink; nil disables console output.
func Output(w io.Writer) Option {
	return func(l *ZapLogger) {
		l.console = w
	}
}

func (l *ZapLogger) validate() error {
	if l.maxSize <= 0 {
		return errors.New("invalid maxSize: must be > 0")
	}
	if l.maxBackups <= 0 {
		return errors.New("invalid maxBackups: must be > 0")
	}
	if l.maxAge <= 0 {
		return errors.New("invalid maxAge: must be > 0")
	}
	if l.filename == "" && l.console == nil {
		return errors.New("no log output configured")
	}
	return nil
}
