// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package logging provides component loggers for the JSON viewer.
//
// All loggers share one output and level. By default the output is discarded,
// since the terminal UI owns the terminal. Call Configure to send logs to a
// file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	base = newBase()
)

func newBase() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetFormatter(&TextFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

// NewLogger returns the logger for the named component. Loggers are cached, so
// each component has exactly one.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}
	entry := base.WithField("component", component)
	loggers[component] = entry
	return entry
}

// Config is the logging configuration.
type Config struct {
	Level string // a logrus level name; "" means "info"
	File  string // if non-empty, append logs to this file
}

// Configure applies c to all loggers. If c names a file, the caller must
// close the returned io.Closer when logging is no longer needed.
func Configure(c Config) (io.Closer, error) {
	level := logrus.InfoLevel
	if c.Level != "" {
		lv, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = lv
	}
	base.SetLevel(level)

	if c.File == "" {
		SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	path := expandPath(c.File)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	SetOutput(f)
	return closerFunc(func() error {
		SetOutput(io.Discard)
		return f.Close()
	}), nil
}

type closerFunc func() error

func (c closerFunc) Close() error { return c() }

// expandPath expands a leading tilde in a file path.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
