/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

// Package log is the leveled logger shared by every package of btcdev. It
// owns a single writer that goes to stderr, in colour when attached to a
// terminal, and optionally to a rotated log file.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var (
	glogger *GlogHandler

	logWrite *logWriter
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator.
type logWriter struct {
	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	// Use for color terminal
	colorableWrite io.Writer
}

func (lw *logWriter) Init() {
	// init a colorful logger if possible
	fd := os.Stderr.Fd()
	usecolor := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"

	if usecolor {
		lw.colorableWrite = colorable.NewColorableStderr()
	}
}

func (lw *logWriter) Close() {
	if lw.logRotator != nil {
		lw.logRotator.Close()
		lw.logRotator = nil
	}
}

func (lw *logWriter) IsUseColor() bool {
	return lw.colorableWrite != nil
}

func (lw *logWriter) Write(p []byte) (n int, err error) {
	if lw.logRotator != nil {
		lw.logRotator.Write(p)
	}

	if lw.colorableWrite != nil {
		lw.colorableWrite.Write(p)
	} else {
		os.Stderr.Write(p)
	}
	return len(p), nil
}

func init() {
	// output set to Stderr, stdout is reserved for command results.
	logWrite = &logWriter{}
	logWrite.Init()
	glogger = NewGlogHandler(StreamHandler(io.Writer(logWrite), TerminalFormat(logWrite.IsUseColor())))

	Root().SetHandler(glogger)

	glogger.Verbosity(LvlInfo)
}

// InitLogRotator makes the logger also write to logFile, rolling it over
// into compressed files in the same directory.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %v", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %v", err)
	}

	logWrite.Close()
	logWrite.logRotator = r
	return nil
}

// SetLogLevel sets the verbosity of every logger from a level name such as
// "info" or "debug".
func SetLogLevel(level string) error {
	lvl, err := LvlFromString(level)
	if err != nil {
		return err
	}
	glogger.Verbosity(lvl)
	return nil
}

// Close flushes and closes the log file, if any.
func Close() {
	logWrite.Close()
}

func Glogger() *GlogHandler {
	return glogger
}
