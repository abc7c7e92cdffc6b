// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"io"

	l "github.com/ethereum/go-ethereum/log"
)

type (
	Logger      = l.Logger
	Ctx         = l.Ctx
	Lvl         = l.Lvl
	Handler     = l.Handler
	Format      = l.Format
	GlogHandler = l.GlogHandler
)

const (
	LvlCrit  = l.LvlCrit
	LvlError = l.LvlError
	LvlWarn  = l.LvlWarn
	LvlInfo  = l.LvlInfo
	LvlDebug = l.LvlDebug
	LvlTrace = l.LvlTrace
)

// New returns a new logger with the given context.
// New is a convenient alias for Root().New
func New(ctx ...interface{}) Logger {
	return l.New(ctx...)
}

// Root returns the root logger
func Root() Logger {
	return l.Root()
}

func NewGlogHandler(h Handler) *GlogHandler {
	return l.NewGlogHandler(h)
}

func StreamHandler(wr io.Writer, fmtr Format) Handler {
	return l.StreamHandler(wr, fmtr)
}

func TerminalFormat(usecolor bool) Format {
	return l.TerminalFormat(usecolor)
}

// LvlFromString returns the appropriate Lvl from a string name.
// Useful for parsing command line args and configuration files.
func LvlFromString(lvlString string) (Lvl, error) {
	return l.LvlFromString(lvlString)
}

// The following functions bypass the exported logger methods (logger.Debug,
// etc.) to keep the call depth the same for all paths to logger.write so
// runtime.Caller(2) always refers to the call site in client code.

// Trace is a convenient alias for Root().Trace
func Trace(msg string, ctx ...interface{}) {
	l.Trace(msg, ctx...)
}

// Debug is a convenient alias for Root().Debug
func Debug(msg string, ctx ...interface{}) {
	l.Debug(msg, ctx...)
}

// Info is a convenient alias for Root().Info
func Info(msg string, ctx ...interface{}) {
	l.Info(msg, ctx...)
}

// Warn is a convenient alias for Root().Warn
func Warn(msg string, ctx ...interface{}) {
	l.Warn(msg, ctx...)
}

// Error is a convenient alias for Root().Error
func Error(msg string, ctx ...interface{}) {
	l.Error(msg, ctx...)
}
