// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger holds the zerolog setup shared by the server and the
// command-line client. Request-scoped loggers travel in context.Context and
// are read back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	roleField    = "role"
	traceIDField = "trace_id"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries
// role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = funcName

	return build(os.Stdout, role, true)
}

// NewConsoleLogger returns a human-readable Info logger on stderr.
func NewConsoleLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	return build(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, role, false)
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

func build(w io.Writer, role string, withCaller bool) *Logger {
	c := zerolog.New(w).With().Str(roleField, role).Timestamp()
	if withCaller {
		c = c.Caller()
	}
	return &Logger{c.Logger()}
}

func funcName(pc uintptr, _ string, _ int) string {
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

// WithTraceID returns a child logger that adds trace_id to every entry.
// The receiver is left untouched.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(traceIDField, traceID).Logger()}
}

// WithContext stores l in ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
