// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package digevent

import (
	"context"
	"log/slog"
)

var _ Logger = (*SlogLogger)(nil)

// SlogLogger is a dig event logger that logs events using a slog logger.
type SlogLogger struct {
	Logger *slog.Logger

	ctx        context.Context
	errorLevel *slog.Level
}

// UseContext sets the context that will be used when logging to slog.
func (l *SlogLogger) UseContext(ctx context.Context) {
	l.ctx = ctx
}

// UseErrorLevel sets the level of error logs emitted by dig to level.
func (l *SlogLogger) UseErrorLevel(level slog.Level) {
	l.errorLevel = &level
}

func (l *SlogLogger) context() context.Context {
	if l.ctx == nil {
		return context.Background()
	}
	return l.ctx
}

func (l *SlogLogger) log(level slog.Level, msg string, attrs ...any) {
	l.Logger.Log(l.context(), level, msg, attrs...)
}

func (l *SlogLogger) logError(msg string, err error, attrs ...any) {
	lvl := slog.LevelError
	if l.errorLevel != nil {
		lvl = *l.errorLevel
	}
	l.Logger.Log(l.context(), lvl, msg, append(attrs, slog.String("error", err.Error()))...)
}

// LogEvent logs the given event to the provided slog logger.
func (l *SlogLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Err != nil {
			l.logError("registration failed", e.Err,
				slog.String("key", e.Key),
				slog.String("caller", e.CallerName),
			)
		} else {
			l.log(slog.LevelDebug, "registered",
				slog.String("key", e.Key),
				slog.String("scope", e.Scope),
				slog.String("caller", e.CallerName),
			)
		}
	case *Sealed:
		l.log(slog.LevelInfo, "sealed", slog.Int("bindings", e.Bindings))
	case *Created:
		if e.Err != nil {
			l.logError("create failed", e.Err,
				slog.String("key", e.Key),
				slog.String("scope", e.Scope),
			)
		} else {
			l.log(slog.LevelDebug, "created",
				slog.String("key", e.Key),
				slog.String("scope", e.Scope),
				slog.String("runtime", e.Runtime.String()),
			)
		}
	case *ScopeOpened:
		l.log(slog.LevelInfo, "scope opened", slog.String("scope", e.Name))
	case *ScopeClosed:
		if e.Err != nil {
			l.logError("scope close failed", e.Err, slog.String("scope", e.Name))
		} else {
			l.log(slog.LevelInfo, "scope closed", slog.String("scope", e.Name))
		}
	case *Released:
		if e.Err != nil {
			l.logError("release failed", e.Err,
				slog.String("key", e.Key),
				slog.String("scope", e.Scope),
			)
		} else {
			l.log(slog.LevelDebug, "released",
				slog.String("key", e.Key),
				slog.String("scope", e.Scope),
			)
		}
	}
}
