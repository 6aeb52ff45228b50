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
	"go.uber.org/zap"
)

// ZapLogger is a dig event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Err != nil {
			l.Logger.Error("registration failed",
				zap.String("key", e.Key),
				zap.String("caller", e.CallerName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Debug("registered",
				zap.String("key", e.Key),
				zap.String("scope", e.Scope),
				zap.String("caller", e.CallerName),
			)
		}
	case *Sealed:
		l.Logger.Info("sealed", zap.Int("bindings", e.Bindings))
	case *Created:
		if e.Err != nil {
			l.Logger.Error("create failed",
				zap.String("key", e.Key),
				zap.String("scope", e.Scope),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Debug("created",
				zap.String("key", e.Key),
				zap.String("scope", e.Scope),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *ScopeOpened:
		l.Logger.Info("scope opened", zap.String("scope", e.Name))
	case *ScopeClosed:
		if e.Err != nil {
			l.Logger.Error("scope close failed", zap.String("scope", e.Name), zap.Error(e.Err))
		} else {
			l.Logger.Info("scope closed", zap.String("scope", e.Name))
		}
	case *Released:
		if e.Err != nil {
			l.Logger.Error("release failed",
				zap.String("key", e.Key),
				zap.String("scope", e.Scope),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Debug("released",
				zap.String("key", e.Key),
				zap.String("scope", e.Scope),
			)
		}
	}
}
