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

package navigator

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger receives the navigation lifecycle of every command.
type Logger interface {
	OnQueued(cmd Command, spec DestinationSpec)
	OnExecuted(cmd Command, host HostType)
	OnSuccess(cmd Command)
	OnFailure(cmd Command, err error)
	OnDropped(cmd Command, reason string)
}

// ZapLogger is the default Logger. It writes to a Zap logger.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger returns a Logger writing to log under the "navigator" name.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	return &ZapLogger{Logger: log.Named("navigator")}
}

func (l *ZapLogger) OnQueued(cmd Command, spec DestinationSpec) {
	l.Logger.Debug("queued",
		zap.String("id", cmd.ID),
		zap.String("route", spec.Name),
		zap.String("source", cmd.Source),
	)
}

func (l *ZapLogger) OnExecuted(cmd Command, host HostType) {
	l.Logger.Debug("executed",
		zap.String("id", cmd.ID),
		zap.Stringer("host", host),
		zap.String("route", routeName(cmd.Route)),
	)
}

func (l *ZapLogger) OnSuccess(cmd Command) {
	l.Logger.Debug("success", zap.String("id", cmd.ID))
}

func (l *ZapLogger) OnFailure(cmd Command, err error) {
	l.Logger.Error("failed",
		zap.String("id", cmd.ID),
		zap.String("route", routeName(cmd.Route)),
		zap.Error(err),
	)
}

func (l *ZapLogger) OnDropped(cmd Command, reason string) {
	l.Logger.Warn("dropped",
		zap.String("id", cmd.ID),
		zap.String("reason", reason),
		zap.String("route", routeName(cmd.Route)),
	)
}

// NopLogger is a Logger that ignores everything.
var NopLogger Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) OnQueued(Command, DestinationSpec) {}
func (nopLogger) OnExecuted(Command, HostType)      {}
func (nopLogger) OnSuccess(Command)                 {}
func (nopLogger) OnFailure(Command, error)          {}
func (nopLogger) OnDropped(Command, string)         {}

func routeName(r Route) string {
	return fmt.Sprintf("%v", r)
}
