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
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

var errNoRegistry = errors.New("route registry is required")

// Builder assembles a Navigator. Only the registry is required.
type Builder struct {
	registry     RouteRegistry
	logger       Logger
	executors    map[HostType]Executor
	onHostSwitch func(HostType)
	clock        clock.Clock
	window       time.Duration
	quiet        bool
}

// NewBuilder returns a Builder using the default configuration.
func NewBuilder() *Builder {
	return &Builder{
		executors: make(map[HostType]Executor),
		window:    DefaultDedupeWindow,
	}
}

// Registry sets the route registry.
func (b *Builder) Registry(r RouteRegistry) *Builder {
	b.registry = r
	return b
}

// Logger sets the navigation logger. A nil logger keeps the default, which
// discards everything.
func (b *Builder) Logger(l Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// Executor sets the executor of host. A nil executor leaves the host
// without one.
func (b *Builder) Executor(host HostType, e Executor) *Builder {
	if e == nil {
		delete(b.executors, host)
	} else {
		b.executors[host] = e
	}
	return b
}

// OnHostSwitch registers a callback run when the active host changes
// between fragment and compose.
func (b *Builder) OnHostSwitch(fn func(HostType)) *Builder {
	b.onHostSwitch = fn
	return b
}

// Clock sets the clock used for deduplication.
func (b *Builder) Clock(c clock.Clock) *Builder {
	b.clock = c
	return b
}

// Config applies cfg. Logging is disabled when cfg says so, regardless of
// the logger set.
func (b *Builder) Config(cfg Config) *Builder {
	b.window = cfg.DedupeWindow
	b.quiet = !cfg.EnableLogging
	return b
}

// Build returns the Navigator.
func (b *Builder) Build() (*Navigator, error) {
	if b.registry == nil {
		return nil, errNoRegistry
	}

	n := &Navigator{
		registry:     b.registry,
		logger:       b.logger,
		executors:    make(map[HostType]Executor, len(b.executors)),
		onHostSwitch: b.onHostSwitch,
		clock:        b.clock,
		window:       b.window,
		activeHost:   Fragment,
	}
	for h, e := range b.executors {
		n.executors[h] = e
	}
	if n.logger == nil || b.quiet {
		n.logger = NopLogger
	}
	if n.clock == nil {
		n.clock = clock.New()
	}
	return n, nil
}
