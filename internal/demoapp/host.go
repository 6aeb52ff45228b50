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

package demoapp

import (
	"sync"

	"github.com/pkg/errors"
)

var errEmptyStack = errors.New("back stack is empty")

// Host stands in for the navigation controller of one host: it keeps the
// back stack of visited destinations.
type Host struct {
	name string

	mu    sync.Mutex
	stack []string
}

// NewHost returns a Host with an empty back stack.
func NewHost(name string) *Host {
	return &Host{name: name}
}

// Name returns the name of the host.
func (h *Host) Name() string { return h.name }

// Push adds dest on top of the back stack.
func (h *Host) Push(dest string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stack = append(h.stack, dest)
}

// Pop removes the top of the back stack.
func (h *Host) Pop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.stack) == 0 {
		return errors.Wrap(errEmptyStack, h.name)
	}
	h.stack = h.stack[:len(h.stack)-1]
	return nil
}

// Stack returns a copy of the back stack, bottom first.
func (h *Host) Stack() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.stack...)
}

// Launcher stands in for the activity starting other activities.
type Launcher struct {
	mu      sync.Mutex
	started []string
}

// Start records that the named activity was started.
func (l *Launcher) Start(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.started = append(l.started, name)
}

// Started returns the started activities in order.
func (l *Launcher) Started() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.started...)
}
