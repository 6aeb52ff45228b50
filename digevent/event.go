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

import "time"

// Event defines an event emitted by a dig container.
type Event interface {
	event() // Only digevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Registered) event()  {}
func (*Sealed) event()      {}
func (*Created) event()     {}
func (*ScopeOpened) event() {}
func (*ScopeClosed) event() {}
func (*Released) event()    {}

// Registered is emitted when a binding is added to the container.
type Registered struct {
	// Key is the rendered binding key.
	Key string
	// Scope is the lifetime policy of the binding.
	Scope string
	// CallerName is the function that registered the binding.
	CallerName string
	// Err is non-nil if the registration was rejected.
	Err error
}

// Sealed is emitted once, when the container stops accepting bindings.
type Sealed struct {
	Bindings int
}

// Created is emitted after a provider's creation function has run.
type Created struct {
	Key     string
	Scope   string
	Runtime time.Duration
	Err     error
}

// ScopeOpened is emitted when a narrower scope is created.
type ScopeOpened struct {
	Name string
}

// ScopeClosed is emitted after a scope released its instances.
type ScopeClosed struct {
	Name string
	Err  error
}

// Released is emitted for every cached instance released when its owning
// scope ends.
type Released struct {
	Key   string
	Scope string
	Err   error
}
