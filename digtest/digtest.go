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

// Package digtest provides helpers for tests that build dig containers.
package digtest

import (
	"github.com/navkit/navdi/dig"
	"github.com/navkit/navdi/digevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

type testPrinter struct {
	TB
}

func (p testPrinter) Write(b []byte) (int, error) {
	p.Logf("%s", b)
	return len(b), nil
}

// New creates a container that logs its events to the test output.
func New(tb TB, opts ...dig.Option) *dig.Container {
	opts = append([]dig.Option{
		dig.WithLogger(&digevent.ConsoleLogger{W: testPrinter{tb}}),
	}, opts...)
	return dig.New(opts...)
}

// MustRegister calls Register, failing the test if an error is encountered.
func MustRegister(tb TB, c *dig.Container, k dig.Key, p *dig.Provider) {
	if err := c.Register(k, p); err != nil {
		tb.Errorf("register %v failed: %v", k, err)
		tb.FailNow()
	}
}

// MustResolve resolves k through r, failing the test if an error is
// encountered.
func MustResolve[T any](tb TB, r dig.Resolver, k dig.Key) T {
	v, err := dig.Resolve[T](r, k)
	if err != nil {
		tb.Errorf("resolve %v failed: %v", k, err)
		tb.FailNow()
	}
	return v
}

// MustValidate calls Validate, failing the test if the container is
// miswired.
func MustValidate(tb TB, c *dig.Container) {
	if err := c.Validate(); err != nil {
		tb.Errorf("container is miswired: %v", err)
		tb.FailNow()
	}
}
