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
	"fmt"
	"io"
)

// ConsoleLogger is a dig event logger that attempts to write human-readable
// messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[dig] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Err != nil {
			l.logf("ERROR\t\tRegister %v from %v failed: %v", e.Key, e.CallerName, e.Err)
		} else {
			l.logf("REGISTER\t%v (%v) <= %v", e.Key, e.Scope, e.CallerName)
		}
	case *Sealed:
		l.logf("SEALED\t\t%d bindings", e.Bindings)
	case *Created:
		if e.Err != nil {
			l.logf("ERROR\t\tCreate %v (%v) failed: %v", e.Key, e.Scope, e.Err)
		} else {
			l.logf("CREATE\t\t%v (%v) in %v", e.Key, e.Scope, e.Runtime)
		}
	case *ScopeOpened:
		l.logf("SCOPE\t\t%v opened", e.Name)
	case *ScopeClosed:
		if e.Err != nil {
			l.logf("ERROR\t\tScope %v closed with errors: %v", e.Name, e.Err)
		} else {
			l.logf("SCOPE\t\t%v closed", e.Name)
		}
	case *Released:
		if e.Err != nil {
			l.logf("ERROR\t\tRelease %v (%v) failed: %v", e.Key, e.Scope, e.Err)
		} else {
			l.logf("RELEASE\t%v (%v)", e.Key, e.Scope)
		}
	}
}
