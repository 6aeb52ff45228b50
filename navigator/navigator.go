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
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// Drop reasons reported to Logger.OnDropped.
const (
	DropDoubleTap = "dedupe_double_tap"
	DropClosed    = "navigator_closed"
)

var errClosed = errors.New("navigator is closed")

// Navigator dispatches navigation commands to the executor of the
// destination's host.
//
// Commands are dispatched one at a time, in call order. Executors must not
// call back into the Navigator that is running them.
type Navigator struct {
	registry     RouteRegistry
	logger       Logger
	executors    map[HostType]Executor
	onHostSwitch func(HostType)
	clock        clock.Clock
	window       time.Duration

	// dispatch serializes commands. The fields below it are the
	// navigator's mutable state.
	dispatch   sync.Mutex
	lastKey    string
	lastAt     time.Time
	activeHost HostType
	closed     bool
}

// Navigate dispatches route. Requests repeating the previous route from the
// same source within the dedupe window are dropped and return nil.
func (n *Navigator) Navigate(route Route, source string) error {
	n.dispatch.Lock()
	defer n.dispatch.Unlock()

	now := n.clock.Now()
	cmd := NewCommand(route, source, now)

	if n.closed {
		n.logger.OnDropped(cmd, DropClosed)
		return errClosed
	}

	key := fmt.Sprintf("%T#%s", route, source)
	if key == n.lastKey && now.Sub(n.lastAt) < n.window {
		n.logger.OnDropped(cmd, DropDoubleTap)
		return nil
	}
	n.lastKey = key
	n.lastAt = now

	if IsBack(route) {
		n.logger.OnQueued(cmd, DestinationSpec{Host: n.activeHost, Name: "Back"})
		return n.dispatchBack(cmd)
	}

	spec, err := n.registry.Spec(route)
	if err != nil {
		err = errors.Wrapf(err, "resolving destination of %v", route)
		n.logger.OnFailure(cmd, err)
		return err
	}
	n.logger.OnQueued(cmd, spec)

	// Activities are started on top of the current host; they never become
	// the active host.
	if spec.Host != Activity && spec.Host != n.activeHost {
		n.activeHost = spec.Host
		if n.onHostSwitch != nil {
			n.onHostSwitch(spec.Host)
		}
	}

	n.logger.OnExecuted(cmd, spec.Host)
	executor, ok := n.executors[spec.Host]
	if !ok {
		err := errors.Errorf("no executor registered for %v", spec.Host)
		n.logger.OnFailure(cmd, err)
		return err
	}
	return n.execute(executor, cmd)
}

// Back dispatches BackRoute to the active host.
func (n *Navigator) Back(source string) error {
	return n.Navigate(BackRoute, source)
}

// ActiveHost returns the host that received the last non-activity command.
func (n *Navigator) ActiveHost() HostType {
	n.dispatch.Lock()
	defer n.dispatch.Unlock()
	return n.activeHost
}

// Close makes further navigation fail. It is called when the scope owning
// the navigator ends.
func (n *Navigator) Close() error {
	n.dispatch.Lock()
	defer n.dispatch.Unlock()
	n.closed = true
	return nil
}

func (n *Navigator) dispatchBack(cmd Command) error {
	n.logger.OnExecuted(cmd, n.activeHost)
	executor, ok := n.executors[n.activeHost]
	if !ok {
		err := errors.Errorf("no executor for %v", n.activeHost)
		n.logger.OnFailure(cmd, err)
		return err
	}
	return n.execute(executor, cmd)
}

func (n *Navigator) execute(e Executor, cmd Command) error {
	if err := e.Execute(cmd); err != nil {
		n.logger.OnFailure(cmd, err)
		return err
	}
	n.logger.OnSuccess(cmd)
	return nil
}
