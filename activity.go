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

package navdi

import (
	"sync"

	"github.com/navkit/navdi/dig"
	"github.com/navkit/navdi/navigator"
	"go.uber.org/multierr"
)

// ActivityScope is the name of the scopes opened by OpenActivity.
const ActivityScope = "activity"

// Controllers holds the callbacks an activity installs after its navigator
// was created. There is one per activity scope.
type Controllers struct {
	mu           sync.Mutex
	onHostSwitch func(navigator.HostType)
}

// NewControllers returns empty Controllers.
func NewControllers() *Controllers {
	return &Controllers{}
}

// SetOnHostSwitch installs the callback run when the navigator moves
// between the fragment and compose hosts.
func (c *Controllers) SetOnHostSwitch(fn func(navigator.HostType)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onHostSwitch = fn
}

func (c *Controllers) hostSwitched(h navigator.HostType) {
	c.mu.Lock()
	fn := c.onHostSwitch
	c.mu.Unlock()

	if fn != nil {
		fn(h)
	}
}

// Activity is an open activity scope and the values resolved in it.
type Activity struct {
	Scope       *dig.Scope
	Controllers *Controllers
	Navigator   *navigator.Navigator
}

// OpenActivity opens an activity scope on c and resolves its navigator.
func OpenActivity(c *dig.Container) (*Activity, error) {
	s := c.NewScope(ActivityScope)

	controllers, err := dig.Resolve[*Controllers](s, ControllersKey)
	if err != nil {
		return nil, multierr.Append(err, s.Close())
	}
	nav, err := dig.Resolve[*navigator.Navigator](s, NavigatorKey)
	if err != nil {
		return nil, multierr.Append(err, s.Close())
	}

	return &Activity{
		Scope:       s,
		Controllers: controllers,
		Navigator:   nav,
	}, nil
}

// Close ends the activity scope, closing its navigator.
func (a *Activity) Close() error {
	return a.Scope.Close()
}
