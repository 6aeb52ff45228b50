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
	"github.com/benbjohnson/clock"
	"github.com/navkit/navdi/config"
	"github.com/navkit/navdi/dig"
	"github.com/navkit/navdi/navigator"
)

// NavigatorFactory creates the Navigator of an activity from the
// module-wide collaborators. The logger and every executor are optional;
// hosts without an executor reject their routes.
type NavigatorFactory struct {
	config    navigator.Config
	clock     clock.Clock
	registry  navigator.RouteRegistry
	logger    navigator.Logger
	executors map[navigator.HostType]navigator.Executor
}

var navigatorFactory = dig.Factory[*NavigatorFactory]{
	Deps: []dig.Dependency{
		dig.Required(ConfigKey),
		dig.Required(ClockKey),
		dig.Required(RegistryKey),
		dig.Optional(LoggerKey),
		dig.Optional(FragmentExecutorKey),
		dig.Optional(ComposeExecutorKey),
		dig.Optional(ActivityExecutorKey),
	},
	Build: func(args []interface{}) (*NavigatorFactory, error) {
		f := &NavigatorFactory{
			config:    dig.Arg[*config.Config](args, 0).Navigator,
			clock:     dig.Arg[clock.Clock](args, 1),
			registry:  dig.Arg[navigator.RouteRegistry](args, 2),
			logger:    dig.Arg[navigator.Logger](args, 3),
			executors: make(map[navigator.HostType]navigator.Executor),
		}
		for i, host := range navigator.Hosts {
			if e := dig.Arg[navigator.Executor](args, 4+i); e != nil {
				f.executors[host] = e
			}
		}
		return f, nil
	},
}

// Hosts returns the hosts that have an executor.
func (f *NavigatorFactory) Hosts() []navigator.HostType {
	var hosts []navigator.HostType
	for _, h := range navigator.Hosts {
		if _, ok := f.executors[h]; ok {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

// Create builds a Navigator reporting host switches to controllers.
func (f *NavigatorFactory) Create(controllers *Controllers) (*navigator.Navigator, error) {
	b := navigator.NewBuilder().
		Registry(f.registry).
		Logger(f.logger).
		Clock(f.clock).
		Config(f.config)
	for h, e := range f.executors {
		b.Executor(h, e)
	}
	if controllers != nil {
		b.OnHostSwitch(controllers.hostSwitched)
	}
	return b.Build()
}
