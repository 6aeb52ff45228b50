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
	"github.com/navkit/navdi"
	"github.com/navkit/navdi/dig"
	"github.com/navkit/navdi/navigator"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Keys of the per-activity hosts.
var (
	FragmentHostKey = dig.QualifiedKeyOf[*Host](navigator.Fragment.Qualifier())
	ComposeHostKey  = dig.QualifiedKeyOf[*Host](navigator.Compose.Qualifier())
	LauncherKey     = dig.KeyOf[*Launcher]()
)

// Module registers the route registry, the hosts of an activity and the
// executors driving them. It expects navdi.Module to be registered too.
func Module(c *dig.Container) error {
	return multierr.Combine(
		c.Register(navdi.RegistryKey, dig.Supply[navigator.RouteRegistry](Registry{})),

		c.Register(FragmentHostKey, dig.Provide(dig.Scoped, func(dig.Resolver) (*Host, error) {
			return NewHost("fragment"), nil
		})),
		c.Register(ComposeHostKey, dig.Provide(dig.Scoped, func(dig.Resolver) (*Host, error) {
			return NewHost("compose"), nil
		})),
		c.Register(LauncherKey, dig.Provide(dig.Scoped, func(dig.Resolver) (*Launcher, error) {
			return &Launcher{}, nil
		})),

		c.Register(navdi.FragmentExecutorKey, fragmentExecutor.Provider(dig.Unscoped)),
		c.Register(navdi.ComposeExecutorKey, composeExecutor.Provider(dig.Unscoped)),
		c.Register(navdi.ActivityExecutorKey, activityExecutor.Provider(dig.Unscoped)),
	)
}

var fragmentExecutor = dig.Factory[navigator.Executor]{
	Deps: []dig.Dependency{dig.Required(FragmentHostKey), dig.Required(navdi.ZapKey)},
	Build: func(args []interface{}) (navigator.Executor, error) {
		return &FragmentExecutor{
			Host: dig.Arg[*Host](args, 0),
			Log:  dig.Arg[*zap.Logger](args, 1).Named("fragment"),
		}, nil
	},
}

var composeExecutor = dig.Factory[navigator.Executor]{
	Deps: []dig.Dependency{dig.Required(ComposeHostKey), dig.Required(navdi.ZapKey)},
	Build: func(args []interface{}) (navigator.Executor, error) {
		return &ComposeExecutor{
			Host: dig.Arg[*Host](args, 0),
			Log:  dig.Arg[*zap.Logger](args, 1).Named("compose"),
		}, nil
	},
}

var activityExecutor = dig.Factory[navigator.Executor]{
	Deps: []dig.Dependency{dig.Required(LauncherKey), dig.Required(navdi.ZapKey)},
	Build: func(args []interface{}) (navigator.Executor, error) {
		return &ActivityExecutor{
			Launcher: dig.Arg[*Launcher](args, 0),
			Log:      dig.Arg[*zap.Logger](args, 1).Named("activity"),
		}, nil
	},
}
