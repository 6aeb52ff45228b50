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
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ClockKey is the key of the clock navigators use for deduplication.
var ClockKey = dig.KeyOf[clock.Clock]()

// An Option changes what Module registers.
type Option func(*options)

type options struct {
	zap   *zap.Logger
	clock clock.Clock
}

// WithZapLogger supplies an existing Zap logger instead of building one from
// the configuration.
func WithZapLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.zap = log
	}
}

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// Module registers the bindings provided by the navigation module:
//
//   - ConfigKey, ZapKey, LoggerKey and ClockKey as singletons,
//   - FactoryKey, unscoped, so each activity gets fresh executors,
//   - ControllersKey and NavigatorKey, scoped to an activity.
//
// The application registers RegistryKey and the executor keys it needs.
func Module(c *dig.Container, cfg *config.Config, opts ...Option) error {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}

	zapProvider := dig.Provide(dig.Singleton, func(r dig.Resolver) (*zap.Logger, error) {
		cfg, err := dig.Resolve[*config.Config](r, ConfigKey)
		if err != nil {
			return nil, err
		}
		return NewZapLogger(cfg)
	}, dig.Required(ConfigKey))
	if o.zap != nil {
		zapProvider = dig.Supply(o.zap)
	}

	return multierr.Combine(
		c.Register(ConfigKey, dig.Supply(cfg)),
		c.Register(ZapKey, zapProvider),
		c.Register(ClockKey, dig.Supply(o.clock)),
		c.Register(LoggerKey, dig.Provide(dig.Singleton, newLogger, dig.Required(ZapKey))),
		c.Register(FactoryKey, navigatorFactory.Provider(dig.Unscoped)),
		c.Register(ControllersKey, dig.Provide(dig.Scoped, func(dig.Resolver) (*Controllers, error) {
			return NewControllers(), nil
		})),
		c.Register(NavigatorKey, dig.Provide(dig.Scoped, newNavigator,
			dig.Required(FactoryKey),
			dig.Required(ControllersKey),
		)),
	)
}

func newLogger(r dig.Resolver) (navigator.Logger, error) {
	log, err := dig.Resolve[*zap.Logger](r, ZapKey)
	if err != nil {
		return nil, err
	}
	return navigator.NewZapLogger(log), nil
}

func newNavigator(r dig.Resolver) (*navigator.Navigator, error) {
	f, err := dig.Resolve[*NavigatorFactory](r, FactoryKey)
	if err != nil {
		return nil, err
	}
	controllers, err := dig.Resolve[*Controllers](r, ControllersKey)
	if err != nil {
		return nil, err
	}
	return f.Create(controllers)
}
