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
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/navkit/navdi/config"
	"github.com/navkit/navdi/dig"
	"github.com/navkit/navdi/digtest"
	"github.com/navkit/navdi/navigator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type homeRoute struct{}

type detailsRoute struct{ id int }

type legacyRoute struct{}

var registry = navigator.RegistryFunc(func(r navigator.Route) (navigator.DestinationSpec, error) {
	switch r.(type) {
	case homeRoute:
		return navigator.DestinationSpec{Host: navigator.Fragment, Name: "Home"}, nil
	case detailsRoute:
		return navigator.DestinationSpec{Host: navigator.Compose, Name: "Details"}, nil
	case legacyRoute:
		return navigator.DestinationSpec{Host: navigator.Activity, Name: "Legacy"}, nil
	}
	return navigator.DestinationSpec{}, navigator.ErrUnknownRoute
})

type recorder struct {
	host   navigator.HostType
	routes []navigator.Route
}

func (r *recorder) Execute(cmd navigator.Command) error {
	r.routes = append(r.routes, cmd.Route)
	return nil
}

type app struct {
	c         *dig.Container
	logs      *observer.ObservedLogs
	clock     *clock.Mock
	executors map[navigator.HostType]*recorder
	created   map[navigator.HostType]int
}

// newApp composes the navigation module with the given hosts bound to
// recording executors. Every resolution of an executor key creates a new
// recorder.
func newApp(t *testing.T, cfg *config.Config, hosts ...navigator.HostType) *app {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	a := &app{
		c:         digtest.New(t),
		logs:      logs,
		clock:     clock.NewMock(),
		executors: make(map[navigator.HostType]*recorder),
		created:   make(map[navigator.HostType]int),
	}
	require.NoError(t, Module(a.c, cfg, WithZapLogger(zap.New(core)), WithClock(a.clock)))
	digtest.MustRegister(t, a.c, RegistryKey, dig.Supply[navigator.RouteRegistry](registry))

	for _, h := range hosts {
		h := h
		digtest.MustRegister(t, a.c, ExecutorKey(h), dig.Provide(dig.Unscoped, func(dig.Resolver) (navigator.Executor, error) {
			r := &recorder{host: h}
			a.executors[h] = r
			a.created[h]++
			return r, nil
		}))
	}
	return a
}

func TestModule(t *testing.T) {
	a := newApp(t, config.Default(), navigator.Hosts...)
	digtest.MustValidate(t, a.c)
	defer func() { assert.NoError(t, a.c.Close()) }()

	activity, err := OpenActivity(a.c)
	require.NoError(t, err)

	var switches []navigator.HostType
	activity.Controllers.SetOnHostSwitch(func(h navigator.HostType) {
		switches = append(switches, h)
	})

	nav := activity.Navigator
	require.NoError(t, nav.Navigate(homeRoute{}, "start"))
	require.NoError(t, nav.Navigate(detailsRoute{id: 7}, "home_button_click"))
	require.NoError(t, nav.Navigate(legacyRoute{}, "menu"))
	require.NoError(t, nav.Back("toolbar"))

	assert.Equal(t, []navigator.Route{homeRoute{}}, a.executors[navigator.Fragment].routes)
	assert.Equal(t, []navigator.Route{detailsRoute{id: 7}, navigator.BackRoute}, a.executors[navigator.Compose].routes)
	assert.Equal(t, []navigator.Route{legacyRoute{}}, a.executors[navigator.Activity].routes)
	assert.Equal(t, []navigator.HostType{navigator.Compose}, switches)

	assert.Equal(t, 4, a.logs.FilterMessage("success").Len())
	for _, e := range a.logs.FilterMessage("success").All() {
		assert.Equal(t, "navigator", e.LoggerName)
	}

	require.NoError(t, activity.Close())
	assert.Error(t, nav.Navigate(homeRoute{}, "start"), "navigator must be closed with its activity")
}

func TestActivitiesShareSingletons(t *testing.T) {
	a := newApp(t, config.Default(), navigator.Hosts...)
	defer func() { assert.NoError(t, a.c.Close()) }()

	first, err := OpenActivity(a.c)
	require.NoError(t, err)
	defer first.Close()

	second, err := OpenActivity(a.c)
	require.NoError(t, err)
	defer second.Close()

	assert.NotSame(t, first.Navigator, second.Navigator)
	assert.NotSame(t, first.Controllers, second.Controllers)

	for _, h := range navigator.Hosts {
		assert.Equal(t, 2, a.created[h], "each activity gets its own %v executor", h)
	}

	l1 := digtest.MustResolve[navigator.Logger](t, first.Scope, LoggerKey)
	l2 := digtest.MustResolve[navigator.Logger](t, second.Scope, LoggerKey)
	assert.Same(t, l1, l2)

	assert.Same(t,
		digtest.MustResolve[*Controllers](t, first.Scope, ControllersKey),
		first.Controllers,
	)
}

func TestOptionalExecutors(t *testing.T) {
	a := newApp(t, config.Default(), navigator.Fragment)
	digtest.MustValidate(t, a.c)
	defer func() { assert.NoError(t, a.c.Close()) }()

	f := digtest.MustResolve[*NavigatorFactory](t, a.c, FactoryKey)
	assert.Equal(t, []navigator.HostType{navigator.Fragment}, f.Hosts())

	activity, err := OpenActivity(a.c)
	require.NoError(t, err)
	defer activity.Close()

	require.NoError(t, activity.Navigator.Navigate(homeRoute{}, "start"))
	err = activity.Navigator.Navigate(detailsRoute{}, "start")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no executor registered for COMPOSE")
}

func TestMissingRegistry(t *testing.T) {
	c := digtest.New(t)
	require.NoError(t, Module(c, config.Default(), WithZapLogger(zap.NewNop())))

	err := c.Validate()
	require.Error(t, err)
	var missing *dig.MissingBindingError
	require.True(t, errors.As(err, &missing), "got %v", err)
	assert.Equal(t, RegistryKey, missing.Key)
	assert.Equal(t, []dig.Key{FactoryKey}, missing.Path)

	_, err = OpenActivity(c)
	require.Error(t, err)
	require.True(t, errors.As(err, &missing), "got %v", err)
	assert.Equal(t, []dig.Key{NavigatorKey, FactoryKey}, missing.Path)
}

func TestModuleTwice(t *testing.T) {
	c := digtest.New(t)
	require.NoError(t, Module(c, config.Default()))

	err := Module(c, config.Default())
	require.Error(t, err)
	var dup *dig.DuplicateBindingError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, ConfigKey, dup.Key)
}

func TestDedupeWindowFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Navigator.DedupeWindow = time.Second
	a := newApp(t, cfg, navigator.Hosts...)
	defer func() { assert.NoError(t, a.c.Close()) }()

	activity, err := OpenActivity(a.c)
	require.NoError(t, err)
	defer activity.Close()

	nav := activity.Navigator
	require.NoError(t, nav.Navigate(homeRoute{}, "tap"))
	a.clock.Add(800 * time.Millisecond)
	require.NoError(t, nav.Navigate(homeRoute{}, "tap"))
	a.clock.Add(300 * time.Millisecond)
	require.NoError(t, nav.Navigate(homeRoute{}, "tap"))

	assert.Len(t, a.executors[navigator.Fragment].routes, 2)
	assert.Equal(t, 1, a.logs.FilterMessage("dropped").Len())
}

func TestLoggingDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Navigator.EnableLogging = false
	a := newApp(t, cfg, navigator.Hosts...)
	defer func() { assert.NoError(t, a.c.Close()) }()

	activity, err := OpenActivity(a.c)
	require.NoError(t, err)
	defer activity.Close()

	require.NoError(t, activity.Navigator.Navigate(homeRoute{}, "start"))
	assert.Zero(t, a.logs.Len())
}

func TestNewZapLogger(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		cfg := config.Default()
		cfg.Logging.Level = "warn"
		log, err := NewZapLogger(cfg)
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.InfoLevel))
		assert.True(t, log.Core().Enabled(zap.WarnLevel))
	})

	t.Run("production", func(t *testing.T) {
		cfg := config.Default()
		cfg.Environment = config.Production
		log, err := NewZapLogger(cfg)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zap.InfoLevel))
		assert.False(t, log.Core().Enabled(zap.DebugLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := config.Default()
		cfg.Logging.Level = "loud"
		_, err := NewZapLogger(cfg)
		assert.ErrorContains(t, err, "parsing log level")
	})
}
