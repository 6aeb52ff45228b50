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

package dig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type config struct {
	name string
}

type logger struct {
	lines []string
}

type navigator struct {
	cfg       *config
	log       *logger
	executors []Executor
}

var navigatorFactory = Factory[*navigator]{
	Deps: []Dependency{
		Required(KeyOf[*config]()),
		Required(KeyOf[*logger]()),
		Required(QualifiedKeyOf[Executor]("fragment")),
		Required(QualifiedKeyOf[Executor]("compose")),
		Required(QualifiedKeyOf[Executor]("activity")),
	},
	Build: func(args []interface{}) (*navigator, error) {
		return &navigator{
			cfg: Arg[*config](args, 0),
			log: Arg[*logger](args, 1),
			executors: []Executor{
				Arg[Executor](args, 2),
				Arg[Executor](args, 3),
				Arg[Executor](args, 4),
			},
		}, nil
	},
}

func registerNavigatorGraph(t *testing.T, c *Container, created *[]string) {
	t.Helper()

	require.NoError(t, c.Register(KeyOf[*config](), Provide(Singleton, func(Resolver) (*config, error) {
		*created = append(*created, "config")
		return &config{name: "nav"}, nil
	})))
	require.NoError(t, c.Register(KeyOf[*logger](), Provide(Singleton, func(Resolver) (*logger, error) {
		*created = append(*created, "logger")
		return &logger{}, nil
	})))
	for _, host := range []string{"fragment", "compose", "activity"} {
		host := host
		require.NoError(t, c.Register(QualifiedKeyOf[Executor](host), Provide(Unscoped, func(Resolver) (Executor, error) {
			*created = append(*created, host)
			return &executor{host: host}, nil
		})))
	}
}

func TestFactoryConstruct(t *testing.T) {
	t.Parallel()

	var created []string
	c := New()
	registerNavigatorGraph(t, c, &created)

	first, err := navigatorFactory.Construct(c)
	require.NoError(t, err)
	second, err := navigatorFactory.Construct(c)
	require.NoError(t, err)

	assert.True(t, first.cfg == second.cfg, "Config is a singleton")
	assert.True(t, first.log == second.log, "Logger is a singleton")
	assert.Equal(t, "nav", first.cfg.name)

	hosts := make([]string, len(first.executors))
	for i, e := range first.executors {
		hosts[i] = e.(*executor).host
		for j, other := range first.executors {
			if i != j {
				assert.False(t, e == other, "executors %d and %d must be distinct", i, j)
			}
		}
		assert.False(t, e == second.executors[i], "unscoped executors are created per construction")
	}
	assert.Equal(t, []string{"fragment", "compose", "activity"}, hosts)
}

func TestFactoryDeclarationOrder(t *testing.T) {
	t.Parallel()

	var created []string
	c := New()
	registerNavigatorGraph(t, c, &created)

	_, err := navigatorFactory.Construct(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"config", "logger", "fragment", "compose", "activity"}, created)

	created = nil
	_, err = navigatorFactory.Construct(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"fragment", "compose", "activity"}, created,
		"singletons are not created again")
}

func TestFactoryFailsFast(t *testing.T) {
	t.Parallel()

	var created []string
	c := New()
	require.NoError(t, c.Register(KeyOf[*config](), Provide(Singleton, func(Resolver) (*config, error) {
		created = append(created, "config")
		return &config{}, nil
	})))
	require.NoError(t, c.Register(QualifiedKeyOf[Executor]("fragment"), Provide(Unscoped, func(Resolver) (Executor, error) {
		created = append(created, "fragment")
		return &executor{}, nil
	})))

	_, err := navigatorFactory.Construct(c)
	var missing *MissingBindingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, KeyOf[*logger](), missing.Key)
	assert.Equal(t, []string{"config"}, created, "resolution stops at the first missing key")
}

func TestFactoryOptional(t *testing.T) {
	t.Parallel()

	f := Factory[*navigator]{
		Deps: []Dependency{
			Required(KeyOf[*config]()),
			Optional(KeyOf[*logger]()),
		},
		Build: func(args []interface{}) (*navigator, error) {
			return &navigator{
				cfg: Arg[*config](args, 0),
				log: Arg[*logger](args, 1),
			}, nil
		},
	}

	t.Run("unbound", func(t *testing.T) {
		t.Parallel()

		c := New()
		require.NoError(t, c.Register(KeyOf[*config](), Supply(&config{})))

		n, err := f.Construct(c)
		require.NoError(t, err)
		assert.NotNil(t, n.cfg)
		assert.Nil(t, n.log)
	})

	t.Run("bound", func(t *testing.T) {
		t.Parallel()

		c := New()
		require.NoError(t, c.Register(KeyOf[*config](), Supply(&config{})))
		require.NoError(t, c.Register(KeyOf[*logger](), Supply(&logger{})))

		n, err := f.Construct(c)
		require.NoError(t, err)
		assert.NotNil(t, n.log)
	})

	t.Run("bound but broken", func(t *testing.T) {
		t.Parallel()

		c := New()
		require.NoError(t, c.Register(KeyOf[*config](), Supply(&config{})))
		require.NoError(t, c.Register(KeyOf[*logger](), Provide(Singleton, func(r Resolver) (*logger, error) {
			_, err := Get[*Grandchild](r)
			return &logger{}, err
		})))

		_, err := f.Construct(c)
		var missing *MissingBindingError
		require.ErrorAs(t, err, &missing, "an optional dependency's own dependencies are required")
		assert.Equal(t, KeyOf[*Grandchild](), missing.Key)
	})
}

func TestFactoryProvider(t *testing.T) {
	t.Parallel()

	var created []string
	c := New()
	registerNavigatorGraph(t, c, &created)
	p := navigatorFactory.Provider(Singleton)
	require.NoError(t, c.Register(KeyOf[*navigator](), p))

	assert.Equal(t, navigatorFactory.Deps, p.Dependencies())

	first, err := Get[*navigator](c)
	require.NoError(t, err)
	second, err := Get[*navigator](c)
	require.NoError(t, err)
	assert.True(t, first == second)
}

func TestArgWrongType(t *testing.T) {
	t.Parallel()

	f := Factory[*navigator]{
		Deps: []Dependency{Required(KeyOf[*config]())},
		Build: func(args []interface{}) (*navigator, error) {
			return &navigator{log: Arg[*logger](args, 0)}, nil
		},
	}

	c := New()
	require.NoError(t, c.Register(KeyOf[*config](), Supply(&config{})))
	require.NoError(t, c.Register(KeyOf[*navigator](), f.Provider(Unscoped)))

	_, err := Get[*navigator](c)
	var perr *ProviderCreationError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "argument 0 is *dig.config, not *dig.logger")
}
