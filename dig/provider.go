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
	"reflect"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Lifetime controls how often a provider's creation function runs.
type Lifetime int

const (
	// Unscoped providers run their creation function on every resolution.
	Unscoped Lifetime = iota

	// Singleton providers run their creation function once per container.
	Singleton

	// Scoped providers run their creation function once per Scope.
	Scoped
)

func (l Lifetime) String() string {
	switch l {
	case Unscoped:
		return "unscoped"
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	default:
		return "Lifetime(" + strconv.Itoa(int(l)) + ")"
	}
}

// CreateFunc builds a value. Dependencies are pulled from the Resolver.
type CreateFunc func(Resolver) (interface{}, error)

// Dependency is a key declared by a provider or factory.
type Dependency struct {
	Key Key

	// Optional dependencies resolve to nil when their key is not bound.
	Optional bool
}

// Required declares a dependency that must be bound.
func Required(k Key) Dependency { return Dependency{Key: k} }

// Optional declares a dependency that may be left unbound.
func Optional(k Key) Dependency { return Dependency{Key: k, Optional: true} }

// Provider wraps the creation function of a single typed value.
//
// A singleton Provider owns its cached instance: registering the same
// Provider under two keys makes both keys share one instance.
type Provider struct {
	typ      reflect.Type
	lifetime Lifetime
	create   CreateFunc
	deps     []Dependency
	supplied bool

	// set for singletons only
	cell *cell
}

// Provide returns a Provider for T. The declared deps are not resolved
// automatically; fn pulls what it needs from the Resolver. Declaring them
// lets Validate and DotGraph see the edges before anything is created.
func Provide[T any](lifetime Lifetime, fn func(Resolver) (T, error), deps ...Dependency) *Provider {
	p := &Provider{
		typ:      typeOf[T](),
		lifetime: lifetime,
		create: func(r Resolver) (interface{}, error) {
			v, err := fn(r)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		deps: deps,
	}
	if lifetime == Singleton {
		p.cell = new(cell)
	}
	return p
}

// Supply returns a singleton Provider for a value that already exists. The
// container never releases supplied values; they belong to the caller.
func Supply[T any](v T) *Provider {
	c := new(cell)
	c.value = v
	c.done.Store(true)
	return &Provider{
		typ:      typeOf[T](),
		lifetime: Singleton,
		create:   func(Resolver) (interface{}, error) { return v, nil },
		supplied: true,
		cell:     c,
	}
}

// Type returns the type of the values built by p.
func (p *Provider) Type() reflect.Type { return p.typ }

// Lifetime returns the lifetime of p.
func (p *Provider) Lifetime() Lifetime { return p.lifetime }

// Dependencies returns the keys p declared.
func (p *Provider) Dependencies() []Dependency {
	return append([]Dependency(nil), p.deps...)
}

// Get returns the value of p outside any container, resolving dependencies
// through r. Singletons are created at most once; a failed creation is not
// cached and the next Get retries.
//
// A singleton resolves its dependencies without a scope: when r is a *Scope
// its container is used instead. Values created by Get belong to the caller
// and are not released by Container.Close.
func (p *Provider) Get(r Resolver) (interface{}, error) {
	if p.typ == nil || p.create == nil {
		return nil, errNilProvider
	}
	k := Key{Type: p.typ}
	if s, ok := r.(*Scope); ok && p.lifetime == Singleton {
		r = s.c
	}
	create := func() (interface{}, error) {
		v, err := p.call(r)
		if err != nil && !isResolutionError(err) {
			err = &ProviderCreationError{Key: k, Err: err}
		}
		return v, err
	}

	switch p.lifetime {
	case Singleton:
		return p.cell.get(create)
	case Scoped:
		return nil, &ScopeError{Key: k}
	default:
		return create()
	}
}

// call runs the creation function, turning panics into errors.
func (p *Provider) call(r Resolver) (v interface{}, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				if isResolutionError(e) {
					err = e
				} else {
					err = errors.Wrap(e, "panic")
				}
				return
			}
			err = errors.Errorf("panic: %v", rec)
		}
	}()
	return p.create(r)
}

// cell is a lazily initialized value. The mutex is held only while the
// value is being created.
type cell struct {
	mu    sync.Mutex
	done  atomic.Bool
	value interface{}
}

func (c *cell) get(create func() (interface{}, error)) (interface{}, error) {
	if c.done.Load() {
		return c.value, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done.Load() {
		return c.value, nil
	}

	v, err := create()
	if err != nil {
		return nil, err
	}
	c.value = v
	c.done.Store(true)
	return v, nil
}
