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
	"sync"
	"sync/atomic"

	"github.com/navkit/navdi/digevent"
	"github.com/navkit/navdi/internal/digreflect"
	"github.com/pkg/errors"
)

// An Option configures a Container.
type Option func(*Container)

// WithLogger sends the container's events to l.
func WithLogger(l digevent.Logger) Option {
	return func(c *Container) {
		c.logger = l
	}
}

// Container maps keys to providers.
//
// Bindings are registered at startup and become immutable once the
// container is sealed, either explicitly or by the first resolution. Lookups
// after sealing take no locks; only the lazy creation of singletons is
// synchronized, per provider.
type Container struct {
	logger digevent.Logger

	// mu guards registration. Once sealed, bindings and order are only
	// read.
	mu       sync.Mutex
	sealed   bool
	sealOnce sync.Once
	bindings map[Key]*binding
	order    []*binding

	closed    atomic.Bool
	instances instances
}

type binding struct {
	key      Key
	provider *Provider
	caller   string
}

// New returns an empty Container.
func New(opts ...Option) *Container {
	c := &Container{
		logger:   digevent.NopLogger,
		bindings: make(map[Key]*binding),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register binds k to p.
//
// Registering a key twice fails with a *DuplicateBindingError, and no key
// can be registered once the container is sealed. Both are startup defects.
func (c *Container) Register(k Key, p *Provider) (err error) {
	caller := digreflect.Caller()
	defer func() {
		ev := &digevent.Registered{Key: k.String(), CallerName: caller, Err: err}
		if p != nil {
			ev.Scope = p.lifetime.String()
		}
		c.logger.LogEvent(ev)
	}()

	if p == nil {
		return errors.Wrapf(errNilProvider, "cannot register %v", k)
	}
	if k.Type == nil {
		return errNilType
	}
	if p.typ == nil || p.create == nil {
		return errors.Wrapf(errNilProvider, "cannot register %v: provider was not built by Provide or Supply", k)
	}
	if !p.typ.AssignableTo(k.Type) {
		return errors.Errorf("cannot register %v: provider builds %v", k, p.typ)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed {
		return errors.Wrapf(errSealed, "cannot register %v", k)
	}
	if prev, ok := c.bindings[k]; ok {
		return &DuplicateBindingError{
			Key:          k,
			FirstCaller:  prev.caller,
			SecondCaller: caller,
		}
	}

	b := &binding{key: k, provider: p, caller: caller}
	c.bindings[k] = b
	c.order = append(c.order, b)
	return nil
}

// Seal stops the container from accepting new bindings. It is called
// implicitly by Resolve, Validate and NewScope.
func (c *Container) Seal() {
	c.sealOnce.Do(func() {
		c.mu.Lock()
		c.sealed = true
		n := len(c.order)
		c.mu.Unlock()

		c.logger.LogEvent(&digevent.Sealed{Bindings: n})
	})
}

// Resolve returns the value bound to k, creating it and its dependencies as
// needed.
func (c *Container) Resolve(k Key) (interface{}, error) {
	c.Seal()
	if c.closed.Load() {
		return nil, errors.Wrapf(errClosed, "cannot resolve %v", k)
	}
	return (&resolution{c: c}).Resolve(k)
}

// Has reports whether k is bound.
func (c *Container) Has(k Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.bindings[k]
	return ok
}

// Keys returns the bound keys in registration order.
func (c *Container) Keys() []Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]Key, len(c.order))
	for i, b := range c.order {
		keys[i] = b.key
	}
	return keys
}

// Close releases the singleton instances created by the container, in
// reverse creation order. Instances implementing io.Closer are closed; the
// errors are combined. Scopes opened from the container should be closed
// first.
func (c *Container) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.Seal()
	return c.instances.release(c.logger, Singleton)
}

// snapshot returns the bindings in registration order. The caller must have
// sealed the container.
func (c *Container) snapshot() []*binding {
	return c.order
}
