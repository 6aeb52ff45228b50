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
	"io"
	"sync"
	"sync/atomic"

	"github.com/navkit/navdi/digevent"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Scope is a lifetime narrower than the container, such as a single
// activity. Scoped bindings resolved through a Scope are created once per
// Scope and released by Close; singleton and unscoped bindings behave as
// they do on the container.
type Scope struct {
	name string
	c    *Container

	// one cell per scoped binding, fixed at construction
	cells map[Key]*cell

	closed    atomic.Bool
	instances instances
}

// NewScope opens a Scope. The container is sealed first.
func (c *Container) NewScope(name string) *Scope {
	c.Seal()

	cells := make(map[Key]*cell)
	for _, b := range c.snapshot() {
		if b.provider.lifetime == Scoped {
			cells[b.key] = new(cell)
		}
	}

	c.logger.LogEvent(&digevent.ScopeOpened{Name: name})
	return &Scope{name: name, c: c, cells: cells}
}

// Name returns the name the scope was opened with.
func (s *Scope) Name() string { return s.name }

// Resolve returns the value bound to k as seen from this scope.
func (s *Scope) Resolve(k Key) (interface{}, error) {
	if s.closed.Load() {
		return nil, errors.Wrapf(errScopeClosed, "cannot resolve %v from scope %q", k, s.name)
	}
	if s.c.closed.Load() {
		return nil, errors.Wrapf(errClosed, "cannot resolve %v", k)
	}
	return (&resolution{c: s.c, scope: s}).Resolve(k)
}

// Close releases the scoped instances created through s in reverse creation
// order. Closing twice is a no-op.
func (s *Scope) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := s.instances.release(s.c.logger, Scoped)
	s.c.logger.LogEvent(&digevent.ScopeClosed{Name: s.name, Err: err})
	return err
}

// instances records cached values in creation order so they can be
// released when their owner ends.
type instances struct {
	mu    sync.Mutex
	items []instance
}

type instance struct {
	key   Key
	value interface{}
}

func (is *instances) add(k Key, v interface{}) {
	is.mu.Lock()
	defer is.mu.Unlock()

	is.items = append(is.items, instance{key: k, value: v})
}

func (is *instances) release(logger digevent.Logger, lifetime Lifetime) error {
	is.mu.Lock()
	items := is.items
	is.items = nil
	is.mu.Unlock()

	var errs error
	for i := len(items) - 1; i >= 0; i-- {
		closer, ok := items[i].value.(io.Closer)
		if !ok {
			continue
		}

		err := closer.Close()
		if err != nil {
			err = errors.Wrapf(err, "releasing %v", items[i].key)
		}
		logger.LogEvent(&digevent.Released{
			Key:   items[i].key.String(),
			Scope: lifetime.String(),
			Err:   err,
		})
		errs = multierr.Append(errs, err)
	}
	return errs
}
