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
	"time"

	"github.com/navkit/navdi/digevent"
	"github.com/pkg/errors"
)

// Resolver resolves keys to values. *Container and *Scope are Resolvers;
// creation functions receive one that tracks the keys under construction.
type Resolver interface {
	Resolve(Key) (interface{}, error)
}

var (
	_ Resolver = (*Container)(nil)
	_ Resolver = (*Scope)(nil)
	_ Resolver = (*resolution)(nil)
)

// Resolve resolves k through r and converts the value to T.
func Resolve[T any](r Resolver, k Key) (T, error) {
	var zero T

	v, err := r.Resolve(k)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.Errorf("%v resolved to %T, not %v", k, v, typeOf[T]())
	}
	return t, nil
}

// MustResolve is Resolve for startup code: it panics on error.
func MustResolve[T any](r Resolver, k Key) T {
	t, err := Resolve[T](r, k)
	if err != nil {
		panic(err)
	}
	return t
}

// Get resolves the unqualified key of T.
func Get[T any](r Resolver) (T, error) {
	return Resolve[T](r, KeyOf[T]())
}

// resolution is a single top-level Resolve call. path holds the keys whose
// creation is in progress, outermost first, so cycles are reported instead
// of recursing or blocking on a singleton's own lock.
type resolution struct {
	c *Container

	// nil outside a scope and inside singletons
	scope *Scope

	path []Key
	// providers[i] is the provider creating path[i]. A provider bound under
	// several keys shares its cell, so it may come back under another key.
	providers []*Provider
}

func (r *resolution) Resolve(k Key) (interface{}, error) {
	if k.Type == nil {
		return nil, errNilType
	}

	for i, p := range r.path {
		if p == k {
			cycle := append(append([]Key(nil), r.path[i:]...), k)
			return nil, &CyclicDependencyError{Cycle: cycle}
		}
	}

	b, ok := r.c.bindings[k]
	if !ok {
		return nil, &MissingBindingError{Key: k, Path: clonePath(r.path)}
	}
	for i, p := range r.providers {
		if p == b.provider {
			cycle := append(append([]Key(nil), r.path[i:]...), k)
			return nil, &CyclicDependencyError{Cycle: cycle}
		}
	}
	return r.instantiate(b)
}

func (r *resolution) instantiate(b *binding) (interface{}, error) {
	child := &resolution{
		c:         r.c,
		scope:     r.scope,
		path:      append(clonePath(r.path), b.key),
		providers: append(append([]*Provider(nil), r.providers...), b.provider),
	}

	p := b.provider
	switch p.lifetime {
	case Singleton:
		// Singletons outlive any scope, so they must not capture scoped
		// values.
		child.scope = nil
		return p.cell.get(func() (interface{}, error) {
			v, err := child.create(b)
			if err == nil && !p.supplied {
				r.c.instances.add(b.key, v)
			}
			return v, err
		})

	case Scoped:
		if r.scope == nil {
			return nil, &ScopeError{Key: b.key, Path: clonePath(r.path)}
		}
		s := r.scope
		return s.cells[b.key].get(func() (interface{}, error) {
			v, err := child.create(b)
			if err == nil {
				s.instances.add(b.key, v)
			}
			return v, err
		})

	default:
		return child.create(b)
	}
}

// create runs the provider of b. r.path ends with b.key.
func (r *resolution) create(b *binding) (interface{}, error) {
	start := time.Now()
	v, err := b.provider.call(r)
	if err != nil && !isResolutionError(err) {
		err = &ProviderCreationError{
			Key:  b.key,
			Path: clonePath(r.path[:len(r.path)-1]),
			Err:  err,
		}
	}

	r.c.logger.LogEvent(&digevent.Created{
		Key:     b.key.String(),
		Scope:   b.provider.lifetime.String(),
		Runtime: time.Since(start),
		Err:     err,
	})
	return v, err
}

func clonePath(path []Key) []Key {
	if len(path) == 0 {
		return nil
	}
	return append([]Key(nil), path...)
}
