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

import "go.uber.org/multierr"

// Validate seals the container and checks the declared dependencies of
// every binding without creating anything. It reports, combined:
//
//   - required dependencies that are not bound,
//   - cycles among bound dependencies,
//   - singletons depending on a scoped binding, directly or through
//     unscoped bindings.
//
// Providers that resolve keys they did not declare are only checked at
// resolution time.
func (c *Container) Validate() error {
	c.Seal()

	var errs error
	for _, b := range c.snapshot() {
		for _, d := range b.provider.deps {
			if _, ok := c.bindings[d.Key]; !ok && !d.Optional {
				errs = multierr.Append(errs, &MissingBindingError{Key: d.Key, Path: []Key{b.key}})
			}
		}
		if b.provider.lifetime == Singleton {
			errs = multierr.Append(errs, c.findCaptures(b))
		}
	}
	return multierr.Append(errs, c.findCycles())
}

// findCaptures reports the scoped bindings a singleton reaches through its
// declared dependencies. Other singletons end the walk; they are checked
// on their own.
func (c *Container) findCaptures(root *binding) error {
	var (
		errs error
		seen = map[Key]bool{root.key: true}
		walk func(b *binding, path []Key)
	)

	walk = func(b *binding, path []Key) {
		for _, d := range b.provider.deps {
			dep, ok := c.bindings[d.Key]
			if !ok || seen[d.Key] {
				continue
			}
			seen[d.Key] = true

			switch dep.provider.lifetime {
			case Scoped:
				errs = multierr.Append(errs, &ScopeError{Key: d.Key, Path: clonePath(path)})
			case Unscoped:
				walk(dep, append(clonePath(path), d.Key))
			}
		}
	}

	walk(root, []Key{root.key})
	return errs
}

const (
	unvisited = iota
	visiting
	visited
)

func (c *Container) findCycles() error {
	var (
		errs  error
		state = make(map[Key]int, len(c.bindings))
		stack []Key
		visit func(Key)
	)

	visit = func(k Key) {
		state[k] = visiting
		stack = append(stack, k)

		for _, d := range c.bindings[k].provider.deps {
			if _, ok := c.bindings[d.Key]; !ok {
				continue
			}
			switch state[d.Key] {
			case unvisited:
				visit(d.Key)
			case visiting:
				for i := range stack {
					if stack[i] == d.Key {
						cycle := append(append([]Key(nil), stack[i:]...), d.Key)
						errs = multierr.Append(errs, &CyclicDependencyError{Cycle: cycle})
						break
					}
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[k] = visited
	}

	for _, b := range c.snapshot() {
		if state[b.key] == unvisited {
			visit(b.key)
		}
	}
	return errs
}
