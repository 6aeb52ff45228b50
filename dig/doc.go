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

// Package dig is a small dependency injection container with explicit
// registration.
//
// There are two sides of dig: Register and Resolve.
//
// # Register
//
// A binding associates a Key, a type plus an optional qualifier, with a
// Provider. Providers are built with Provide, Supply, or from a Factory.
//
//	c := dig.New()
//	err := c.Register(dig.KeyOf[*Config](), dig.Supply(&Config{Name: "nav"}))
//
//	err = c.Register(
//		dig.QualifiedKeyOf[Executor]("compose"),
//		dig.Provide(dig.Unscoped, func(r dig.Resolver) (Executor, error) {
//			cfg, err := dig.Get[*Config](r)
//			if err != nil {
//				return nil, err
//			}
//			return newComposeExecutor(cfg), nil
//		}, dig.Required(dig.KeyOf[*Config]())),
//	)
//
// Registering a key twice is an error. The container is sealed by its first
// resolution; registering after that is an error too.
//
// # Resolve
//
// Resolve retrieves values by key, creating providers lazily. Singletons are
// created once per container, even when resolved concurrently; unscoped
// providers run on every resolution; scoped providers run once per Scope.
//
//	exec, err := dig.Resolve[Executor](c, dig.QualifiedKeyOf[Executor]("compose"))
//
// Unbound keys fail with *MissingBindingError, cycles with
// *CyclicDependencyError and failing providers with *ProviderCreationError.
// Call Validate right after registration to catch missing bindings and
// cycles before anything is created.
package dig
