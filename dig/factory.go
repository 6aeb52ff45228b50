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
	"fmt"

	"github.com/pkg/errors"
)

// Factory builds a T from an ordered list of dependencies.
//
// Construct resolves Deps strictly in declaration order, so the creation
// side effects of a given container are reproducible, then passes the
// values to Build in the same order. Optional dependencies that are not
// bound are passed as nil.
type Factory[T any] struct {
	Deps  []Dependency
	Build func(args []interface{}) (T, error)
}

// Construct resolves the dependencies of f through r and builds a T.
func (f Factory[T]) Construct(r Resolver) (T, error) {
	var zero T

	args := make([]interface{}, len(f.Deps))
	for i, d := range f.Deps {
		v, err := r.Resolve(d.Key)
		if err != nil {
			var missing *MissingBindingError
			if d.Optional && errors.As(err, &missing) && missing.Key == d.Key {
				continue
			}
			return zero, err
		}
		args[i] = v
	}
	return f.Build(args)
}

// Provider adapts f into a Provider whose declared dependencies are f's.
func (f Factory[T]) Provider(lifetime Lifetime) *Provider {
	return Provide[T](lifetime, f.Construct, f.Deps...)
}

// Arg returns args[i] as a T. A nil argument, as produced by an unbound
// optional dependency, yields the zero T. Asking for the wrong type is a
// programming error and panics; inside a provider the panic is reported as
// a *ProviderCreationError.
func Arg[T any](args []interface{}, i int) T {
	var zero T
	if args[i] == nil {
		return zero
	}
	t, ok := args[i].(T)
	if !ok {
		panic(fmt.Sprintf("argument %d is %T, not %v", i, args[i], typeOf[T]()))
	}
	return t
}
