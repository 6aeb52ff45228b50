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

var (
	errNilProvider = errors.New("provider must not be nil")
	errNilType     = errors.New("key must carry a type")
	errSealed      = errors.New("container is sealed: bindings are fixed after the first resolution")
	errClosed      = errors.New("container is closed")
	errScopeClosed = errors.New("scope is closed")
)

// MissingBindingError is returned when a key with no registered provider is
// resolved.
type MissingBindingError struct {
	Key Key

	// Path lists the keys being resolved when the missing key was requested,
	// outermost first. It is empty for a top-level request.
	Path []Key
}

func (e *MissingBindingError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("missing binding for %v", e.Key)
	}
	return fmt.Sprintf("missing binding for %v (required by %v)", e.Key, formatPath(e.Path))
}

// DuplicateBindingError is returned when a key is registered twice.
type DuplicateBindingError struct {
	Key Key

	// FirstCaller and SecondCaller name the functions that registered the
	// accepted and the rejected binding.
	FirstCaller  string
	SecondCaller string
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("duplicate binding for %v: already registered by %v, registered again by %v",
		e.Key, e.FirstCaller, e.SecondCaller)
}

// CyclicDependencyError is returned when resolving a key transitively
// requires the same key again.
type CyclicDependencyError struct {
	// Cycle starts and ends with the same key.
	Cycle []Key
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency detected: %v", formatPath(e.Cycle))
}

// ProviderCreationError is returned when a provider's creation function
// fails or panics. Nothing is cached for the failed call.
type ProviderCreationError struct {
	Key  Key
	Path []Key
	Err  error
}

func (e *ProviderCreationError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("failed to create %v: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("failed to create %v (required by %v): %v", e.Key, formatPath(e.Path), e.Err)
}

// Unwrap returns the error of the creation function.
func (e *ProviderCreationError) Unwrap() error { return e.Err }

// Cause is the pkg/errors spelling of Unwrap.
func (e *ProviderCreationError) Cause() error { return e.Err }

// ScopeError is returned when a scoped binding is resolved where no scope
// is active: directly from the Container, or from inside a singleton.
type ScopeError struct {
	Key  Key
	Path []Key
}

func (e *ScopeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%v is scoped and must be resolved through a Scope", e.Key)
	}
	return fmt.Sprintf("%v is scoped and cannot be resolved outside a Scope (required by %v)",
		e.Key, formatPath(e.Path))
}

// isResolutionError reports whether err already describes a wiring problem
// and should travel up unchanged instead of being wrapped again.
func isResolutionError(err error) bool {
	var (
		missing  *MissingBindingError
		cyclic   *CyclicDependencyError
		creation *ProviderCreationError
		scope    *ScopeError
	)
	return errors.As(err, &missing) ||
		errors.As(err, &cyclic) ||
		errors.As(err, &creation) ||
		errors.As(err, &scope)
}
