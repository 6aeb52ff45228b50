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

package navigator

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// HostType identifies the UI paradigm hosting a destination.
type HostType int

const (
	// Fragment destinations live in the fragment navigation host.
	Fragment HostType = iota
	// Compose destinations live in the compose navigation host.
	Compose
	// Activity destinations start a separate activity.
	Activity
)

func (h HostType) String() string {
	switch h {
	case Fragment:
		return "FRAGMENT"
	case Compose:
		return "COMPOSE"
	case Activity:
		return "ACTIVITY"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the lower-case name used to tell the executors of each
// host apart.
func (h HostType) Qualifier() string {
	return strings.ToLower(h.String())
}

// Hosts lists every HostType.
var Hosts = []HostType{Fragment, Compose, Activity}

// Route is a navigation destination. Applications define their own route
// types; the dynamic type of a Route identifies it for deduplication.
type Route interface{}

type backRoute struct{}

func (backRoute) String() string { return "Back" }

// BackRoute is dispatched by Navigator.Back to the active host's executor.
var BackRoute Route = backRoute{}

// IsBack reports whether r is BackRoute.
func IsBack(r Route) bool {
	_, ok := r.(backRoute)
	return ok
}

// DestinationSpec says where a route is handled.
type DestinationSpec struct {
	Host HostType
	Name string
}

// Command is a single navigation request.
type Command struct {
	ID        string
	Route     Route
	Source    string
	Timestamp time.Time
}

// NewCommand returns a Command with a short random ID.
func NewCommand(route Route, source string, now time.Time) Command {
	return Command{
		ID:        uuid.NewString()[:8],
		Route:     route,
		Source:    source,
		Timestamp: now,
	}
}

// Executor performs navigation for one host type.
type Executor interface {
	Execute(Command) error
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(Command) error

// Execute calls f.
func (f ExecutorFunc) Execute(cmd Command) error { return f(cmd) }

// RouteRegistry maps routes to their destinations.
type RouteRegistry interface {
	Spec(Route) (DestinationSpec, error)
}

// RegistryFunc adapts a function to RouteRegistry.
type RegistryFunc func(Route) (DestinationSpec, error)

// Spec calls f.
func (f RegistryFunc) Spec(r Route) (DestinationSpec, error) { return f(r) }

// ErrUnknownRoute is returned by registries for routes they do not map.
var ErrUnknownRoute = errors.New("unknown route")

// UnsupportedRoute returns the error an executor reports for a route it
// cannot handle.
func UnsupportedRoute(host HostType, r Route) error {
	return errors.Errorf("route %v not supported by %v executor", r, host)
}
