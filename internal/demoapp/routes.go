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

// Package demoapp is a small application built on the navigation module:
// its routes, its route registry, one executor per host and a deep link
// parser. Hosts are simulated by in-memory back stacks.
package demoapp

import (
	"fmt"

	"github.com/navkit/navdi/navigator"
)

// FragmentHome is the start destination of the fragment host.
type FragmentHome struct{}

// FragmentDetails shows an order in the fragment host.
type FragmentDetails struct {
	OrderID string
}

// ComposeHome is the start destination of the compose host.
type ComposeHome struct{}

// ComposeDetails shows a product in the compose host.
type ComposeDetails struct {
	ProductID string
}

// LegacyActivity starts the legacy activity.
type LegacyActivity struct{}

func (FragmentHome) String() string      { return "FragmentHome" }
func (r FragmentDetails) String() string { return fmt.Sprintf("FragmentDetails(%s)", r.OrderID) }
func (ComposeHome) String() string       { return "ComposeHome" }
func (r ComposeDetails) String() string  { return fmt.Sprintf("ComposeDetails(%s)", r.ProductID) }
func (LegacyActivity) String() string    { return "LegacyActivity" }

// Registry maps the demo routes to their hosts.
type Registry struct{}

var _ navigator.RouteRegistry = Registry{}

// Spec implements navigator.RouteRegistry.
func (Registry) Spec(r navigator.Route) (navigator.DestinationSpec, error) {
	switch r.(type) {
	case FragmentHome:
		return navigator.DestinationSpec{Host: navigator.Fragment, Name: "FragmentHome"}, nil
	case FragmentDetails:
		return navigator.DestinationSpec{Host: navigator.Fragment, Name: "FragmentDetails"}, nil
	case ComposeHome:
		return navigator.DestinationSpec{Host: navigator.Compose, Name: "ComposeHome"}, nil
	case ComposeDetails:
		return navigator.DestinationSpec{Host: navigator.Compose, Name: "ComposeDetails"}, nil
	case LegacyActivity:
		return navigator.DestinationSpec{Host: navigator.Activity, Name: "LegacyActivity"}, nil
	}
	return navigator.DestinationSpec{}, navigator.ErrUnknownRoute
}
