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

package demoapp

import (
	"fmt"

	"github.com/navkit/navdi/navigator"
	"go.uber.org/zap"
)

// FragmentExecutor performs fragment navigation on a Host.
type FragmentExecutor struct {
	Host *Host
	Log  *zap.Logger
}

// Execute implements navigator.Executor.
func (e *FragmentExecutor) Execute(cmd navigator.Command) error {
	switch r := cmd.Route.(type) {
	case FragmentHome:
		e.Host.Push("fragmentHome")
	case FragmentDetails:
		e.Host.Push("fragmentDetails?orderId=" + r.OrderID)
	default:
		if !navigator.IsBack(r) {
			return navigator.UnsupportedRoute(navigator.Fragment, r)
		}
		if err := e.Host.Pop(); err != nil {
			return err
		}
	}
	e.Log.Info("fragment navigation", zap.String("id", cmd.ID), zap.Strings("stack", e.Host.Stack()))
	return nil
}

// ComposeExecutor performs compose navigation on a Host.
type ComposeExecutor struct {
	Host *Host
	Log  *zap.Logger
}

// Execute implements navigator.Executor.
func (e *ComposeExecutor) Execute(cmd navigator.Command) error {
	switch r := cmd.Route.(type) {
	case ComposeHome:
		e.Host.Push("composeHome")
	case ComposeDetails:
		e.Host.Push(fmt.Sprintf("composeDetails/%s", r.ProductID))
	default:
		if !navigator.IsBack(r) {
			return navigator.UnsupportedRoute(navigator.Compose, r)
		}
		if err := e.Host.Pop(); err != nil {
			return err
		}
	}
	e.Log.Info("compose navigation", zap.String("id", cmd.ID), zap.Strings("stack", e.Host.Stack()))
	return nil
}

// ActivityExecutor starts activities through a Launcher.
type ActivityExecutor struct {
	Launcher *Launcher
	Log      *zap.Logger
}

// Execute implements navigator.Executor.
func (e *ActivityExecutor) Execute(cmd navigator.Command) error {
	if _, ok := cmd.Route.(LegacyActivity); !ok {
		return navigator.UnsupportedRoute(navigator.Activity, cmd.Route)
	}
	e.Launcher.Start("LegacyActivity")
	e.Log.Info("activity started", zap.String("id", cmd.ID), zap.String("activity", "LegacyActivity"))
	return nil
}
