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

// Package navigator defines the navigation types composed by navdi: routes,
// destinations, per-host executors, the route registry and the navigation
// logger, plus a Navigator that dispatches commands to the executor of the
// destination's host.
//
// Route tables, back stacks and host readiness belong to the application;
// the Navigator only deduplicates double taps and forwards commands.
//
//	nav, err := navigator.NewBuilder().
//		Registry(registry).
//		Executor(navigator.Fragment, fragmentExecutor).
//		Executor(navigator.Compose, composeExecutor).
//		OnHostSwitch(func(h navigator.HostType) { /* toggle containers */ }).
//		Build()
//	if err != nil {
//		return err
//	}
//	err = nav.Navigate(OrderDetails{ID: "123"}, "order_list_click")
package navigator
