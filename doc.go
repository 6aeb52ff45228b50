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

// Package navdi composes the navigation module by hand: it registers the
// configuration, the loggers, the activity-scoped controllers and the
// NavigatorFactory in a dig.Container, leaving the route registry and the
// per-host executors to the application.
//
//	c := dig.New()
//	if err := navdi.Module(c, cfg); err != nil {
//		return err
//	}
//	// register navdi.RegistryKey and the executor keys here
//	if err := c.Validate(); err != nil {
//		return err
//	}
//
//	activity, err := navdi.OpenActivity(c)
//	if err != nil {
//		return err
//	}
//	defer activity.Close()
//	err = activity.Navigator.Navigate(route, "home_button_click")
package navdi
