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
	"net/url"
	"strings"

	"github.com/navkit/navdi/navigator"
	"github.com/pkg/errors"
)

// ErrNoRoute is returned for deep links that do not map to a route.
var ErrNoRoute = errors.New("no route for deep link")

// ParseDeepLink maps a deep link to a route. Supported links:
//
//	myapp://order/<id>
//	myapp://compose/<id>
//	myapp://legacy
//	https://example.com/order/<id>
func ParseDeepLink(link string) (navigator.Route, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing deep link %q", link)
	}

	var route navigator.Route
	switch {
	case u.Scheme == "myapp":
		// The first segment is the URL host: myapp://order/123.
		route = appRoute(append([]string{u.Host}, segments(u.Path)...))
	case u.Scheme == "https" && u.Host == "example.com":
		route = webRoute(segments(u.Path))
	}
	if route == nil {
		return nil, errors.Wrapf(ErrNoRoute, "%q", link)
	}
	return route, nil
}

func appRoute(segs []string) navigator.Route {
	switch segs[0] {
	case "order":
		if len(segs) > 1 {
			return FragmentDetails{OrderID: segs[1]}
		}
	case "compose":
		if len(segs) > 1 {
			return ComposeDetails{ProductID: segs[1]}
		}
	case "legacy":
		return LegacyActivity{}
	}
	return nil
}

func webRoute(segs []string) navigator.Route {
	if len(segs) > 1 && segs[0] == "order" {
		return FragmentDetails{OrderID: segs[1]}
	}
	return nil
}

func segments(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
