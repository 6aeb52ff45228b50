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
	"errors"
	"sync"

	"github.com/navkit/navdi/digevent"
)

// Parent ->
//     Child ->
//         Grandchild
//     Executor[fragment], Executor[compose], Executor[activity]

type Grandchild struct {
	name string
}

type Child struct {
	gc *Grandchild
}

type Parent struct {
	c *Child
}

type Executor interface {
	Execute(route string) error
}

type executor struct {
	host string
}

func (e *executor) Execute(string) error { return nil }

func grandchildProvider(lifetime Lifetime) *Provider {
	return Provide(lifetime, func(Resolver) (*Grandchild, error) {
		return &Grandchild{name: "Grandchild"}, nil
	})
}

func childProvider(lifetime Lifetime) *Provider {
	return Provide(lifetime, func(r Resolver) (*Child, error) {
		gc, err := Get[*Grandchild](r)
		if err != nil {
			return nil, err
		}
		return &Child{gc: gc}, nil
	}, Required(KeyOf[*Grandchild]()))
}

func parentProvider(lifetime Lifetime) *Provider {
	return Provide(lifetime, func(r Resolver) (*Parent, error) {
		c, err := Get[*Child](r)
		if err != nil {
			return nil, err
		}
		return &Parent{c: c}, nil
	}, Required(KeyOf[*Child]()))
}

// closer records the order in which instances are released.
type closer struct {
	name  string
	log   *[]string
	err   error
	close sync.Once
}

func (c *closer) Close() error {
	c.close.Do(func() { *c.log = append(*c.log, c.name) })
	return c.err
}

var errSadness = errors.New("great sadness")

// spyLogger collects container events.
type spyLogger struct {
	mu     sync.Mutex
	events []digevent.Event
}

func (s *spyLogger) LogEvent(e digevent.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *spyLogger) created() []*digevent.Created {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*digevent.Created
	for _, e := range s.events {
		if c, ok := e.(*digevent.Created); ok {
			out = append(out, c)
		}
	}
	return out
}
