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
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// DotGraph writes the declared dependency graph in Graphviz DOT format.
//
// Scoped bindings are drawn as boxes, optional edges are dashed and keys
// that are required but not bound are drawn in red.
func (c *Container) DotGraph(w io.Writer) (err error) {
	c.Seal()

	gv := graphviz.New()
	defer func() { err = multierr.Append(err, gv.Close()) }()

	graph, err := gv.Graph()
	if err != nil {
		return errors.Wrap(err, "creating graph")
	}
	defer func() { err = multierr.Append(err, graph.Close()) }()

	nodes := make(map[Key]*cgraph.Node)
	node := func(k Key) (*cgraph.Node, error) {
		if n, ok := nodes[k]; ok {
			return n, nil
		}
		n, err := graph.CreateNode(k.String())
		if err != nil {
			return nil, errors.Wrapf(err, "creating node for %v", k)
		}
		if b, ok := c.bindings[k]; !ok {
			n.SetColor("red")
		} else if b.provider.lifetime == Scoped {
			n.SetShape(cgraph.BoxShape)
		}
		nodes[k] = n
		return n, nil
	}

	for _, b := range c.snapshot() {
		from, err := node(b.key)
		if err != nil {
			return err
		}
		for _, d := range b.provider.deps {
			if _, ok := c.bindings[d.Key]; !ok && d.Optional {
				continue
			}
			to, err := node(d.Key)
			if err != nil {
				return err
			}
			e, err := graph.CreateEdge(fmt.Sprintf("%v->%v", b.key, d.Key), from, to)
			if err != nil {
				return errors.Wrapf(err, "creating edge %v -> %v", b.key, d.Key)
			}
			if d.Optional {
				e.SetStyle(cgraph.DashedEdgeStyle)
			}
		}
	}

	return gv.Render(graph, graphviz.XDOT, w)
}
