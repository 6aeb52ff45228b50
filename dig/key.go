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
	"reflect"
	"strings"
)

// Key identifies a binding in a Container.
//
// Two keys are equal only if both the type and the qualifier match exactly,
// so several implementations of one interface can be registered side by
// side under different qualifiers.
type Key struct {
	Type      reflect.Type
	Qualifier string
}

// KeyOf returns the unqualified key for T.
func KeyOf[T any]() Key {
	return Key{Type: typeOf[T]()}
}

// QualifiedKeyOf returns the key for T distinguished by qualifier.
func QualifiedKeyOf[T any](qualifier string) Key {
	return Key{Type: typeOf[T](), Qualifier: qualifier}
}

func (k Key) String() string {
	var b strings.Builder
	if k.Type == nil {
		b.WriteString("<nil>")
	} else {
		b.WriteString(k.Type.String())
	}
	if k.Qualifier != "" {
		fmt.Fprintf(&b, "[qualifier=%q]", k.Qualifier)
	}
	return b.String()
}

// typeOf works for interface types too, unlike reflect.TypeOf on a zero
// value.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// formatPath renders a resolution path as "a -> b -> c".
func formatPath(path []Key) string {
	parts := make([]string, len(path))
	for i, k := range path {
		parts[i] = k.String()
	}
	return strings.Join(parts, " -> ")
}
