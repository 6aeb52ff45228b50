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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "navdi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\n"), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--config", writeConfig(t), "--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "myapp://order/123", "myapp://compose/7", "https://example.com/order/9", "myapp://legacy")
	require.NoError(t, err)

	assert.Equal(t, "host switched to COMPOSE\n"+
		"host switched to FRAGMENT\n"+
		"fragment: [fragmentHome fragmentDetails?orderId=123 fragmentDetails?orderId=9]\n"+
		"compose: [composeDetails/7]\n"+
		"started: [LegacyActivity]\n"+
		"active host: FRAGMENT\n", out)
}

func TestRunBadDeepLink(t *testing.T) {
	_, err := execute(t, "run", "myapp://settings")
	assert.ErrorContains(t, err, "no route for deep link")
}

func TestGraph(t *testing.T) {
	out, err := execute(t, "graph")
	require.NoError(t, err)

	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "*navdi.NavigatorFactory")
	assert.Contains(t, out, "navigator.Executor[qualifier=")
}

func TestBadConfig(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "graph"})
	assert.ErrorContains(t, cmd.Execute(), "loading configuration")
}
