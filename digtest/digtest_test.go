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

package digtest

import (
	"fmt"
	"testing"

	"github.com/navkit/navdi/dig"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type tb struct {
	n    int
	logs []string
}

func (t *tb) Logf(msg string, args ...interface{}) { t.logs = append(t.logs, fmt.Sprintf(msg, args...)) }
func (t *tb) Errorf(string, ...interface{})         {}
func (t *tb) FailNow()                              { t.n++ }

type thing struct{ name string }

func TestSuccess(t *testing.T) {
	c := New(t)

	MustRegister(t, c, dig.KeyOf[*thing](), dig.Supply(&thing{name: "it"}))
	MustValidate(t, c)

	got := MustResolve[*thing](t, c, dig.KeyOf[*thing]())
	assert.Equal(t, "it", got.name)
}

func TestLogsEvents(t *testing.T) {
	spy := &tb{}
	c := New(spy)

	MustRegister(spy, c, dig.KeyOf[*thing](), dig.Supply(&thing{}))
	assert.Equal(t, 0, spy.n)
	if assert.Len(t, spy.logs, 1) {
		assert.Equal(t, "[dig] REGISTER\t*digtest.thing (singleton) <= github.com/navkit/navdi/digtest.TestLogsEvents\n", spy.logs[0])
	}
}

func TestRegisterFail(t *testing.T) {
	spy := &tb{}
	c := New(spy)

	MustRegister(spy, c, dig.KeyOf[*thing](), dig.Supply(&thing{}))
	MustRegister(spy, c, dig.KeyOf[*thing](), dig.Supply(&thing{}))
	assert.Equal(t, 1, spy.n, "Expected duplicate registration to fail.")
}

func TestResolveFail(t *testing.T) {
	spy := &tb{}
	c := New(spy)

	got := MustResolve[*thing](spy, c, dig.KeyOf[*thing]())
	assert.Equal(t, 1, spy.n, "Expected resolution of an unbound key to fail.")
	assert.Nil(t, got)
}

func TestValidateFail(t *testing.T) {
	spy := &tb{}
	c := New(spy)

	MustRegister(spy, c, dig.KeyOf[*thing](), dig.Provide(dig.Singleton, func(dig.Resolver) (*thing, error) {
		return &thing{}, nil
	}, dig.Required(dig.QualifiedKeyOf[*thing]("missing"))))
	MustValidate(spy, c)
	assert.Equal(t, 1, spy.n, "Expected validation to fail.")
}
