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

// navdemo composes the demo application by hand and drives its navigator.
//
//	navdemo run myapp://order/123 myapp://compose/7
//	navdemo graph | dot -Tsvg > graph.svg
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/navkit/navdi"
	"github.com/navkit/navdi/config"
	"github.com/navkit/navdi/dig"
	"github.com/navkit/navdi/digevent"
	"github.com/navkit/navdi/internal/demoapp"
	"github.com/navkit/navdi/navigator"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log, _ := zap.NewProduction()
		log.Error("navdemo failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

type flags struct {
	configFile string
	envFiles   []string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "navdemo",
		Short:         "Drive the demo navigator through a hand-wired container",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&f.configFile, "config", "", "YAML configuration file")
	root.PersistentFlags().StringSliceVar(&f.envFiles, "env-file", []string{".env"}, ".env files to load")

	root.AddCommand(
		&cobra.Command{
			Use:   "run [deeplink...]",
			Short: "Open an activity and follow the given deep links",
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(out, f, args)
			},
		},
		&cobra.Command{
			Use:   "graph",
			Short: "Print the dependency graph in DOT format",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return graph(out, f)
			},
		},
	)
	return root
}

// app is the composed container and the logger it writes to.
type app struct {
	c   *dig.Container
	log *zap.Logger
}

func newApp(f flags) (*app, error) {
	cfg, err := config.Load(f.configFile, f.envFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "loading configuration")
	}
	log, err := navdi.NewZapLogger(cfg)
	if err != nil {
		return nil, err
	}

	c := dig.New(dig.WithLogger(&digevent.ZapLogger{Logger: log.Named("dig")}))
	err = multierr.Append(
		navdi.Module(c, cfg, navdi.WithZapLogger(log)),
		demoapp.Module(c),
	)
	if err != nil {
		return nil, errors.Wrap(err, "composing container")
	}
	return &app{c: c, log: log}, nil
}

func (a *app) close() error {
	err := a.c.Close()
	// Sync fails on terminals; there is nothing to do about it.
	_ = a.log.Sync()
	return err
}

func run(out io.Writer, f flags, links []string) (err error) {
	a, err := newApp(f)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, a.close()) }()

	if err := a.c.Validate(); err != nil {
		return errors.Wrap(err, "validating container")
	}

	activity, err := navdi.OpenActivity(a.c)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, activity.Close()) }()

	activity.Controllers.SetOnHostSwitch(func(h navigator.HostType) {
		fmt.Fprintf(out, "host switched to %v\n", h)
	})

	nav := activity.Navigator
	if err := nav.Navigate(demoapp.FragmentHome{}, "launch"); err != nil {
		return err
	}
	for _, link := range links {
		route, err := demoapp.ParseDeepLink(link)
		if err != nil {
			return err
		}
		if err := nav.Navigate(route, "deeplink"); err != nil {
			return errors.Wrapf(err, "following %v", link)
		}
	}

	for _, k := range []dig.Key{demoapp.FragmentHostKey, demoapp.ComposeHostKey} {
		h, err := dig.Resolve[*demoapp.Host](activity.Scope, k)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %v\n", h.Name(), h.Stack())
	}
	launcher, err := dig.Resolve[*demoapp.Launcher](activity.Scope, demoapp.LauncherKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "started: %v\n", launcher.Started())
	fmt.Fprintf(out, "active host: %v\n", nav.ActiveHost())
	return nil
}

func graph(out io.Writer, f flags) (err error) {
	a, err := newApp(f)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, a.close()) }()

	return a.c.DotGraph(out)
}
