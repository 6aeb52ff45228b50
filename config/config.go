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

// Package config loads the navdi configuration from a YAML file, optional
// .env files and the environment.
//
// Precedence, lowest first: defaults, YAML file, .env files, process
// environment. Variables already set in the process environment are never
// overwritten by .env files.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/navkit/navdi/navigator"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file.
const (
	EnvEnvironment   = "NAVDI_ENVIRONMENT"
	EnvLogLevel      = "NAVDI_LOG_LEVEL"
	EnvDedupeWindow  = "NAVDI_DEDUPE_WINDOW"
	EnvEnableLogging = "NAVDI_ENABLE_LOGGING"
)

// Environments.
const (
	Development = "development"
	Production  = "production"
)

// Config is the configuration of a navdi application.
type Config struct {
	Environment string           `yaml:"environment" validate:"oneof=development production"`
	Logging     Logging          `yaml:"logging"`
	Navigator   navigator.Config `yaml:"navigator"`
}

// Logging configures the process-wide Zap logger.
type Logging struct {
	Level string `yaml:"level" validate:"zaplevel"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Environment: Development,
		Logging:     Logging{Level: "info"},
		Navigator:   navigator.DefaultConfig(),
	}
}

// Load reads the YAML file at path on top of the defaults, then the given
// .env files, then the environment. An empty path skips the file; missing
// .env files are skipped.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading config file")
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing config file %q", path)
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return errors.Wrap(godotenv.Load(existing...), "loading env files")
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvEnvironment); ok {
		c.Environment = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvDedupeWindow); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", EnvDedupeWindow)
		}
		c.Navigator.DedupeWindow = d
	}
	if v, ok := lookup(EnvEnableLogging); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", EnvEnableLogging)
		}
		c.Navigator.EnableLogging = b
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or a nil function.
	_ = v.RegisterValidation("zaplevel", func(fl validator.FieldLevel) bool {
		_, err := zapcore.ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return errors.Wrap(err, "validating configuration")
	}

	fe := fields[0]
	switch fe.StructNamespace() {
	case "Config.Environment":
		return errors.Errorf("unknown environment %q", fe.Value())
	case "Config.Logging.Level":
		return errors.Errorf("invalid log level %q", fe.Value())
	case "Config.Navigator.DedupeWindow":
		return errors.Errorf("dedupe window must not be negative, got %v", fe.Value())
	}
	return errors.Errorf("invalid %s: failed %q", fe.Namespace(), fe.Tag())
}
