// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	defaultCount    = 10
	defaultLogLevel = "info"
)

// Config is loaded from the environment; command line flags override it.
type Config struct {
	Count    int    `config:"LAZYSEQ_COUNT"`
	LogLevel string `config:"LAZYSEQ_LOG_LEVEL"`
	Trace    bool   `config:"LAZYSEQ_TRACE"`
}

func loadConfig() (Config, error) {
	cfg := Config{Count: defaultCount, LogLevel: defaultLogLevel}
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load config from environment")
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Count < 0 {
		return eris.Errorf("count %d is negative", c.Count)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return nil
}
