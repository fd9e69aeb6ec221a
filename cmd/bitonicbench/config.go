// Copyright 2025 go-bitonic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-bitonic/bitonic"
	"github.com/ajroetker/go-bitonic/bitonic/contrib/datagen"
)

const (
	executorGoroutine = "goroutine"
	executorPool      = "pool"
)

// Config holds the benchmark settings. Values come from the defaults, then an
// optional TOML file, then explicitly set flags.
type Config struct {
	Threshold int
	Executor  string
	Workers   int
	Order     string
	Seed      uint64
	Rounds    int
	LogLevel  string
	JSONLog   bool
}

func defaultConfig() Config {
	return Config{
		Threshold: bitonic.ParallelThreshold(),
		Executor:  executorGoroutine,
		Workers:   0,
		Order:     bitonic.Ascending.String(),
		Seed:      datagen.DefaultSeed,
		Rounds:    1,
		LogLevel:  "info",
	}
}

// loadConfigFile overlays the keys present in the TOML file at path onto cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return errors.Wrapf(overlay(tree, cfg), "config %s", path)
}

func overlay(tree *toml.Tree, cfg *Config) error {
	for _, key := range tree.Keys() {
		var err error
		switch key {
		case "threshold":
			err = setInt(tree, key, &cfg.Threshold)
		case "workers":
			err = setInt(tree, key, &cfg.Workers)
		case "rounds":
			err = setInt(tree, key, &cfg.Rounds)
		case "seed":
			var seed int
			if err = setInt(tree, key, &seed); err == nil {
				if seed < 0 {
					return errors.Errorf("seed must not be negative, got %d", seed)
				}
				cfg.Seed = uint64(seed)
			}
		case "executor":
			err = setString(tree, key, &cfg.Executor)
		case "order":
			err = setString(tree, key, &cfg.Order)
		case "log_level":
			err = setString(tree, key, &cfg.LogLevel)
		case "json_log":
			b, ok := tree.Get(key).(bool)
			if !ok {
				err = errors.Errorf("%s: want a boolean", key)
			}
			cfg.JSONLog = b
		default:
			err = errors.Errorf("unknown key %q", key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func setInt(tree *toml.Tree, key string, dst *int) error {
	v, ok := tree.Get(key).(int64)
	if !ok {
		return errors.Errorf("%s: want an integer", key)
	}
	*dst = int(v)
	return nil
}

func setString(tree *toml.Tree, key string, dst *string) error {
	v, ok := tree.Get(key).(string)
	if !ok {
		return errors.Errorf("%s: want a string", key)
	}
	*dst = v
	return nil
}

// validate checks cfg and returns the parsed sort order.
func (c Config) validate() (bitonic.SortOrder, error) {
	order, err := bitonic.ParseSortOrder(c.Order)
	if err != nil {
		return 0, err
	}
	if c.Threshold < 1 {
		return 0, errors.Errorf("threshold must be positive, got %d", c.Threshold)
	}
	if c.Rounds < 1 {
		return 0, errors.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	switch c.Executor {
	case executorGoroutine, executorPool:
	default:
		return 0, errors.Errorf("unknown executor %q (want %q or %q)", c.Executor, executorGoroutine, executorPool)
	}
	return order, nil
}
