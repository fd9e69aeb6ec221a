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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ajroetker/go-bitonic/bitonic"
)

func newTestBench(t *testing.T, cfg Config) (*bench, *bytes.Buffer) {
	t.Helper()
	order, err := cfg.validate()
	require.NoError(t, err)
	var out bytes.Buffer
	return &bench{cfg: cfg, order: order, out: &out, log: zaptest.NewLogger(t)}, &out
}

func TestBenchRun(t *testing.T) {
	cfg := defaultConfig()
	cfg.Threshold = 64
	b, out := newTestBench(t, cfg)

	r, err := b.run(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 1<<12, r.Len)
	assert.Positive(t, r.Sequential)
	assert.Positive(t, r.Parallel)
	assert.Positive(t, r.Speedup)

	got := out.String()
	assert.Contains(t, got, "sorting 4096 integers (16 KiB)")
	assert.Contains(t, got, "cpu info:")
	assert.Contains(t, got, "seq_sort: sorted 4096 integers in")
	assert.Contains(t, got, "par_sort: sorted 4096 integers in")
	assert.Contains(t, got, "speed up:")
}

func TestBenchRunPoolDescendingRounds(t *testing.T) {
	cfg := defaultConfig()
	cfg.Executor = executorPool
	cfg.Workers = 2
	cfg.Threshold = 16
	cfg.Order = "desc"
	cfg.Rounds = 3
	b, out := newTestBench(t, cfg)

	_, err := b.run(context.Background(), 10)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "over 3 rounds")
}

func TestBenchRunBits(t *testing.T) {
	b, _ := newTestBench(t, defaultConfig())
	for _, bits := range []int{0, -1, maxBits + 1} {
		_, err := b.run(context.Background(), bits)
		assert.Error(t, err, "bits=%d", bits)
	}
}

func TestBenchRunCanceled(t *testing.T) {
	b, _ := newTestBench(t, defaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.run(ctx, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"order", func(c *Config) { c.Order = "sideways" }},
		{"threshold", func(c *Config) { c.Threshold = 0 }},
		{"rounds", func(c *Config) { c.Rounds = 0 }},
		{"executor", func(c *Config) { c.Executor = "threads" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			_, err := cfg.validate()
			assert.Error(t, err)
		})
	}

	order, err := defaultConfig().validate()
	require.NoError(t, err)
	assert.Equal(t, bitonic.Ascending, order)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
threshold = 512
executor = "pool"
workers = 3
order = "desc"
seed = 42
rounds = 2
log_level = "debug"
json_log = true
`)
	cfg := defaultConfig()
	require.NoError(t, loadConfigFile(path, &cfg))
	assert.Equal(t, Config{
		Threshold: 512,
		Executor:  executorPool,
		Workers:   3,
		Order:     "desc",
		Seed:      42,
		Rounds:    2,
		LogLevel:  "debug",
		JSONLog:   true,
	}, cfg)
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := writeConfig(t, "rounds = 4\n")
	cfg := defaultConfig()
	require.NoError(t, loadConfigFile(path, &cfg))

	want := defaultConfig()
	want.Rounds = 4
	assert.Equal(t, want, cfg)
}

func TestLoadConfigFileErrors(t *testing.T) {
	cfg := defaultConfig()
	assert.Error(t, loadConfigFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg))
	assert.Error(t, loadConfigFile(writeConfig(t, "threshold = \"big\"\n"), &cfg))
	assert.Error(t, loadConfigFile(writeConfig(t, "colour = 1\n"), &cfg))
	assert.Error(t, loadConfigFile(writeConfig(t, "seed = -1\n"), &cfg))
	assert.Error(t, loadConfigFile(writeConfig(t, "threshold = \n"), &cfg))
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--threshold", "32", "--log-level", "error", "8"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "sorting 256 integers")
	assert.Contains(t, out.String(), "speed up:")
}

func TestRootCmdFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "threshold = 512\nrounds = 2\nlog_level = \"error\"\n")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", path, "--rounds", "3", "6"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "over 3 rounds")
}

func TestRootCmdErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"many"},
		{"--order", "up", "4"},
		{"--log-level", "loud", "4"},
	} {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		assert.Error(t, cmd.ExecuteContext(context.Background()), "args=%v", args)
	}
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}
