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

// Command bitonicbench times the bitonic sort sequentially and in parallel.
//
// Usage:
//
//	bitonicbench 24                          # 2^24 integers, default settings
//	bitonicbench --threshold 1024 26
//	bitonicbench --executor pool --workers 8 --rounds 5 24
//	bitonicbench --config bench.toml 24
//
// The config file is TOML with the keys threshold, executor, workers, order,
// seed, rounds, log_level and json_log. Flags given on the command line win
// over the file.
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:          "bitonicbench <number of elements in bits>",
		Short:        "Compare sequential and parallel bitonic sort",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "parsing bits %q", args[0])
			}

			if configPath != "" {
				if err := applyConfigFile(configPath, cmd.Flags(), &cfg); err != nil {
					return err
				}
			}
			order, err := cfg.validate()
			if err != nil {
				return err
			}

			log, err := newLogger(cfg.LogLevel, cfg.JSONLog)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			b := &bench{cfg: cfg, order: order, out: cmd.OutOrStdout(), log: log}
			if _, err := b.run(cmd.Context(), bits); err != nil {
				log.Error("benchmark failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "TOML file with benchmark settings")
	f.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "half size at or above which the parallel sort forks")
	f.StringVar(&cfg.Executor, "executor", cfg.Executor, "executor for forked halves: goroutine or pool")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker pool size, 0 uses GOMAXPROCS")
	f.StringVar(&cfg.Order, "order", cfg.Order, "sort order: asc or desc")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the input generator")
	f.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "number of timed rounds per sorter")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	f.BoolVar(&cfg.JSONLog, "json-log", cfg.JSONLog, "log as JSON")

	return cmd
}

// applyConfigFile loads the file, then re-applies every flag the user set so
// that the command line keeps precedence. The flags are bound to cfg, so
// their values are captured before the file overwrites them.
func applyConfigFile(path string, flags *pflag.FlagSet, cfg *Config) error {
	set := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		if f.Name != "config" {
			set[f.Name] = f.Value.String()
		}
	})

	if err := loadConfigFile(path, cfg); err != nil {
		return err
	}
	for name, value := range set {
		if err := flags.Set(name, value); err != nil {
			return errors.Wrapf(err, "re-applying --%s", name)
		}
	}
	return nil
}
