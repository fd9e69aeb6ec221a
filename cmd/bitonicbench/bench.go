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
	"cmp"
	"context"
	"fmt"
	"io"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/go-bitonic/bitonic"
	"github.com/ajroetker/go-bitonic/bitonic/contrib/datagen"
	"github.com/ajroetker/go-bitonic/bitonic/contrib/verify"
	"github.com/ajroetker/go-bitonic/bitonic/contrib/workerpool"
	"github.com/ajroetker/go-bitonic/internal/cpuinfo"
)

const maxBits = 30

// Report is the outcome of one benchmark run.
type Report struct {
	Len        int
	Sequential time.Duration
	Parallel   time.Duration
	Speedup    float64
}

type bench struct {
	cfg   Config
	order bitonic.SortOrder
	out   io.Writer
	log   *zap.Logger

	// pool is set while a run uses the pool executor; results are then
	// validated on the same workers.
	pool *workerpool.Pool
}

// run sorts 2^bits pseudo-random integers once sequentially and once with the
// configured parallel settings, printing timings and the speed-up to b.out.
func (b *bench) run(ctx context.Context, bits int) (*Report, error) {
	if bits < 1 || bits > maxBits {
		return nil, errors.Errorf("bits must be in [1, %d], got %d", maxBits, bits)
	}
	n := 1 << bits

	size := uint64(n) * uint64(unsafe.Sizeof(uint32(0)))
	fmt.Fprintf(b.out, "sorting %d integers (%s)\n", n, humanize.IBytes(size))

	info := cpuinfo.Detect()
	fmt.Fprintf(b.out, "cpu info: %s\n", info)
	fmt.Fprintf(b.out, "cpu features: %s\n", info.FeatureList())
	b.log.Debug("cpu",
		zap.String("arch", info.Arch),
		zap.String("brand", info.Brand),
		zap.Int("gomaxprocs", info.GOMAXPROCS),
	)

	var exec bitonic.Executor = bitonic.GoroutineExecutor{}
	if b.cfg.Executor == executorPool {
		b.pool = workerpool.New(b.cfg.Workers)
		defer func() {
			b.pool.Close()
			b.pool = nil
		}()
		exec = b.pool
		b.log.Debug("worker pool started", zap.Int("workers", b.pool.NumWorkers()))
	}

	seq, err := b.timedSort(ctx, "seq_sort", bitonic.New(bitonic.Sequential()), n)
	if err != nil {
		return nil, err
	}
	par, err := b.timedSort(ctx, "par_sort",
		bitonic.New(bitonic.WithThreshold(b.cfg.Threshold), bitonic.WithExecutor(exec)), n)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Len:        n,
		Sequential: seq,
		Parallel:   par,
		Speedup:    float64(seq) / float64(max(par, 1)),
	}
	fmt.Fprintf(b.out, "speed up: %.2fx\n", r.Speedup)
	b.log.Info("benchmark finished",
		zap.Int("len", n),
		zap.Int("threshold", b.cfg.Threshold),
		zap.String("executor", b.cfg.Executor),
		zap.Duration("seq", seq),
		zap.Duration("par", par),
		zap.Float64("speedup", r.Speedup),
	)
	return r, nil
}

// timedSort sorts fresh input cfg.Rounds times with s and returns the mean
// elapsed time. Every result is validated before the next round starts.
func (b *bench) timedSort(ctx context.Context, name string, s *bitonic.Sorter, n int) (time.Duration, error) {
	compare := cmp.Compare[uint32]
	if b.order == bitonic.Descending {
		compare = func(x, y uint32) int { return cmp.Compare(y, x) }
	}
	check := func(x []uint32) bool { return verify.IsSortedFunc(x, compare) }
	if b.pool != nil {
		check = func(x []uint32) bool { return verify.IsSortedParallel(b.pool, x, compare) }
	}

	rounds := make([]time.Duration, 0, b.cfg.Rounds)
	for round := range b.cfg.Rounds {
		if err := ctx.Err(); err != nil {
			return 0, errors.Wrapf(err, "%s interrupted after %d rounds", name, round)
		}

		x := datagen.Uint32sSeeded(n, b.cfg.Seed)
		start := time.Now()
		if err := bitonic.SortWith(s, x, b.order); err != nil {
			return 0, errors.Wrap(err, name)
		}
		elapsed := time.Since(start)

		if !check(x) {
			return 0, errors.Errorf("%s: result is not sorted %s", name, b.order)
		}
		b.log.Debug("round", zap.String("sorter", name), zap.Int("round", round), zap.Duration("elapsed", elapsed))
		rounds = append(rounds, elapsed)
	}

	mean := lo.Sum(rounds) / time.Duration(len(rounds))
	fmt.Fprintf(b.out, "%s: sorted %d integers in %.6f seconds.\n", name, n, mean.Seconds())
	if len(rounds) > 1 {
		fmt.Fprintf(b.out, "%s: min %s, max %s over %d rounds\n", name, lo.Min(rounds), lo.Max(rounds), len(rounds))
	}
	return mean, nil
}
