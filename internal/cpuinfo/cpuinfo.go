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

// Package cpuinfo describes the host CPU for benchmark reports.
package cpuinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Info is a snapshot of the host CPU.
type Info struct {
	Arch          string
	Brand         string
	PhysicalCores int
	LogicalCores  int
	GOMAXPROCS    int

	// Features lists the instruction set extensions reported by
	// golang.org/x/sys/cpu that are relevant on this architecture.
	Features []string
}

// Detect returns the current CPU description.
func Detect() Info {
	info := Info{
		Arch:          runtime.GOARCH,
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
		Features:      features(),
	}

	// cpuid cannot read core topology on every platform (e.g. some VMs and
	// non-x86 hosts); fall back to what the runtime sees.
	if info.LogicalCores <= 0 {
		info.LogicalCores = runtime.NumCPU()
	}
	if info.PhysicalCores <= 0 {
		info.PhysicalCores = info.LogicalCores
	}
	if info.Brand == "" {
		info.Brand = "unknown"
	}
	return info
}

// String formats the core counts in one line.
func (i Info) String() string {
	return fmt.Sprintf("%d physical cores, %d logical cores", i.PhysicalCores, i.LogicalCores)
}

// FeatureList joins Features with commas, or returns "none".
func (i Info) FeatureList() string {
	if len(i.Features) == 0 {
		return "none"
	}
	return strings.Join(i.Features, ",")
}
