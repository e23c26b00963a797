package main

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// cpuFeatures summarizes the cache- and vector-relevant CPU features of the
// host in one line. The kernels never use them — the benchmark is scalar by
// design — but knowing the hardware helps interpret the timing grid.
func cpuFeatures() string {
	var feats []string

	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasSSE42 {
			feats = append(feats, "sse4.2")
		}
		if cpu.X86.HasAVX {
			feats = append(feats, "avx")
		}
		if cpu.X86.HasAVX2 {
			feats = append(feats, "avx2")
		}
		if cpu.X86.HasAVX512F {
			feats = append(feats, "avx512f")
		}
		if cpu.X86.HasFMA {
			feats = append(feats, "fma")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			feats = append(feats, "neon")
		}
		if cpu.ARM64.HasSVE {
			feats = append(feats, "sve")
		}
	}

	if len(feats) == 0 {
		return runtime.GOARCH + " (no vector features detected)"
	}

	return runtime.GOARCH + " " + strings.Join(feats, " ")
}
