//go:build amd64

package simdcsv

import (
	"log/slog"

	"golang.org/x/sys/cpu"
)

// On amd64 the classifier's word-at-a-time SWAR kernel (see
// simd_kernel.go) already gives the exact masks §4.A asks for; the CPU
// probe below decides only which of the two bit-identical
// implementations to run. x/sys/cpu is the same library the teacher
// gates its AVX-512 path on (simd_scanner.go); here it selects the
// manually unrolled eight-word tier when the CPU reports wide vector
// units, on the premise that a flatter chunk of independent word-level
// work gives the scheduler of a CPU built for wide SIMD more to
// reorder, even though both tiers run through scalar Go arithmetic.
func init() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL:
		activeKernel = swarKernelUnrolled
		slog.Debug("simdcsv: amd64 kernel tier selected", "tier", "avx512-unrolled")
	case cpu.X86.HasAVX2:
		activeKernel = swarKernelUnrolled
		slog.Debug("simdcsv: amd64 kernel tier selected", "tier", "avx2-unrolled")
	default:
		activeKernel = swarKernel
		slog.Debug("simdcsv: amd64 kernel tier selected", "tier", "swar")
	}
}
