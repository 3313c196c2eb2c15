//go:build arm64

package simdcsv

import (
	"log/slog"

	"github.com/klauspost/cpuid/v2"
)

// arm64 has no equivalent to x/sys/cpu.X86's feature struct with the
// granularity this package wants (NEON/ASIMD presence, crypto
// extensions used by a future 64-bit folded compare per §4.A), so this
// path uses klauspost/cpuid/v2 — the other CPU-feature library the
// retrieval pack carries (raceordie690-simdcsv/go.mod) — instead of
// x/sys/cpu.
func init() {
	if cpuid.CPU.Supports(cpuid.ASIMD) {
		activeKernel = swarKernelUnrolled
		slog.Debug("simdcsv: arm64 kernel tier selected", "tier", "asimd-unrolled")
		return
	}
	activeKernel = swarKernel
	slog.Debug("simdcsv: arm64 kernel tier selected", "tier", "swar")
}
