//go:build !amd64 && !arm64

package simdcsv

// On architectures this package has no dedicated feature probe for, the
// scanner commits to the plain byte-loop scalar kernel rather than
// guessing at word-size or endianness assumptions the SWAR tier makes.
// It is slower but is the bit-identical reference implementation §4.A
// requires every tier to match.
func init() {
	activeKernel = scalarKernel
}
