// Package simdcsv provides a high-performance, zero-copy CSV scanner built
// around a branch-sparse, SIMD-driven structural classifier.
//
// Unlike encoding/csv, the scanner never materializes a []string per
// record. Records are returned as a borrowed view over a shared chunked
// buffer: a flat byte slice plus a monotonically increasing field-offset
// table. Callers that need to retain a record across the next ReadLine
// call must copy it out first.
package simdcsv

// Dialect is immutable per-parser configuration. Constructing one via
// NewDialect or DefaultDialect precomputes the broadcast constants the
// SIMD kernel needs, so the hot loop never recomputes them per chunk.
type Dialect struct {
	delimiter        byte
	quote            byte
	skipInitialSpace bool
	strict           bool

	// broadcast constants, one per structural byte, in the layout each
	// kernel tier expects (8 repeated copies for the SWAR word compare).
	delimBroadcast uint64
	quoteBroadcast uint64
	crBroadcast    uint64
	lfBroadcast    uint64
}

// Option configures a Dialect at construction time.
type Option func(*Dialect)

// WithDelimiter overrides the field delimiter (default ',').
func WithDelimiter(b byte) Option {
	return func(d *Dialect) { d.delimiter = b }
}

// WithQuote overrides the quote character (default '"').
func WithQuote(b byte) Option {
	return func(d *Dialect) { d.quote = b }
}

// WithSkipInitialSpace reserves skip-initial-space for decoding
// accessors (see Record.Decoded). The scanner itself never consults it.
func WithSkipInitialSpace(v bool) Option {
	return func(d *Dialect) { d.skipInitialSpace = v }
}

// WithStrict selects the strict error taxonomy from §7: a quoted field
// still open at end-of-stream and a blank record become errors instead
// of being silently tolerated. Strict mode also recognizes only LF and
// CRLF as terminators: a bare CR is kept as ordinary field content and
// raises no error.
func WithStrict(v bool) Option {
	return func(d *Dialect) { d.strict = v }
}

// NewDialect builds a Dialect from the given options, defaulting to
// comma-delimited, double-quoted, non-strict CSV.
func NewDialect(opts ...Option) Dialect {
	d := Dialect{
		delimiter: ',',
		quote:     '"',
	}
	for _, opt := range opts {
		opt(&d)
	}
	d.precomputeBroadcasts()
	return d
}

// DefaultDialect returns {',', '"', false, false}, matching §3's default.
func DefaultDialect() Dialect {
	return NewDialect()
}

func (d *Dialect) precomputeBroadcasts() {
	d.delimBroadcast = broadcast8(d.delimiter)
	d.quoteBroadcast = broadcast8(d.quote)
	d.crBroadcast = broadcast8('\r')
	d.lfBroadcast = broadcast8('\n')
}

// broadcast8 replicates b into all eight byte lanes of a uint64, the
// layout the SWAR kernel (and any CPU-feature-gated variant) compares
// against a 64-byte chunk eight bytes at a time.
func broadcast8(b byte) uint64 {
	w := uint64(b)
	w |= w << 8
	w |= w << 16
	w |= w << 32
	return w
}

// Delimiter returns the configured field delimiter byte.
func (d Dialect) Delimiter() byte { return d.delimiter }

// Quote returns the configured quote byte.
func (d Dialect) Quote() byte { return d.quote }

// SkipInitialSpace reports whether leading field whitespace should be
// trimmed by decoding accessors.
func (d Dialect) SkipInitialSpace() bool { return d.skipInitialSpace }

// Strict reports whether the strict error taxonomy is selected.
func (d Dialect) Strict() bool { return d.strict }
