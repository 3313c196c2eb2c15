package simdcsv

import (
	"bytes"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// Record is a borrowed view over the chunked buffer: a flat byte slice
// plus the field-offset table the assembler built while scanning it
// (§3, §4.E). It aliases parser-owned memory and becomes invalid the
// instant the parser is asked for the next record — copy fields out
// first if you need to retain them.
type Record struct {
	bytes   []byte
	offsets []int
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	if len(r.offsets) == 0 {
		return 0
	}
	return len(r.offsets) - 1
}

// Field returns the raw bytes of field i, including enclosing quotes and
// doubled-quote escapes if the field was quoted. Out-of-range access is
// a programmer error: it panics, per §4.E.
func (r Record) Field(i int) []byte {
	k := r.Len()
	if i < 0 || i >= k {
		panic("simdcsv: field index out of range")
	}
	start := r.offsets[i]
	end := r.offsets[i+1]
	if i+1 < k {
		end--
	}
	return r.bytes[start:end]
}

// All ranges over the record's fields in order, matching the
// index-and-value shape slices.All returns since Go 1.23.
func (r Record) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := 0; i < r.Len(); i++ {
			if !yield(i, r.Field(i)) {
				return
			}
		}
	}
}

// Equal reports whether the record's fields are byte-for-byte equal, in
// order, to want.
func (r Record) Equal(want [][]byte) bool {
	if r.Len() != len(want) {
		return false
	}
	for i, w := range want {
		if !bytes.Equal(r.Field(i), w) {
			return false
		}
	}
	return true
}

// String renders the record with each field between quote characters,
// comma-separated, for human inspection only — this is not a CSV
// re-serialization and must not be used as one (§4.E).
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < r.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", r.Field(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Decoded returns field i with quoted-field normalization applied: if
// the field is wrapped in the dialect's quote byte, the outer quotes
// are stripped and doubled quotes ("") collapse to one. Unquoted fields
// are returned unchanged aside from SkipInitialSpace trimming. This is
// the "thin adapter" §9 describes layered on top of the zero-copy
// canonical form. A quoted field is copied into a new slice; an
// unquoted field is returned as a sub-slice of the record's bytes and
// aliases the parser's buffer just as Field does.
//
// Decoded is the only accessor that validates UTF-8 (§7): the scanner
// itself passes bytes through uninspected, but a decoding accessor that
// claims to hand back text has to say so when the bytes aren't text.
func (r Record) Decoded(i int, d Dialect) ([]byte, error) {
	raw := r.Field(i)
	if d.skipInitialSpace {
		raw = trimLeadingSpace(raw)
	}
	out := raw
	if len(raw) >= 2 && raw[0] == d.quote && raw[len(raw)-1] == d.quote {
		out = unescapeQuotes(raw[1:len(raw)-1], d.quote)
	}
	if !utf8.Valid(out) {
		return nil, ErrInvalidUTF8
	}
	return out, nil
}

func trimLeadingSpace(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	return b[i:]
}

// unescapeQuotes collapses every doubled occurrence of quoteByte into a
// single instance. It always copies, since the result may be shorter
// than the input and the input is borrowed buffer memory.
func unescapeQuotes(b []byte, quoteByte byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == quoteByte && i+1 < len(b) && b[i+1] == quoteByte {
			out = append(out, quoteByte)
			i++
			continue
		}
		out = append(out, b[i])
	}
	return out
}
