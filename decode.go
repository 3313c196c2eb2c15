package simdcsv

// DecodeAll eagerly copies every field of rec through Record.Decoded,
// returning a conventional [][]byte the caller owns outright. This is
// the escape hatch for callers migrating from an eager reader (§11,
// grounded on the teacher's record_builder.go materializing a full
// []string per record): it gives up the zero-copy property entirely in
// exchange for a value with no lifetime tied to the parser.
func DecodeAll(rec Record, d Dialect) ([][]byte, error) {
	out := make([][]byte, rec.Len())
	for i := range out {
		decoded, err := rec.Decoded(i, d)
		if err != nil {
			return nil, err
		}
		cp := make([]byte, len(decoded))
		copy(cp, decoded)
		out[i] = cp
	}
	return out, nil
}
