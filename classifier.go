package simdcsv

// classifyResult is the structural classification of one chunk, per
// §4.C: the delimiter positions outside quotes, where (if anywhere) the
// record terminates, how wide that terminator is, the parity of raw
// quote bytes seen, and the effective number of bytes this
// classification actually covers (see the CRLF boundary note below).
type classifyResult struct {
	delimStruct uint64
	firstTerm   int // chunkSize (64) sentinel means "not found in this chunk"
	termWidth   int // 1 (LF or bare CR) or 2 (CRLF)
	quoteParity int // 0 or 1; XOR this into insideQuotes after consuming the chunk
	n           int // effective valid byte count classified this call
}

// classifyChunk runs the structural classifier (component C) over up to
// 64 bytes, given the dialect and the quote state carried in from the
// previous chunk.
func classifyChunk(data []byte, d *Dialect, insideQuotes bool) classifyResult {
	m, n := generateMasks(data, d)

	// CRLF-at-chunk-boundary (§4.C): a CR sitting at the very last
	// valid position of a full chunk might be the first half of a CRLF
	// whose LF lives in the next chunk. Rather than guess, defer: drop
	// that byte from this round's classification entirely so it is
	// re-examined with one byte of look-ahead once more data arrives.
	if n == chunkSize && bitSet(m.cr, n-1) && !bitSet(m.lf, n-1) {
		n--
		clip := validPrefixMask(n)
		m.quote &= clip
		m.delim &= clip
		m.cr &= clip
		m.lf &= clip
	}

	insideBroadcast := uint64(0)
	if insideQuotes {
		insideBroadcast = ^uint64(0)
	}
	quoteRegion := prefixXor(m.quote) ^ insideBroadcast

	delimStruct := m.delim &^ quoteRegion
	nStruct1 := (m.lf | m.cr) &^ quoteRegion
	// nStruct2 marks a CRLF pair at the CR's position (not the LF's), so
	// firstTerm always names the terminator's first byte regardless of
	// its width: bit i is set iff byte i is CR and byte i+1 is LF.
	nStruct2 := (m.cr & (m.lf >> 1)) &^ quoteRegion

	firstTerm1 := trailingZeros64(nStruct1)
	firstTerm2 := trailingZeros64(nStruct2)
	firstTerm, termWidth := pickTerminator(firstTerm1, firstTerm2)

	// Strict mode recognizes only LF and CRLF as terminators (§4.C open
	// question, resolved in SPEC_FULL §4): strip bare CRs from
	// contention and re-pick until a genuine terminator or none remain.
	// A CR that is the first half of a genuine CRLF pair already won as
	// termWidth == 2 above (pickTerminator's tie-break favors the wider
	// match at the same position), so this loop only ever strips CRs
	// that are not immediately followed by LF.
	for d.strict && firstTerm < chunkSize && termWidth == 1 && bitSet(m.cr, firstTerm) && !bitSet(m.lf, firstTerm) {
		nStruct1 &^= uint64(1) << uint(firstTerm)
		firstTerm1 = trailingZeros64(nStruct1)
		firstTerm, termWidth = pickTerminator(firstTerm1, firstTerm2)
	}

	clipAt := firstTerm
	if n < clipAt {
		clipAt = n
	}
	delimStruct &= validPrefixMask(clipAt)

	return classifyResult{
		delimStruct: delimStruct,
		firstTerm:   firstTerm,
		termWidth:   termWidth,
		quoteParity: popcount64(m.quote) % 2,
		n:           n,
	}
}

func pickTerminator(firstTerm1, firstTerm2 int) (firstTerm, termWidth int) {
	if firstTerm1 < firstTerm2 {
		return firstTerm1, 1
	}
	return firstTerm2, 2
}

func bitSet(mask uint64, pos int) bool {
	return mask&(uint64(1)<<uint(pos)) != 0
}
