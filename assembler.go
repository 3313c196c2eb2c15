package simdcsv

import "io"

// assembleRecord drives the chunk-at-a-time record assembly loop
// (component D, §4.D): pull a chunk, classify it, fold its delimiter
// bits into the offsets table, and either find a terminator (producing
// a Record) or carry the quote state into the next chunk of the same
// record.
func (p *Parser) assembleRecord() (Record, error) {
	buf := p.state.buf

	for {
		p.state.offsets = append(p.state.offsets[:0], 0)
		buf.startLine()

		for {
			chunk, n, err := buf.nextChunk()
			if err != nil {
				return Record{}, err
			}
			if n == 0 {
				return p.closeAtEOF(buf)
			}

			result := classifyChunk(chunk, &p.dialect, p.state.insideQuotes)
			base := buf.cursor - buf.lineOrigin
			p.pushDelimiterOffsets(result.delimStruct, base)

			if result.firstTerm >= chunkSize {
				// No terminator in this chunk: the whole classified
				// prefix belongs to the in-progress record. Carry the
				// quote parity forward and go fetch more.
				buf.consume(result.n)
				if result.quoteParity == 1 {
					p.state.insideQuotes = !p.state.insideQuotes
				}
				continue
			}

			recordLen := base + result.firstTerm
			p.state.offsets = append(p.state.offsets, recordLen)
			buf.consume(result.firstTerm + result.termWidth)
			// A terminator is only recognized outside quotes (§4.C), so
			// the quote state is necessarily balanced at this boundary.
			p.state.insideQuotes = false

			if recordLen == 0 && len(p.state.offsets) == 2 {
				if p.dialect.strict {
					return Record{}, &ScanError{Line: p.state.line + 1, Err: ErrBlankRecord}
				}
				// Empty-line elision (§4.D): silently restart the record.
				break
			}

			p.state.line++
			return Record{bytes: buf.recordBytes(recordLen), offsets: p.state.offsets}, nil
		}
	}
}

// pushDelimiterOffsets appends, in ascending order, one offset per set
// bit of mask: the position immediately after the delimiter byte,
// relative to the start of the in-progress record.
func (p *Parser) pushDelimiterOffsets(mask uint64, base int) {
	for mask != 0 {
		pos := trailingZeros64(mask)
		mask &= mask - 1
		p.state.offsets = append(p.state.offsets, base+pos+1)
	}
}

// closeAtEOF handles the source running dry mid-assembly (§4.D): a
// final record with no trailing terminator is closed and returned
// once; in strict mode an in-progress quoted field left open is a
// structural error, while non-strict mode returns the open run as the
// record's last field; otherwise the stream is cleanly exhausted.
func (p *Parser) closeAtEOF(buf *chunkedBuffer) (Record, error) {
	if buf.cursor == buf.lineOrigin {
		return Record{}, io.EOF
	}
	if p.state.insideQuotes && p.dialect.strict {
		return Record{}, &ScanError{Line: p.state.line + 1, Err: ErrUnterminatedQuote}
	}
	end := buf.cursor - buf.lineOrigin
	p.state.offsets = append(p.state.offsets, end)
	p.state.line++
	return Record{bytes: buf.recordBytes(end), offsets: p.state.offsets}, nil
}
