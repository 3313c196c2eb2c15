package simdcsv

import (
	"io"
	"iter"
)

// Lines returns a range-over-func iterator yielding one Record per
// underlying ReadLine call, stopping cleanly at io.EOF. Any other error
// is recorded and retrievable afterward via Err, matching the
// bufio.Scanner idiom the original source's Iterator impl mirrors (§11).
//
// Each yielded Record aliases the parser's internal buffer exactly as
// ReadLine's does: it is only valid until the loop body asks for the
// next one.
func (p *Parser) Lines() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for {
			rec, err := p.ReadLine()
			if err != nil {
				if err != io.EOF {
					p.state.err = err
				}
				return
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// Err returns the first non-io.EOF error encountered by a prior Lines
// iteration, or nil if none occurred.
func (p *Parser) Err() error {
	return p.state.err
}
