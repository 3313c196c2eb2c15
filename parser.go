package simdcsv

import (
	"io"
	"log/slog"
)

// Parser is the public surface (component G, §4.F/§4.G): construct one
// around a dialect and a byte source, then call ReadLine repeatedly
// until it returns io.EOF.
//
// A Parser is not safe for concurrent use (§5): it owns both the
// chunked buffer and the reused offsets table, mutating both on every
// call. Separate parsers over separate sources are fully independent.
type Parser struct {
	dialect     Dialect
	source      io.Reader
	bufferBytes int
	logger      *slog.Logger

	state parserState
}

// parserState holds the mutable state threaded across ReadLine calls,
// kept separate from the Parser's configuration fields the same way
// the teacher's Reader separates readerState from its exported policy
// fields.
type parserState struct {
	buf          *chunkedBuffer
	insideQuotes bool
	offsets      []int
	initialized  bool
	terminal     bool
	line         int
	err          error
}

// ParserOption configures a Parser at construction time.
type ParserOption func(*Parser)

// WithBufferBytes overrides the chunked buffer's backing capacity
// (default DefaultBufferBytes). A record longer than this capacity
// surfaces ErrFieldOrRecordTooLarge.
func WithBufferBytes(n int) ParserOption {
	return func(p *Parser) { p.bufferBytes = n }
}

// WithLogger overrides the structured logger the chunked buffer uses
// for its rare diagnostic message (buffer compaction), at Debug level
// and never on the per-chunk hot path. Kernel tier selection is logged
// at package init through slog's default logger and is not affected.
func WithLogger(l *slog.Logger) ParserOption {
	return func(p *Parser) { p.logger = l }
}

// NewParser returns a Parser reading dialect-conformant records from
// source. Construction never touches source; the first read happens
// lazily on the first ReadLine call.
func NewParser(dialect Dialect, source io.Reader, opts ...ParserOption) *Parser {
	p := &Parser{
		dialect:     dialect,
		source:      source,
		bufferBytes: DefaultBufferBytes,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReadLine returns the next record, or io.EOF once the stream is
// exhausted. Once a SourceError or ErrFieldOrRecordTooLarge is
// returned, the parser enters a terminal state: every subsequent call
// returns io.EOF without touching the source again (§5).
func (p *Parser) ReadLine() (Record, error) {
	if p.state.terminal {
		return Record{}, io.EOF
	}
	if !p.state.initialized {
		if err := p.initialize(); err != nil {
			p.state.terminal = true
			return Record{}, err
		}
	}
	rec, err := p.assembleRecord()
	if err != nil && err != io.EOF {
		p.state.terminal = true
	}
	return rec, err
}

func (p *Parser) initialize() error {
	p.state.initialized = true
	buf, err := newChunkedBuffer(p.source, p.bufferBytes, p.logger)
	if err != nil {
		return err
	}
	p.state.buf = buf
	p.state.offsets = make([]int, 0, 16)
	return nil
}
