package simdcsv

import (
	"errors"
	"strings"
	"testing"
)

func TestChunkedBufferSmallRead(t *testing.T) {
	b, err := newChunkedBuffer(strings.NewReader("a,b,c\n"), 64, nil)
	if err != nil {
		t.Fatalf("newChunkedBuffer: %v", err)
	}
	chunk, n, err := b.nextChunk()
	if err != nil {
		t.Fatalf("nextChunk: %v", err)
	}
	if n != 6 {
		t.Fatalf("n = %d, want 6", n)
	}
	if string(chunk[:n]) != "a,b,c\n" {
		t.Fatalf("chunk = %q, want %q", chunk[:n], "a,b,c\n")
	}
}

func TestChunkedBufferConsumeAndLineSlice(t *testing.T) {
	b, err := newChunkedBuffer(strings.NewReader("abcdefgh"), 8, nil)
	if err != nil {
		t.Fatalf("newChunkedBuffer: %v", err)
	}
	chunk, n, err := b.nextChunk()
	if err != nil || n != 8 {
		t.Fatalf("nextChunk: n=%d err=%v", n, err)
	}
	_ = chunk
	b.consume(4)
	b.startLine()
	if got := string(b.lineSlice()); got != "" {
		t.Fatalf("lineSlice right after startLine = %q, want empty", got)
	}
	b.consume(2)
	if got := string(b.lineSlice()); got != "ef" {
		t.Fatalf("lineSlice = %q, want %q", got, "ef")
	}
}

func TestChunkedBufferOverflow(t *testing.T) {
	longLine := strings.Repeat("x", 200) + "\n"
	b, err := newChunkedBuffer(strings.NewReader(longLine), 64, nil)
	if err != nil {
		t.Fatalf("newChunkedBuffer: %v", err)
	}
	for {
		_, n, err := b.nextChunk()
		if err != nil {
			if !errors.Is(err, ErrFieldOrRecordTooLarge) {
				t.Fatalf("err = %v, want ErrFieldOrRecordTooLarge", err)
			}
			return
		}
		if n == 0 {
			t.Fatal("reached EOF without ever overflowing")
		}
		b.consume(n)
	}
}

func TestChunkedBufferConsumePastValidPanics(t *testing.T) {
	b, err := newChunkedBuffer(strings.NewReader("ab"), 64, nil)
	if err != nil {
		t.Fatalf("newChunkedBuffer: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("consume past valid data did not panic")
		}
	}()
	b.consume(100)
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestChunkedBufferSourceError(t *testing.T) {
	wantCause := errors.New("boom")
	_, err := newChunkedBuffer(errReader{wantCause}, 64, nil)
	var se *SourceError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *SourceError", err)
	}
	if !errors.Is(se.Cause, wantCause) && se.Cause != wantCause {
		t.Fatalf("se.Cause = %v, want %v", se.Cause, wantCause)
	}
}

func TestChunkedBufferEOFReturnsZero(t *testing.T) {
	b, err := newChunkedBuffer(strings.NewReader(""), 64, nil)
	if err != nil {
		t.Fatalf("newChunkedBuffer: %v", err)
	}
	_, n, err := b.nextChunk()
	if err != nil {
		t.Fatalf("nextChunk: %v", err)
	}
	if n != 0 {
		t.Fatalf("n = %d, want 0 at EOF", n)
	}
}
