package simdcsv

import "testing"

func TestDefaultDialect(t *testing.T) {
	d := DefaultDialect()
	if d.Delimiter() != ',' {
		t.Errorf("Delimiter() = %q, want ','", d.Delimiter())
	}
	if d.Quote() != '"' {
		t.Errorf("Quote() = %q, want '\"'", d.Quote())
	}
	if d.SkipInitialSpace() {
		t.Error("SkipInitialSpace() = true, want false")
	}
	if d.Strict() {
		t.Error("Strict() = true, want false")
	}
}

func TestNewDialectOptions(t *testing.T) {
	d := NewDialect(WithDelimiter('\t'), WithQuote('\''), WithSkipInitialSpace(true), WithStrict(true))
	if d.Delimiter() != '\t' {
		t.Errorf("Delimiter() = %q, want tab", d.Delimiter())
	}
	if d.Quote() != '\'' {
		t.Errorf("Quote() = %q, want '\\''", d.Quote())
	}
	if !d.SkipInitialSpace() {
		t.Error("SkipInitialSpace() = false, want true")
	}
	if !d.Strict() {
		t.Error("Strict() = false, want true")
	}
}

func TestBroadcast8(t *testing.T) {
	got := broadcast8(',')
	want := uint64(0x2C2C2C2C2C2C2C2C)
	if got != want {
		t.Errorf("broadcast8(',') = %#x, want %#x", got, want)
	}
}

func TestPrecomputeBroadcasts(t *testing.T) {
	d := NewDialect(WithDelimiter(';'), WithQuote('|'))
	if d.delimBroadcast != broadcast8(';') {
		t.Error("delimBroadcast not recomputed for overridden delimiter")
	}
	if d.quoteBroadcast != broadcast8('|') {
		t.Error("quoteBroadcast not recomputed for overridden quote")
	}
	if d.crBroadcast != broadcast8('\r') {
		t.Error("crBroadcast should always be CR regardless of options")
	}
	if d.lfBroadcast != broadcast8('\n') {
		t.Error("lfBroadcast should always be LF regardless of options")
	}
}
