// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package trace

import "testing"

func TestParseLine_Load(t *testing.T) {
	op, addr, err := ParseLine("l 0x1000")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if op != 'l' || addr != 0x1000 {
		t.Fatalf("got (%c, %#x), want ('l', 0x1000)", op, addr)
	}
}

func TestParseLine_Store(t *testing.T) {
	op, addr, err := ParseLine("s 0xABCDE")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if op != 's' || addr != 0xABCDE {
		t.Fatalf("got (%c, %#x), want ('s', 0xABCDE)", op, addr)
	}
}

func TestParseLine_TrimsTrailingNewline(t *testing.T) {
	_, addr, err := ParseLine("l 0x20\r\n")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if addr != 0x20 {
		t.Fatalf("addr = %#x, want 0x20", addr)
	}
}

func TestParseLine_RejectsUnknownOp(t *testing.T) {
	_, _, err := ParseLine("x 0x10")
	assertParseError(t, err)
}

func TestParseLine_RejectsMissingHexPrefix(t *testing.T) {
	_, _, err := ParseLine("l 1000")
	assertParseError(t, err)
}

func TestParseLine_RejectsExtraFields(t *testing.T) {
	_, _, err := ParseLine("l 0x10 extra")
	assertParseError(t, err)
}

func TestParseLine_RejectsNonHexDigits(t *testing.T) {
	_, _, err := ParseLine("l 0xZZZZ")
	assertParseError(t, err)
}

func assertParseError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	te, ok := err.(TraceError)
	if !ok {
		t.Fatalf("error %v does not implement TraceError", err)
	}
	if te.Kind() != KindParse {
		t.Fatalf("Kind() = %v, want KindParse", te.Kind())
	}
}
