package itch

import "testing"

func TestAppendCells(t *testing.T) {
	var dst []byte
	dst = AppendUint(dst, 42)
	dst = AppendText(dst, "AAPL")
	dst = AppendChar(dst, 'B')
	if got := string(dst); got != "42,AAPL,B," {
		t.Fatalf("cell rendering mismatch: %q", got)
	}
}

func TestAppendTimestamp(t *testing.T) {
	got := string(AppendTimestamp(nil, 1700000000*1_000_000))
	if got != "2023-11-14 22:13:20," {
		t.Fatalf("timestamp rendering mismatch: %q", got)
	}
}

func TestAppendOptionalAbsent(t *testing.T) {
	var dst []byte
	dst = AppendOptUint16(dst, nil)
	dst = AppendOptUint32(dst, nil)
	dst = AppendOptUint64(dst, nil)
	dst = AppendOptChar(dst, nil)
	dst = AppendOptText(dst, nil)
	if got := string(dst); got != ",,,,," {
		t.Fatalf("absent cells must be empty: %q", got)
	}
}

func TestAppendOptionalPresent(t *testing.T) {
	v16, v32, v64 := uint16(1), uint32(2), uint64(3)
	code, text := uint8('Q'), ""
	var dst []byte
	dst = AppendOptUint16(dst, &v16)
	dst = AppendOptUint32(dst, &v32)
	dst = AppendOptUint64(dst, &v64)
	dst = AppendOptChar(dst, &code)
	dst = AppendOptText(dst, &text)
	if got := string(dst); got != "1,2,3,Q,," {
		t.Fatalf("present cells mismatch: %q", got)
	}
}
