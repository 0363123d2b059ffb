package itch

import (
	"strconv"
	"time"
)

// CSV cell appenders. Each writes one column value followed by its comma,
// matching the read-back rendering format: absent optionals are empty
// cells, character codes are the literal ASCII byte.

// AppendUint appends an unsigned integer cell.
func AppendUint(dst []byte, v uint64) []byte {
	return append(strconv.AppendUint(dst, v, 10), ',')
}

// AppendTimestamp appends a capture timestamp cell as UTC
// "YYYY-MM-DD HH:MM:SS" at second resolution.
func AppendTimestamp(dst []byte, micros int64) []byte {
	dst = time.UnixMicro(micros).UTC().AppendFormat(dst, "2006-01-02 15:04:05")
	return append(dst, ',')
}

// AppendText appends a text cell.
func AppendText(dst []byte, s string) []byte {
	return append(append(dst, s...), ',')
}

// AppendChar appends a character-code cell.
func AppendChar(dst []byte, c byte) []byte {
	return append(dst, c, ',')
}

// AppendOptUint16 appends an optional 16-bit unsigned cell.
func AppendOptUint16(dst []byte, v *uint16) []byte {
	if v == nil {
		return append(dst, ',')
	}
	return AppendUint(dst, uint64(*v))
}

// AppendOptUint32 appends an optional 32-bit unsigned cell.
func AppendOptUint32(dst []byte, v *uint32) []byte {
	if v == nil {
		return append(dst, ',')
	}
	return AppendUint(dst, uint64(*v))
}

// AppendOptUint64 appends an optional 64-bit unsigned cell.
func AppendOptUint64(dst []byte, v *uint64) []byte {
	if v == nil {
		return append(dst, ',')
	}
	return AppendUint(dst, *v)
}

// AppendOptChar appends an optional character-code cell.
func AppendOptChar(dst []byte, v *uint8) []byte {
	if v == nil {
		return append(dst, ',')
	}
	return AppendChar(dst, *v)
}

// AppendOptText appends an optional text cell.
func AppendOptText(dst []byte, v *string) []byte {
	if v == nil {
		return append(dst, ',')
	}
	return AppendText(dst, *v)
}
