package codec

import "encoding/binary"

// Cursor walks a fixed-layout wire buffer. Every read advances the offset
// by the field's wire width. Callers are expected to have verified the
// buffer length against the message catalog before driving the cursor.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor wraps a message body.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Skip advances past n bytes without decoding them.
func (c *Cursor) Skip(n int) {
	c.off += n
}

// Uint16 reads a 2-byte network-order unsigned integer.
func (c *Cursor) Uint16() uint16 {
	v := binary.BigEndian.Uint16(c.buf[c.off:])
	c.off += 2
	return v
}

// Uint32 reads a 4-byte network-order unsigned integer.
func (c *Cursor) Uint32() uint32 {
	v := binary.BigEndian.Uint32(c.buf[c.off:])
	c.off += 4
	return v
}

// Uint48 reads a 6-byte network-order unsigned integer into the low bits
// of a uint64. ITCH nanosecond timestamps use this layout.
func (c *Cursor) Uint48() uint64 {
	b := c.buf[c.off:]
	v := uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
	c.off += 6
	return v
}

// Uint64 reads an 8-byte network-order unsigned integer.
func (c *Cursor) Uint64() uint64 {
	v := binary.BigEndian.Uint64(c.buf[c.off:])
	c.off += 8
	return v
}

// Char reads a single byte verbatim.
func (c *Cursor) Char() byte {
	v := c.buf[c.off]
	c.off++
	return v
}

// ASCII reads a fixed-width field right-padded with spaces, returning the
// prefix before the first 0x20. The cursor always advances by width.
func (c *Cursor) ASCII(width int) string {
	b := c.buf[c.off : c.off+width]
	n := 0
	for ; n < width; n++ {
		if b[n] == ' ' {
			break
		}
	}
	c.off += width
	return string(b[:n])
}

// The helpers below decode into fresh values for optional row slots.

// U16 decodes an optional 2-byte unsigned field.
func U16(c *Cursor) *uint16 {
	v := c.Uint16()
	return &v
}

// U32 decodes an optional 4-byte unsigned field.
func U32(c *Cursor) *uint32 {
	v := c.Uint32()
	return &v
}

// U48 decodes an optional 6-byte timestamp field.
func U48(c *Cursor) *uint64 {
	v := c.Uint48()
	return &v
}

// U64 decodes an optional 8-byte unsigned field.
func U64(c *Cursor) *uint64 {
	v := c.Uint64()
	return &v
}

// Char decodes an optional character-code field.
func Char(c *Cursor) *uint8 {
	v := c.Char()
	return &v
}

// ASCII decodes an optional space-padded text field of the given width.
func ASCII(c *Cursor, width int) *string {
	v := c.ASCII(width)
	return &v
}
