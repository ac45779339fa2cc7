package capture

import "unicode/utf8"

// DefaultBufferSize is the message capacity available to a single test
const DefaultBufferSize = 4096

// Buffer is a bounded message buffer. Writes that do not fit are cut at the
// last complete UTF-8 sequence and the rest is dropped; Write never fails.
type Buffer struct {
	data      []byte
	limit     int
	truncated bool
}

// NewBuffer creates a buffer holding at most size bytes
func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffer{data: make([]byte, 0, size), limit: size}
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	avail := b.limit - len(b.data)
	if len(p) <= avail {
		b.data = append(b.data, p...)
		return len(p), nil
	}

	cut := avail
	for cut > 0 && !utf8.RuneStart(p[cut]) {
		cut--
	}
	b.data = append(b.data, p[:cut]...)
	b.truncated = true
	return len(p), nil
}

// WriteString appends s, truncating like Write
func (b *Buffer) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// Reset empties the buffer for the next test
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.truncated = false
}

func (b *Buffer) String() string {
	return string(b.data)
}

// Len returns the number of bytes held
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the buffer capacity
func (b *Buffer) Cap() int {
	return b.limit
}

// Truncated reports whether anything was dropped since the last Reset
func (b *Buffer) Truncated() bool {
	return b.truncated
}
