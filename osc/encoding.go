package osc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const bit32Size = 4

var (
	// ErrMalformedPacket reports a type tag field that does not start with ','.
	ErrMalformedPacket = errors.New("osc: malformed packet")

	// ErrUnexpectedEOF reports a packet that is truncated relative to what its
	// fields declare.
	ErrUnexpectedEOF = errors.New("osc: unexpected end of data")
)

////
// De/Encoding functions
////

// parsePaddedString reads an OSC string field from data: bytes up to the first
// NUL, then zero padding to the next 4-byte boundary. Returns the string and
// the total field width consumed.
func parsePaddedString(data []byte) (string, int, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return "", 0, fmt.Errorf("unterminated string: %w", ErrUnexpectedEOF)
	}

	n := pos + 1
	n += padBytesNeeded(n)
	if n > len(data) {
		return "", 0, fmt.Errorf("string padding truncated: %w", ErrUnexpectedEOF)
	}

	return string(data[:pos]), n, nil
}

// writePaddedString writes str as an OSC string field: the bytes, a NUL
// terminator and zero padding to the next 4-byte boundary. An empty string
// still occupies 4 bytes.
func writePaddedString(str string, b *bytes.Buffer) int {
	b.WriteString(str)
	b.WriteByte(0)

	n := len(str) + 1
	pad := padBytesNeeded(n)
	for i := 0; i < pad; i++ {
		b.WriteByte(0)
	}

	return n + pad
}

// parseBlob reads an OSC blob field from data: a 4-byte big-endian length,
// that many raw bytes and zero padding computed from the length alone.
// The returned slice is a copy and does not alias data.
func parseBlob(data []byte) ([]byte, int, error) {
	if len(data) < bit32Size {
		return nil, 0, fmt.Errorf("blob length field truncated: %w", ErrUnexpectedEOF)
	}

	size := int(binary.BigEndian.Uint32(data[:bit32Size]))
	n := bit32Size + size + padBytesNeeded(size)
	if size < 0 || n > len(data) {
		return nil, 0, fmt.Errorf("blob length %d exceeds remaining %d bytes: %w",
			size, len(data)-bit32Size, ErrUnexpectedEOF)
	}

	blob := make([]byte, size)
	copy(blob, data[bit32Size:])
	return blob, n, nil
}

// writeBlob writes data as an OSC blob field into b.
func writeBlob(data []byte, b *bytes.Buffer) int {
	var size [bit32Size]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(data)))
	b.Write(size[:])
	b.Write(data)

	pad := padBytesNeeded(len(data))
	for i := 0; i < pad; i++ {
		b.WriteByte(0)
	}

	return bit32Size + len(data) + pad
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}
