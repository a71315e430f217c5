package osc

import (
	"bytes"
	"encoding/binary"
	"math"
)

// MarshalBinary implements the encoding.BinaryMarshaler interface. The byte
// sequence has the following layout:
//  1. OSC address
//  2. OSC type tag string
//  3. OSC arguments
//
// Because Argument is a closed set of encodable types, the returned error is
// always nil.
func (m *Message) MarshalBinary() ([]byte, error) {
	return m.Packet(), nil
}

// Packet encodes the message into the OSC wire format. It is total: any
// Message built from the four argument types encodes, with no size limit
// beyond available memory.
func (m *Message) Packet() []byte {
	data := new(bytes.Buffer)

	writePaddedString(m.Address, data)
	writePaddedString(m.TypeTags(), data)

	var buf [bit32Size]byte
	for _, arg := range m.Arguments {
		switch a := arg.(type) {
		case Int32:
			binary.BigEndian.PutUint32(buf[:], uint32(a))
			data.Write(buf[:])
		case Float32:
			binary.BigEndian.PutUint32(buf[:], math.Float32bits(float32(a)))
			data.Write(buf[:])
		case String:
			writePaddedString(string(a), data)
		case Blob:
			writeBlob(a, data)
		}
	}

	return data.Bytes()
}
