package osc

import (
	"encoding/binary"
	"fmt"
	"math"
)

// UnknownTypeTagsError reports type tag letters outside "ifsb" that the parser
// skipped. It is a non-fatal condition: Parse returns it together with a valid
// Message that carries fewer arguments than the type tag string declares.
type UnknownTypeTagsError struct {
	Tags []byte
}

func (e *UnknownTypeTagsError) Error() string {
	return fmt.Sprintf("osc: unknown type tags %q skipped", e.Tags)
}

// Parse decodes an OSC message from the given packet.
//
// It fails with ErrMalformedPacket if the type tag string does not start with
// a comma, and with ErrUnexpectedEOF if the packet is truncated relative to
// what its fields declare.
//
// Type tag letters outside "ifsb" are skipped without consuming payload bytes;
// the message is still returned, together with an *UnknownTypeTagsError naming
// the skipped letters. This mirrors the wire behavior this package was built
// against and is only safe for zero-width tags: a skipped width-bearing tag
// such as 'h', 'd' or 't' desynchronizes every argument after it.
func Parse(data []byte) (*Message, error) {
	addr, n, err := parsePaddedString(data)
	if err != nil {
		return nil, fmt.Errorf("parse address: %w", err)
	}
	data = data[n:]

	tags, n, err := parsePaddedString(data)
	if err != nil {
		return nil, fmt.Errorf("parse type tags: %w", err)
	}
	data = data[n:]

	if len(tags) == 0 || tags[0] != ',' {
		return nil, fmt.Errorf("type tag string %q does not start with ',': %w", tags, ErrMalformedPacket)
	}

	msg := &Message{
		Address:   addr,
		Arguments: make([]Argument, 0, len(tags)-1),
	}

	var unknown []byte
	for _, c := range []byte(tags[1:]) {
		switch TypeTag(c) {
		case TypeInt32:
			if len(data) < bit32Size {
				return nil, fmt.Errorf("int32 argument truncated: %w", ErrUnexpectedEOF)
			}
			msg.Append(Int32(binary.BigEndian.Uint32(data)))
			data = data[bit32Size:]

		case TypeFloat32:
			if len(data) < bit32Size {
				return nil, fmt.Errorf("float32 argument truncated: %w", ErrUnexpectedEOF)
			}
			msg.Append(Float32(math.Float32frombits(binary.BigEndian.Uint32(data))))
			data = data[bit32Size:]

		case TypeString:
			s, n, err := parsePaddedString(data)
			if err != nil {
				return nil, fmt.Errorf("string argument: %w", err)
			}
			msg.Append(String(s))
			data = data[n:]

		case TypeBlob:
			b, n, err := parseBlob(data)
			if err != nil {
				return nil, fmt.Errorf("blob argument: %w", err)
			}
			msg.Append(Blob(b))
			data = data[n:]

		default:
			unknown = append(unknown, c)
		}
	}

	if unknown != nil {
		return msg, &UnknownTypeTagsError{Tags: unknown}
	}
	return msg, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. Like
// Parse, it populates the message even when it returns a non-nil
// *UnknownTypeTagsError.
func (m *Message) UnmarshalBinary(data []byte) error {
	msg, err := Parse(data)
	if msg == nil {
		return err
	}
	*m = *msg
	return err
}
