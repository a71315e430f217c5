package osc

import (
	"bytes"
	"fmt"
	"strings"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address and zero or more typed arguments. Argument order is significant and
// survives a marshal/parse round trip.
type Message struct {
	Address   string
	Arguments []Argument
}

// NewMessage returns a new Message. The addr parameter is the OSC address.
func NewMessage(addr string, args ...Argument) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list.
func (m *Message) Append(args ...Argument) {
	m.Arguments = append(m.Arguments, args...)
}

// TypeTags returns the type tag string: a comma followed by one letter per
// argument in order.
func (m *Message) TypeTags() string {
	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')
	for _, a := range m.Arguments {
		tags = append(tags, byte(a.Tag()))
	}
	return string(tags)
}

// Int returns the argument at index i as an int32. A stored Float32 is
// truncated toward zero. The second return is false if i is out of range or
// the argument is not numeric.
func (m *Message) Int(i int) (int32, bool) {
	if i < 0 || i >= len(m.Arguments) {
		return 0, false
	}
	switch a := m.Arguments[i].(type) {
	case Int32:
		return int32(a), true
	case Float32:
		return int32(a), true
	}
	return 0, false
}

// Float returns the argument at index i as a float32. A stored Int32 is
// widened. The second return is false if i is out of range or the argument is
// not numeric.
func (m *Message) Float(i int) (float32, bool) {
	if i < 0 || i >= len(m.Arguments) {
		return 0, false
	}
	switch a := m.Arguments[i].(type) {
	case Int32:
		return float32(a), true
	case Float32:
		return float32(a), true
	}
	return 0, false
}

// Str returns the argument at index i as a string. The second return is false
// if i is out of range or the argument is not a String.
func (m *Message) Str(i int) (string, bool) {
	if i < 0 || i >= len(m.Arguments) {
		return "", false
	}
	if a, ok := m.Arguments[i].(String); ok {
		return string(a), true
	}
	return "", false
}

// Bytes returns the argument at index i as a byte slice. The second return is
// false if i is out of range or the argument is not a Blob.
func (m *Message) Bytes(i int) ([]byte, bool) {
	if i < 0 || i >= len(m.Arguments) {
		return nil, false
	}
	if a, ok := m.Arguments[i].(Blob); ok {
		return []byte(a), true
	}
	return nil, false
}

// Equal reports whether m and o have the same address and element-wise equal
// arguments. Blobs compare byte-exact, floats by bit pattern.
func (m *Message) Equal(o *Message) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Address != o.Address || len(m.Arguments) != len(o.Arguments) {
		return false
	}
	for i, a := range m.Arguments {
		b := o.Arguments[i]
		if ab, ok := a.(Blob); ok {
			bb, ok := b.(Blob)
			if !ok || !bytes.Equal(ab, bb) {
				return false
			}
			continue
		}
		if a != b {
			return false
		}
	}
	return true
}

// String implements the fmt.Stringer interface. The rendering is for logging
// and debugging only; it is not the wire format.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.Address)
	if len(m.Arguments) == 0 {
		return sb.String()
	}

	sb.WriteByte(' ')
	sb.WriteString(m.TypeTags())

	for _, arg := range m.Arguments {
		switch a := arg.(type) {
		case Int32:
			fmt.Fprintf(&sb, " %d", int32(a))
		case Float32:
			fmt.Fprintf(&sb, " %v", float32(a))
		case String:
			sb.WriteByte(' ')
			sb.WriteString(string(a))
		case Blob:
			fmt.Fprintf(&sb, " blob[%d]", len(a))
		}
	}

	return sb.String()
}
