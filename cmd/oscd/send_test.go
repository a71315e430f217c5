package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundctl/oscd/osc"
)

func TestParseArg(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want osc.Argument
	}{
		{"i:42", osc.Int32(42)},
		{"i:-1000", osc.Int32(-1000)},
		{"f:3.14", osc.Float32(3.14)},
		{"s:hello world", osc.String("hello world")},
		{"s:", osc.String("")},
		{"s:i:42", osc.String("i:42")},
		{"b:00ff", osc.Blob{0x00, 0xff}},
		{"42", osc.Int32(42)},
		{"-7", osc.Int32(-7)},
		{"4.5", osc.Float32(4.5)},
		{"text", osc.String("text")},
		{"x:foo", osc.String("x:foo")}, // unknown prefix falls back to string
	} {
		got, err := parseArg(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseArgErrors(t *testing.T) {
	for _, in := range []string{"i:notanint", "i:99999999999", "f:fast", "b:zz", "b:abc"} {
		_, err := parseArg(in)
		assert.Error(t, err, in)
	}
}
