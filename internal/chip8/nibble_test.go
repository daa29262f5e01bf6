package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNibble(t *testing.T) {
	n, err := NewNibble(0xA)
	require.NoError(t, err)
	assert.Equal(t, Nibble(0xA), n)

	_, err = NewNibble(0x10)
	require.Error(t, err)
	var rangeErr *NibbleRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestSplitByte(t *testing.T) {
	hi, lo := SplitByte(0xD4)
	assert.Equal(t, Nibble(0xD), hi)
	assert.Equal(t, Nibble(0x4), lo)
}

func TestPackNibbles(t *testing.T) {
	got := PackNibbles(0x1, 0x2, 0x3)
	assert.Equal(t, uint(0x123), got)
}

func TestAddressFromNibbles(t *testing.T) {
	addr := AddressFromNibbles(0x2, 0x3, 0x4)
	assert.Equal(t, Address(0x234), addr)
}

func TestBytesWordRoundTrip(t *testing.T) {
	w := BytesToWord(0xAB, 0xCD)
	assert.Equal(t, uint16(0xABCD), w)

	hi, lo := WordToBytes(w)
	assert.Equal(t, byte(0xAB), hi)
	assert.Equal(t, byte(0xCD), lo)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "0xA", Nibble(0xA).String())
	assert.Equal(t, "0x234", Address(0x234).String())
}
