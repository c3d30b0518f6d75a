package dicomio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	assert.Equal(t, []byte{2, 3}, Range(buf, 1, 2))
	assert.Equal(t, []byte{4, 5}, Range(buf, 3, 10))
	assert.Empty(t, Range(buf, 5, 1))
	assert.Empty(t, Range(buf, -1, 1))
	assert.Empty(t, Range(nil, 0, 4))

	// appending to a range must not write into buf
	r := Range(buf, 0, 2)
	r = append(r, 9)
	assert.Equal(t, []byte{1, 2, 9}, r)
	assert.Equal(t, byte(3), buf[2])
}

func TestSplit(t *testing.T) {
	a, b := Split([]byte("DICMrest"), 4)
	assert.Equal(t, "DICM", string(a))
	assert.Equal(t, "rest", string(b))

	a, b = Split([]byte("ab"), 4)
	assert.Equal(t, "ab", string(a))
	assert.Empty(t, b)
}

func TestHexAndText(t *testing.T) {
	assert.Equal(t, "00ff7f", ToHex([]byte{0x00, 0xff, 0x7f}))
	assert.Equal(t, "DICM", ToText([]byte("DICM")))
	assert.Equal(t, "é", ToText([]byte{0xe9}))
	assert.Equal(t, []byte{3, 2, 1}, ReverseBytes([]byte{1, 2, 3}))
	assert.True(t, IsUpperASCII('A'))
	assert.True(t, IsUpperASCII('Z'))
	assert.False(t, IsUpperASCII('a'))
	assert.False(t, IsUpperASCII(0x00))
}
