package dicomio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteElementHeaderExplicit(t *testing.T) {
	e := NewBytesEncoder(binary.LittleEndian, ExplicitVR)
	e.WriteElement(0x0008, 0x0005, "CS", []byte("ISO_IR 100"))
	require.NoError(t, e.Error())
	assert.Equal(t, []byte{0x08, 0x00, 0x05, 0x00, 'C', 'S', 0x0a, 0x00}, e.Bytes()[:8])
	assert.Len(t, e.Bytes(), 18)

	e = NewBytesEncoder(binary.LittleEndian, ExplicitVR)
	e.WriteElementHeader(0x7fe0, 0x0010, "OW", 4)
	assert.Equal(t, []byte{0xe0, 0x7f, 0x10, 0x00, 'O', 'W', 0, 0, 4, 0, 0, 0}, e.Bytes())
}

func TestWriteElementHeaderImplicitAndBigEndian(t *testing.T) {
	e := NewBytesEncoder(binary.LittleEndian, ImplicitVR)
	e.WriteElementHeader(0x0028, 0x0010, "US", 2)
	assert.Equal(t, []byte{0x28, 0, 0x10, 0, 2, 0, 0, 0}, e.Bytes())

	e = NewBytesEncoder(binary.BigEndian, ExplicitVR)
	e.WriteElementHeader(0x0028, 0x0010, "US", 2)
	assert.Equal(t, []byte{0, 0x28, 0, 0x10, 'U', 'S', 0, 2}, e.Bytes())
}

func TestWriteElementHeaderTooLong(t *testing.T) {
	e := NewBytesEncoder(binary.LittleEndian, ExplicitVR)
	e.WriteElementHeader(0x0010, 0x0010, "PN", 0x10000)
	require.Error(t, e.Error())
}

func TestWritePreamble(t *testing.T) {
	e := NewBytesEncoder(binary.LittleEndian, ExplicitVR)
	e.WritePreamble()
	b := e.Bytes()
	require.Len(t, b, 132)
	assert.Equal(t, "DICM", string(b[128:]))
}

func TestEncoderTransferSyntaxStack(t *testing.T) {
	e := NewBytesEncoder(binary.LittleEndian, ExplicitVR)
	e.PushTransferSyntax(binary.LittleEndian, ImplicitVR)
	e.WriteElementHeader(0x0010, 0x0020, "LO", 2)
	e.PopTransferSyntax()
	e.WriteElementHeader(0x0010, 0x0020, "LO", 2)
	assert.Equal(t, []byte{
		0x10, 0, 0x20, 0, 2, 0, 0, 0,
		0x10, 0, 0x20, 0, 'L', 'O', 2, 0,
	}, e.Bytes())

	assert.Panics(t, func() { e.PopTransferSyntax() })
}
