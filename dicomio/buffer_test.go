package dicomio

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderReads(t *testing.T) {
	data := []byte{0xff, 0x08, 0x00, 0x05, 0x00, 0x0a, 0x00, 0x00, 0x00}
	d := NewBytesDecoder(data, 1, binary.LittleEndian, ExplicitVR)
	assert.Equal(t, 1, d.Pos())
	assert.Equal(t, uint16(0x0008), d.ReadUInt16())
	assert.Equal(t, uint16(0x0005), d.ReadUInt16())
	assert.Equal(t, uint32(10), d.ReadUInt32())
	require.NoError(t, d.Error())
	assert.Equal(t, 0, d.Remaining())

	// short read leaves the cursor and records the first error only
	assert.Nil(t, d.ReadBytes(2))
	assert.Equal(t, 9, d.Pos())
	first := d.Error()
	require.Error(t, first)
	d.SetError(errors.New("second"))
	assert.Equal(t, first, d.Error())
}

func TestDecoderPeekDoesNotMove(t *testing.T) {
	d := NewBytesDecoder([]byte("0123456789"), 2, binary.LittleEndian, ImplicitVR)
	assert.Equal(t, "234", string(d.Peek(3)))
	assert.Equal(t, 2, d.Pos())
	d.Skip(3)
	assert.Equal(t, 5, d.Pos())
	assert.Equal(t, 5, d.Remaining())
	assert.Equal(t, "89", string(d.Peek(8)[3:]))
}

func TestDecoderBigEndianAndStack(t *testing.T) {
	d := NewBytesDecoder([]byte{0x00, 0x08, 0x08, 0x00}, 0, binary.BigEndian, ExplicitVR)
	assert.Equal(t, uint16(8), d.ReadUInt16())
	d.PushTransferSyntax(binary.LittleEndian, ImplicitVR)
	_, implicit := d.TransferSyntax()
	assert.Equal(t, ImplicitVR, implicit)
	assert.Equal(t, uint16(8), d.ReadUInt16())
	d.PopTransferSyntax()
	bo, implicit := d.TransferSyntax()
	assert.Equal(t, binary.BigEndian, bo)
	assert.Equal(t, ExplicitVR, implicit)

	assert.Panics(t, func() { d.PopTransferSyntax() })
}

func TestDecoderWithTransferSyntax(t *testing.T) {
	d := NewBytesDecoderWithTransferSyntax(nil, 0, ExplicitVRBigEndian)
	bo, implicit := d.TransferSyntax()
	assert.Equal(t, binary.BigEndian, bo)
	assert.Equal(t, ExplicitVR, implicit)
	require.NoError(t, d.Error())

	d = NewBytesDecoderWithTransferSyntax(nil, 0, DeflatedExplicitVRLittleEndian)
	require.ErrorIs(t, d.Error(), ErrDeflatedTransferSyntax)
}

func TestDecodeString(t *testing.T) {
	assert.Equal(t, "abc", DecodeString(nil, []byte("abc")))
	assert.Equal(t, "", DecodeString(nil, nil))
}
