package dicomio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransferSyntaxUID(t *testing.T) {
	tests := []struct {
		uid      string
		order    binary.ByteOrder
		implicit IsImplicitVR
	}{
		{ImplicitVRLittleEndian, binary.LittleEndian, ImplicitVR},
		{ExplicitVRLittleEndian, binary.LittleEndian, ExplicitVR},
		{ExplicitVRBigEndian, binary.BigEndian, ExplicitVR},
		{"1.2.840.10008.1.2.4.50", binary.LittleEndian, ExplicitVR},
		{"garbage", binary.LittleEndian, ExplicitVR},
	}
	for _, tt := range tests {
		order, implicit, err := ParseTransferSyntaxUID(tt.uid)
		require.NoError(t, err, tt.uid)
		assert.Equal(t, tt.order, order, tt.uid)
		assert.Equal(t, tt.implicit, implicit, tt.uid)
	}

	_, implicit, err := ParseTransferSyntaxUID(DeflatedExplicitVRLittleEndian)
	require.ErrorIs(t, err, ErrDeflatedTransferSyntax)
	assert.Equal(t, ExplicitVR, implicit)
}

func TestCanonicalTransferSyntaxUID(t *testing.T) {
	assert.Equal(t, ExplicitVRLittleEndian, CanonicalTransferSyntaxUID("1.2.840.10008.1.2.4.90"))
	assert.Equal(t, ImplicitVRLittleEndian, CanonicalTransferSyntaxUID(ImplicitVRLittleEndian))
}
