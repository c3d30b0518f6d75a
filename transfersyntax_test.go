package dicom

import (
	"encoding/binary"
	"testing"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
	"github.com/stretchr/testify/assert"
)

func TestResolveTransferSyntaxEmptyBuffer(t *testing.T) {
	ts := ResolveTransferSyntax(nil, 0, nil)
	assert.True(t, ts.IsImplicitVR())
	assert.True(t, ts.IsLittleEndian())
	assert.True(t, ts.Inferred)

	data := explicitLE(str(dicomtag.Modality, dicomtag.CS, "CT"))
	ts = ResolveTransferSyntax(data, len(data), MustNewElement(dicomtag.TransferSyntaxUID, dicomio.ExplicitVRBigEndian))
	assert.True(t, ts.IsImplicitVR())
	assert.True(t, ts.IsLittleEndian())
	assert.NoError(t, ts.Err)
}

func TestResolveTransferSyntaxHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		implicit bool
		little   bool
	}{
		{"explicit little endian", explicitLE(str(dicomtag.Modality, dicomtag.CS, "CT")), false, true},
		{"explicit big endian", encode(binary.BigEndian, dicomio.ExplicitVR, str(dicomtag.Modality, dicomtag.CS, "CT")), false, false},
		{"implicit little endian", implicitLE(str(dicomtag.Modality, "", "CT")), true, true},
		{"unknown code", explicitLE(raw(dicomtag.Modality, "QQ", 'C', 'T')), true, true},
		{"short", []byte{8, 0, 0x60}, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := ResolveTransferSyntax(tc.data, 0, nil)
			assert.Equal(t, tc.implicit, ts.IsImplicitVR())
			assert.Equal(t, tc.little, ts.IsLittleEndian())
			assert.True(t, ts.Inferred)
			assert.Empty(t, ts.UID)
			assert.Contains(t, ts.String(), "(inferred)")
		})
	}
}

func TestResolveTransferSyntaxFromUID(t *testing.T) {
	body := explicitLE(str(dicomtag.Modality, dicomtag.CS, "CT"))
	tests := []struct {
		uid      string
		implicit bool
		little   bool
	}{
		{dicomio.ImplicitVRLittleEndian, true, true},
		{dicomio.ExplicitVRLittleEndian, false, true},
		{dicomio.ExplicitVRBigEndian, false, false},
		// JPEG baseline, 数据集本身是 explicit little endian
		{"1.2.840.10008.1.2.4.50", false, true},
		{"1.2.3.4", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.uid, func(t *testing.T) {
			ts := ResolveTransferSyntax(body, 0, MustNewElement(dicomtag.TransferSyntaxUID, tc.uid))
			assert.NoError(t, ts.Err)
			assert.False(t, ts.Inferred)
			assert.Equal(t, tc.uid, ts.UID)
			assert.Equal(t, tc.implicit, ts.IsImplicitVR())
			assert.Equal(t, tc.little, ts.IsLittleEndian())
		})
	}
}

func TestResolveTransferSyntaxDeflated(t *testing.T) {
	body := []byte{0x78, 0x9c, 1, 2, 3, 4, 5, 6}
	ts := ResolveTransferSyntax(body, 0, MustNewElement(dicomtag.TransferSyntaxUID, dicomio.DeflatedExplicitVRLittleEndian))
	assert.ErrorIs(t, ts.Err, dicomio.ErrDeflatedTransferSyntax)
	assert.Contains(t, ts.Err.Error(), dicomio.DeflatedExplicitVRLittleEndian)
	assert.False(t, ts.IsImplicitVR())
	assert.Equal(t, dicomio.DeflatedExplicitVRLittleEndian+" (explicit VR little endian)", ts.String())
}
