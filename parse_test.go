package dicom

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPreamble(t *testing.T) {
	data := part10(dicomio.ExplicitVRLittleEndian, nil)
	preamble, pos, err := ReadPreamble(data)
	require.NoError(t, err)
	assert.Equal(t, HeaderLength, pos)
	assert.Len(t, preamble, 128)

	for _, bad := range [][]byte{nil, make([]byte, 131), make([]byte, 200)} {
		preamble, pos, err = ReadPreamble(bad)
		assert.Nil(t, preamble)
		assert.Equal(t, 0, pos)
		assert.ErrorIs(t, err, ErrMissingHeader)

		var c Condition
		require.True(t, errors.As(err, &c))
		assert.Equal(t, MissingHeader, c.Kind)
		assert.Equal(t, 128, c.Offset)
	}
}

func TestParseExplicitLittleEndian(t *testing.T) {
	body := explicitLE(
		str(dicomtag.PatientName, dicomtag.PN, "Doe^John"),
		us(binary.LittleEndian, dicomtag.Rows, 4),
	)
	data := part10(dicomio.ExplicitVRLittleEndian, body)
	fd, err := Parse(data, ReadOptions{})
	require.NoError(t, err)
	assert.Empty(t, fd.Conditions)
	assert.NoError(t, fd.Err())
	assert.False(t, fd.ImplicitVR)
	assert.True(t, fd.LittleEndian)
	assert.Equal(t, dicomio.ExplicitVRLittleEndian, fd.TransferSyntax.UID)
	assert.Len(t, fd.Preamble, 128)

	assert.Equal(t, 3, fd.Meta.Len())
	assert.Equal(t, 0, fd.CommandSet.Len())
	assert.Equal(t, 2, fd.Main.Len())
	assert.Equal(t, 5, fd.Len())
	assert.Same(t, fd.DataSet, fd.Merged())

	name, err := fd.FindElementByTag(dicomtag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, "Doe^John", name.MustGetString())

	ts, err := fd.FindElementByKeyword("TransferSyntaxUID")
	require.NoError(t, err)
	assert.Equal(t, dicomio.ExplicitVRLittleEndian, ts.MustGetString())

	gl, ok := fd.Meta.Get("GroupLength")
	require.True(t, ok)
	assert.Equal(t, uint32(len(data)-HeaderLength-12-len(body)), gl.MustGetUInt32())
}

func TestParseImplicitAndBigEndian(t *testing.T) {
	implicit := part10(dicomio.ImplicitVRLittleEndian, implicitLE(
		us(binary.LittleEndian, dicomtag.Columns, 7),
	))
	fd, err := Parse(implicit, ReadOptions{})
	require.NoError(t, err)
	assert.True(t, fd.ImplicitVR)
	e, err := fd.Main.FindElementByTag(dicomtag.Columns)
	require.NoError(t, err)
	assert.Equal(t, uint16(7), e.Value)

	big := part10(dicomio.ExplicitVRBigEndian, encode(binary.BigEndian, dicomio.ExplicitVR,
		us(binary.BigEndian, dicomtag.Columns, 7),
	))
	fd, err = Parse(big, ReadOptions{})
	require.NoError(t, err)
	assert.False(t, fd.LittleEndian)
	e, err = fd.Main.FindElementByTag(dicomtag.Columns)
	require.NoError(t, err)
	assert.Equal(t, uint16(7), e.Value)
}

func TestParseInfersTransferSyntax(t *testing.T) {
	data := part10("", encode(binary.BigEndian, dicomio.ExplicitVR,
		str(dicomtag.Modality, dicomtag.CS, "MR"),
	))
	fd, err := Parse(data, ReadOptions{})
	require.NoError(t, err)
	assert.True(t, fd.TransferSyntax.Inferred)
	assert.False(t, fd.LittleEndian)
	e, err := fd.Find("Modality")
	require.NoError(t, err)
	assert.Equal(t, "MR", e.Value)
}

func TestParseDeflated(t *testing.T) {
	data := part10(dicomio.DeflatedExplicitVRLittleEndian, []byte{0x78, 0x9c, 1, 2, 3, 4, 5, 6, 7, 8})
	fd, err := Parse(data, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, fd.Meta.Len())
	assert.Equal(t, 0, fd.Main.Len())
	assert.True(t, fd.HasCondition(UnsupportedTransferSyntax))
	assert.ErrorIs(t, fd.Err(), ErrUnsupportedTransferSyntax)
	assert.Equal(t, dicomtag.TransferSyntaxUID, fd.Conditions[0].Tag)
}

func TestParseMissingHeader(t *testing.T) {
	fd, err := Parse([]byte("not a dicom file"), ReadOptions{})
	require.NotNil(t, fd)
	assert.ErrorIs(t, err, ErrMissingHeader)
	assert.Equal(t, 0, fd.Len())
	assert.Equal(t, []ConditionKind{MissingHeader}, conditionKinds(fd.Conditions))
	assert.True(t, errors.Is(fd.Err(), ErrMissingHeader))
}

func TestParseCommandSet(t *testing.T) {
	body := append(
		implicitLE(
			raw(dicomtag.CommandGroupLength, "", 18, 0, 0, 0),
			uid(dicomtag.AffectedSOPClassUID, "1.2.840.10008.1.1"),
		),
		explicitLE(str(dicomtag.Modality, dicomtag.CS, "CT"))...,
	)
	fd, err := Parse(part10(dicomio.ExplicitVRLittleEndian, body), ReadOptions{})
	require.NoError(t, err)
	assert.Empty(t, fd.Conditions)
	assert.Equal(t, []string{"GroupLength", "AffectedSOPClassUID"}, fd.CommandSet.Keys())
	assert.Equal(t, []string{"Modality"}, fd.Main.Keys())

	// 合并时 command set 在前
	keys := fd.Keys()
	assert.Equal(t, "GroupLength", keys[0])
	assert.Contains(t, keys, "GroupLength-1")

	e, err := fd.FindElementByTag(dicomtag.AffectedSOPClassUID)
	require.NoError(t, err)
	assert.Equal(t, "1.2.840.10008.1.1", e.Value)
}

func TestParseOptionsApplyToMainOnly(t *testing.T) {
	data := part10(dicomio.ExplicitVRLittleEndian, explicitLE(
		us(binary.LittleEndian, dicomtag.Rows, 1),
		raw(dicomtag.PixelData, dicomtag.OW, 0, 0),
	))
	fd, err := Parse(data, ReadOptions{DropPixelData: true, ReturnTags: []dicomtag.Tag{dicomtag.Rows, dicomtag.PixelData}})
	require.NoError(t, err)
	assert.Equal(t, 3, fd.Meta.Len())
	assert.Equal(t, []string{"Rows"}, fd.Main.Keys())
}

func TestParseTruncatedMain(t *testing.T) {
	body := explicitLE(str(dicomtag.Modality, dicomtag.CS, "CT"))
	data := part10(dicomio.ExplicitVRLittleEndian, append(body, 0x10, 0x00))
	fd, err := Parse(data, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, fd.Main.Len())
	assert.True(t, fd.HasCondition(TruncatedRecord))
	assert.ErrorIs(t, fd.Err(), ErrTruncatedRecord)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.dcm")
	data := part10(dicomio.ExplicitVRLittleEndian, explicitLE(str(dicomtag.PatientID, dicomtag.LO, "7DkT2Tp")))
	require.NoError(t, os.WriteFile(path, data, 0o644))

	fd, err := ParseFile(path, ReadOptions{})
	require.NoError(t, err)
	e, err := fd.Find("(0010,0020)")
	require.NoError(t, err)
	assert.Equal(t, "7DkT2Tp", e.Value)

	fd, err = ParseFile(filepath.Join(t.TempDir(), "missing.dcm"), ReadOptions{})
	assert.Nil(t, fd)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
