package dicomtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	elem, err := Find(Tag{32736, 16})
	require.NoError(t, err)
	assert.Equal(t, "PixelData", elem.Keyword)
	assert.Equal(t, "OB or OW", elem.VR)

	elem, err = Find(SpecificCharacterSet)
	require.NoError(t, err)
	assert.Equal(t, "Specific Character Set", elem.Name)
	assert.Equal(t, "CS", elem.VR)
	assert.Equal(t, "1-n", elem.VM)
	assert.False(t, elem.Retired)

	elem, err = Find(Tag{0x0008, 0x0024})
	require.NoError(t, err)
	assert.True(t, elem.Retired)

	_, err = Find(Tag{0x0008, 0x9999})
	require.Error(t, err)
}

func TestFindByKeywordAndName(t *testing.T) {
	elem, err := FindByKeyword("TransferSyntaxUID")
	require.NoError(t, err)
	assert.Equal(t, TransferSyntaxUID, elem.Tag)

	elem, err = FindByKeyword("transfer_syntax_uid")
	require.NoError(t, err)
	assert.Equal(t, TransferSyntaxUID, elem.Tag)

	elem, err = FindByName("Patient's Name")
	require.NoError(t, err)
	assert.Equal(t, PatientName, elem.Tag)

	elem, err = FindByName("patients name")
	require.NoError(t, err)
	assert.Equal(t, PatientName, elem.Tag)

	_, err = FindByName("Nothing Like This")
	require.Error(t, err)

	elem, err = FindByKey("00280010")
	require.NoError(t, err)
	assert.Equal(t, "Rows", elem.Keyword)
}

func TestLookupSentinels(t *testing.T) {
	// element zero wins over everything, odd group included
	for _, tag := range []Tag{{0x0002, 0x0000}, {0x0009, 0x0000}, {0x7777, 0x0000}} {
		info, status := Lookup(tag)
		assert.Equal(t, StatusGroupLength, status, tag.String())
		assert.Equal(t, "GroupLength", info.Keyword)
		assert.Equal(t, "UL", info.VR)
		assert.Equal(t, tag, info.Tag)
	}

	info, status := Lookup(Tag{0x0009, 0x0010})
	assert.Equal(t, StatusPrivate, status)
	assert.Equal(t, UnknownPrivate, info.Keyword)
	assert.Equal(t, UnknownPrivate, info.VR)
	assert.Equal(t, UnknownPrivate, info.Name)

	info, status = Lookup(Tag{0x0008, 0x9999})
	assert.Equal(t, StatusUnknown, status)
	assert.Equal(t, Unknown, info.Keyword)
	assert.Equal(t, Unknown, info.VM)

	info, status = Lookup(Rows)
	assert.Equal(t, StatusKnown, status)
	assert.Equal(t, "US", info.VR)
}

func TestNamedTagsAreInDictionary(t *testing.T) {
	for _, tag := range []Tag{
		TransferSyntaxUID, SpecificCharacterSet, PixelData, BitsAllocated,
		BitsStored, HighBit, PixelRepresentation, PhotometricInterpretation,
		RescaleSlope, RescaleIntercept, WindowCenter, WindowWidth, Rows, Columns,
		QueryRetrieveLevel, StudyInstanceUID, Item,
	} {
		MustFind(tag)
	}
}

func TestDebugString(t *testing.T) {
	assert.Equal(t, "(7fe0,0010)[PixelData]", DebugString(PixelData))
	assert.Equal(t, "(0009,0010)[private]", DebugString(Tag{9, 0x10}))
	assert.Equal(t, "(0008,9999)[??]", DebugString(Tag{8, 0x9999}))
}

func TestDictionaryCoversStandard(t *testing.T) {
	maybeInitTagDict()
	assert.Greater(t, len(tagDict), 4000)

	for keyword, want := range map[string]Tag{
		"DiffusionBValue":     {0x0018, 0x9087},
		"AcquisitionDuration": {0x0018, 0x9073},
		"CorrectedImage":      {0x0028, 0x0051},
		"CommandField":        {0x0000, 0x0100},
	} {
		info, err := FindByKeyword(keyword)
		require.NoError(t, err, keyword)
		assert.Equal(t, want, info.Tag, keyword)
	}

	info := MustFind(Tag{0x0018, 0x9087})
	assert.Equal(t, "FD", info.VR)
	assert.Equal(t, "Diffusion b-value", info.Name)
}
