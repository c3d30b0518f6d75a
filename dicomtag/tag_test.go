package dicomtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagKey(t *testing.T) {
	tag := Tag{0x7FE0, 0x0010}
	assert.Equal(t, "7fe00010", tag.Key())
	assert.Equal(t, [2]string{"7fe0", "0010"}, tag.Tuple())
	assert.Equal(t, "(7fe0,0010)", tag.String())

	parsed, err := ParseKey("7FE00010")
	require.NoError(t, err)
	assert.Equal(t, tag, parsed)

	_, err = ParseKey("7FE0001")
	require.Error(t, err)
	_, err = ParseKey("zzzz0010")
	require.Error(t, err)
}

func TestTagCompare(t *testing.T) {
	assert.Equal(t, -1, Tag{8, 5}.Compare(Tag{8, 6}))
	assert.Equal(t, 1, Tag{0x10, 0}.Compare(Tag{8, 0xffff}))
	assert.Equal(t, 0, Rows.Compare(Tag{0x28, 0x10}))
}

func TestPrivate(t *testing.T) {
	assert.True(t, Tag{0x0009, 0x0010}.IsPrivate())
	assert.False(t, PatientName.IsPrivate())
	assert.True(t, Tag{0x0010, 0}.IsGroupLength())
}

func TestResolveAmbiguousVR(t *testing.T) {
	assert.Equal(t, OW, ResolveAmbiguousVR("OB or OW", false))
	assert.Equal(t, OW, ResolveAmbiguousVR("US or OW", true))
	assert.Equal(t, OB, ResolveAmbiguousVR("OB or UN", false))
	assert.Equal(t, US, ResolveAmbiguousVR("US or SS", false))
	assert.Equal(t, SS, ResolveAmbiguousVR("US or SS", true))
	assert.Equal(t, CS, ResolveAmbiguousVR(CS, true))
}

func TestVRSets(t *testing.T) {
	for _, vr := range []string{"OB", "OD", "OF", "OL", "OV", "OW", "SQ", "SV", "UC", "UN", "UR", "UT", "UV"} {
		assert.True(t, IsExtraLengthVR(vr), vr)
		assert.True(t, IsKnownVR(vr), vr)
	}
	for _, vr := range []string{"US", "CS", "DA", "AT", "FD"} {
		assert.False(t, IsExtraLengthVR(vr), vr)
	}
	assert.False(t, IsKnownVR("ZZ"))
	assert.True(t, IsDisjunctive("US or SS"))
	assert.Equal(t, VRBytes, GetVRKind("OB or OW"))
	assert.Equal(t, VRDecimalList, GetVRKind(DS))
	assert.Equal(t, VRTime, GetVRKind(TM))
}
