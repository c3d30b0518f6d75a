package dicomio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecificCharacterSet(t *testing.T) {
	cs, err := ParseSpecificCharacterSet(nil)
	require.NoError(t, err)
	assert.Nil(t, cs.Ideographic)

	cs, err = ParseSpecificCharacterSet([]string{"ISO_IR 6"})
	require.NoError(t, err)
	assert.Nil(t, cs.Alphabetic)

	cs, err = ParseSpecificCharacterSet([]string{"ISO_IR 100"})
	require.NoError(t, err)
	require.NotNil(t, cs.Ideographic)
	assert.Equal(t, "José", DecodeString(cs.Decoder(IdeographicCodingSystem), []byte{'J', 'o', 's', 0xe9}))

	cs, err = ParseSpecificCharacterSet([]string{"", "ISO 2022 IR 87"})
	require.NoError(t, err)
	assert.Nil(t, cs.Alphabetic)
	assert.NotNil(t, cs.Phonetic)

	_, err = ParseSpecificCharacterSet([]string{"NOT A CHARSET"})
	require.Error(t, err)
}
