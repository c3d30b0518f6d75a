package dicom

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBinaryNumbers(t *testing.T) {
	v, conds := ConvertValue(dicomtag.US, []byte{0x00, 0x02}, binary.LittleEndian)
	assert.Empty(t, conds)
	assert.Equal(t, uint16(512), v)

	v, _ = ConvertValue(dicomtag.US, []byte{0x00, 0x02}, binary.BigEndian)
	assert.Equal(t, uint16(2), v)

	v, _ = ConvertValue(dicomtag.US, []byte{1, 0, 2, 0}, binary.LittleEndian)
	assert.Equal(t, []uint16{1, 2}, v)

	v, _ = ConvertValue(dicomtag.SS, []byte{0xff, 0xff}, binary.LittleEndian)
	assert.Equal(t, int16(-1), v)

	v, _ = ConvertValue(dicomtag.UL, []byte{1, 0, 0, 0}, binary.LittleEndian)
	assert.Equal(t, uint32(1), v)

	v, _ = ConvertValue(dicomtag.SL, []byte{0xfe, 0xff, 0xff, 0xff}, binary.LittleEndian)
	assert.Equal(t, int32(-2), v)

	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(1.5))
	v, _ = ConvertValue(dicomtag.FD, b, binary.LittleEndian)
	assert.Equal(t, 1.5, v)

	binary.LittleEndian.PutUint32(b, math.Float32bits(-0.25))
	v, _ = ConvertValue(dicomtag.FL, b[:4], binary.LittleEndian)
	assert.Equal(t, float32(-0.25), v)

	v, _ = ConvertValue(dicomtag.AT, []byte{0x10, 0x00, 0x20, 0x00}, binary.LittleEndian)
	assert.Equal(t, dicomtag.PatientID, v)
}

func TestConvertLengthMismatch(t *testing.T) {
	v, conds := ConvertValue(dicomtag.US, []byte{1, 0, 9}, binary.LittleEndian)
	assert.Equal(t, uint16(1), v)
	require.Len(t, conds, 1)
	assert.Equal(t, LengthMismatch, conds[0].Kind)
	assert.ErrorIs(t, conds[0], ErrLengthMismatch)
}

func TestConvertText(t *testing.T) {
	v, conds := ConvertValue(dicomtag.CS, []byte(`A\B\C `), binary.LittleEndian)
	assert.Empty(t, conds)
	assert.Equal(t, []string{"A", "B", "C"}, v)

	v, _ = ConvertValue(dicomtag.UI, []byte("1.2.3\x00"), binary.LittleEndian)
	assert.Equal(t, "1.2.3", v)

	v, _ = ConvertValue(dicomtag.LO, []byte("UCLA  Medical Center"), binary.LittleEndian)
	assert.Equal(t, "UCLA  Medical Center", v)

	// ST/LT 中的反斜杠不是分隔符
	v, _ = ConvertValue(dicomtag.LT, []byte(`a\b `), binary.LittleEndian)
	assert.Equal(t, `a\b`, v)

	v, _ = ConvertValue(dicomtag.AS, []byte(" 045Y"), binary.LittleEndian)
	assert.Equal(t, "045Y", v)
}

func TestConvertPersonName(t *testing.T) {
	v, _ := ConvertValue(dicomtag.PN, []byte("Doe^John"), binary.LittleEndian)
	assert.Equal(t, "Doe^John", v)

	cs, err := dicomio.ParseSpecificCharacterSet([]string{"ISO_IR 100"})
	require.NoError(t, err)
	v, _ = convertValue(dicomtag.PN, []byte{'J', 'o', 's', 0xe9, ' '}, binary.LittleEndian, cs)
	assert.Equal(t, "José", v)

	v, _ = convertValue(dicomtag.PN, []byte("Yamada^Tarou=Yamada^Tarou "), binary.LittleEndian, cs)
	assert.Equal(t, "Yamada^Tarou=Yamada^Tarou", v)
}

func TestConvertDecimals(t *testing.T) {
	v, conds := ConvertValue(dicomtag.DS, []byte("40.5"), binary.LittleEndian)
	assert.Empty(t, conds)
	assert.Equal(t, 40.5, v)

	v, _ = ConvertValue(dicomtag.DS, []byte(`0.5\-1.25 `), binary.LittleEndian)
	assert.Equal(t, []float64{0.5, -1.25}, v)

	v, _ = ConvertValue(dicomtag.IS, []byte(" 12 "), binary.LittleEndian)
	assert.Equal(t, 12.0, v)

	v, conds = ConvertValue(dicomtag.IS, []byte("1x"), binary.LittleEndian)
	assert.True(t, math.IsNaN(v.(float64)))
	require.Len(t, conds, 1)
	assert.Equal(t, MalformedScalar, conds[0].Kind)
}

func TestConvertDates(t *testing.T) {
	v, conds := ConvertValue(dicomtag.DA, []byte("19530828"), binary.LittleEndian)
	assert.Empty(t, conds)
	assert.Equal(t, time.Date(1953, 8, 28, 0, 0, 0, 0, time.UTC), v)

	v, _ = ConvertValue(dicomtag.DA, []byte("1953.08.28"), binary.LittleEndian)
	assert.Equal(t, time.Date(1953, 8, 28, 0, 0, 0, 0, time.UTC), v)

	v, conds = ConvertValue(dicomtag.DA, []byte("  "), binary.LittleEndian)
	assert.Nil(t, v)
	assert.Empty(t, conds)

	v, conds = ConvertValue(dicomtag.DA, []byte("19531328"), binary.LittleEndian)
	assert.Nil(t, v)
	assert.Equal(t, []ConditionKind{MalformedScalar}, conditionKinds(conds))

	v, _ = ConvertValue(dicomtag.DA, []byte(`20200101\bad1`), binary.LittleEndian)
	dates, ok := v.([]*time.Time)
	require.True(t, ok)
	require.Len(t, dates, 2)
	assert.Equal(t, 2020, dates[0].Year())
	assert.Nil(t, dates[1])
}

func TestConvertTimes(t *testing.T) {
	v, conds := ConvertValue(dicomtag.TM, []byte("235960.5 "), binary.LittleEndian)
	assert.Empty(t, conds)
	assert.Equal(t, &Time{Hours: 23, Minutes: 59, Seconds: 59, Microseconds: 500000}, v)

	v, _ = ConvertValue(dicomtag.TM, []byte("101010"), binary.LittleEndian)
	tm := v.(*Time)
	assert.Equal(t, "10:10:10.000000", tm.String())
	assert.Equal(t, 10*time.Hour+10*time.Minute+10*time.Second, tm.Duration())

	for _, bad := range []string{"2460", "240000", "126000", "10101a", "101010.", "101010.1234567"} {
		v, conds = ConvertValue(dicomtag.TM, []byte(bad), binary.LittleEndian)
		assert.Nil(t, v, bad)
		assert.Equal(t, []ConditionKind{MalformedScalar}, conditionKinds(conds), bad)
	}

	v, _ = ConvertValue(dicomtag.TM, []byte(`010203\040506.000007`), binary.LittleEndian)
	ts, ok := v.([]*Time)
	require.True(t, ok)
	require.Len(t, ts, 2)
	assert.Equal(t, 7, ts[1].Microseconds)
}

func TestConvertOpaque(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	for _, vr := range []string{dicomtag.OB, dicomtag.OW, dicomtag.UN, dicomtag.SQ, "OB or OW", "US or SS"} {
		v, conds := ConvertValue(vr, b, binary.LittleEndian)
		assert.Empty(t, conds, vr)
		assert.Equal(t, b, v, vr)
	}

	v, conds := ConvertValue("ZZ", b, binary.LittleEndian)
	assert.Equal(t, b, v)
	assert.Equal(t, []ConditionKind{UnknownValueRepresentation}, conditionKinds(conds))
}

func TestTimeOn(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got := Time{Hours: 1, Minutes: 2, Seconds: 3, Microseconds: 4}.On(day)
	assert.Equal(t, time.Date(2024, 3, 1, 1, 2, 3, 4000, time.UTC), got)
}
