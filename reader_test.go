package dicom

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	explicitRegion = Region{ByteOrder: binary.LittleEndian, Implicit: dicomio.ExplicitVR}
	implicitRegion = Region{ByteOrder: binary.LittleEndian, Implicit: dicomio.ImplicitVR}
)

func TestReadRegionCharacterSetAfterHeader(t *testing.T) {
	data := append(make([]byte, HeaderLength), explicitLE(str(dicomtag.SpecificCharacterSet, dicomtag.CS, "ISO_IR 100"))...)

	ds, next, conds := ReadRegion(data, HeaderLength, explicitRegion, ReadOptions{})
	assert.Empty(t, conds)
	assert.Equal(t, 150, next)
	require.Equal(t, 1, ds.Len())

	e, ok := ds.Get("SpecificCharacterSet")
	require.True(t, ok)
	assert.Equal(t, dicomtag.SpecificCharacterSet, e.Tag)
	assert.Equal(t, dicomtag.CS, e.VR)
	assert.Equal(t, uint32(10), e.Length)
	assert.Equal(t, HeaderLength, e.Offset)
	assert.Equal(t, "ISO_IR 100", e.Value)
	assert.Equal(t, "Specific Character Set", e.Name)
	assert.Equal(t, "1-n", e.VM)
	assert.Equal(t, dicomtag.StatusKnown, e.Status)
}

func TestReadRegionExtraLengthVR(t *testing.T) {
	data := explicitLE(
		raw(dicomtag.PixelData, dicomtag.OW, 1, 2, 3, 4),
	)
	// tag(4) + VR(2) + reserved(2) + length(4)
	require.Len(t, data, 16)

	ds, next, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{})
	assert.Empty(t, conds)
	assert.Equal(t, 16, next)
	e, err := ds.FindElementByTag(dicomtag.PixelData)
	require.NoError(t, err)
	assert.Equal(t, dicomtag.OW, e.VR)
	assert.Equal(t, []byte{1, 2, 3, 4}, e.RawValue)
	assert.Equal(t, []byte{1, 2, 3, 4}, e.Value)
}

func TestReadRegionImplicit(t *testing.T) {
	data := implicitLE(
		str(dicomtag.PatientName, "", "Doe^John"),
		us(binary.LittleEndian, dicomtag.Rows, 512),
	)
	ds, next, conds := ReadRegion(data, 0, implicitRegion, ReadOptions{})
	assert.Empty(t, conds)
	assert.Equal(t, len(data), next)

	name, err := ds.FindElementByTag(dicomtag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, dicomtag.PN, name.VR)
	assert.Equal(t, "Doe^John", name.Value)

	rows, err := ds.FindElementByTag(dicomtag.Rows)
	require.NoError(t, err)
	assert.Equal(t, dicomtag.US, rows.VR)
	assert.Equal(t, uint16(512), rows.MustGetUInt16())
}

func TestReadRegionImplicitEnhancedTags(t *testing.T) {
	bValue := make([]byte, 8)
	binary.LittleEndian.PutUint64(bValue, math.Float64bits(1000))
	data := implicitLE(
		raw(dicomtag.Tag{Group: 0x0018, Element: 0x9087}, "", bValue...),
		str(dicomtag.Tag{Group: 0x0028, Element: 0x0051}, "", `UNIF\NORM`),
	)
	ds, _, conds := ReadRegion(data, 0, implicitRegion, ReadOptions{})
	assert.Empty(t, conds)

	e, ok := ds.Get("DiffusionBValue")
	require.True(t, ok)
	assert.Equal(t, dicomtag.FD, e.VR)
	assert.Equal(t, 1000.0, e.Value)

	e, ok = ds.Get("CorrectedImage")
	require.True(t, ok)
	assert.Equal(t, dicomtag.CS, e.VR)
	assert.Equal(t, []string{"UNIF", "NORM"}, e.Value)
}

func TestReadRegionBigEndian(t *testing.T) {
	data := encode(binary.BigEndian, dicomio.ExplicitVR, us(binary.BigEndian, dicomtag.Columns, 256))
	ds, _, conds := ReadRegion(data, 0, Region{ByteOrder: binary.BigEndian, Implicit: dicomio.ExplicitVR}, ReadOptions{})
	assert.Empty(t, conds)
	e, err := ds.FindElementByTag(dicomtag.Columns)
	require.NoError(t, err)
	assert.Equal(t, uint16(256), e.Value)
}

func TestReadRegionImplicitRecordInExplicitRegion(t *testing.T) {
	e := dicomio.NewBytesEncoder(binary.LittleEndian, dicomio.ExplicitVR)
	e.WriteElement(0x0010, 0x0010, dicomtag.PN, []byte("Doe^John"))
	e.PushTransferSyntax(binary.LittleEndian, dicomio.ImplicitVR)
	e.WriteElement(0x0010, 0x0020, "", []byte("12"))
	e.PopTransferSyntax()
	e.WriteElement(0x0010, 0x0040, dicomtag.CS, []byte("F "))
	data := e.Bytes()

	ds, next, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{})
	assert.Empty(t, conds)
	assert.Equal(t, len(data), next)

	id, err := ds.FindElementByTag(dicomtag.PatientID)
	require.NoError(t, err)
	assert.Equal(t, dicomtag.LO, id.VR)
	assert.Equal(t, "12", id.Value)

	// 之后的record恢复explicit布局
	sex, err := ds.FindElementByTag(dicomtag.Tag{Group: 0x0010, Element: 0x0040})
	require.NoError(t, err)
	assert.Equal(t, dicomtag.CS, sex.VR)
	assert.Equal(t, "F", sex.Value)
}

func TestReadRegionUndefinedLength(t *testing.T) {
	head := explicitLE(str(dicomtag.Modality, dicomtag.CS, "CT"))
	e := dicomio.NewBytesEncoder(binary.LittleEndian, dicomio.ExplicitVR)
	e.WriteBytes(head)
	e.WriteElementHeader(0x0008, 0x1140, dicomtag.SQ, dicomio.UndefinedLength)
	e.WriteZeros(16)
	data := e.Bytes()

	ds, next, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{})
	assert.Equal(t, len(head), next)
	assert.Equal(t, 1, ds.Len())
	require.Equal(t, []ConditionKind{UnsupportedLength}, conditionKinds(conds))
	assert.Equal(t, len(head), conds[0].Offset)
	assert.Equal(t, dicomtag.Tag{Group: 0x0008, Element: 0x1140}, conds[0].Tag)
	assert.ErrorIs(t, conds[0], ErrUnsupportedLength)
}

func TestReadRegionZeroLengthIsSkipped(t *testing.T) {
	data := explicitLE(
		raw(dicomtag.AccessionNumber, dicomtag.SH),
		str(dicomtag.Modality, dicomtag.CS, "MR"),
	)
	ds, next, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{})
	assert.Empty(t, conds)
	assert.Equal(t, len(data), next)
	assert.Equal(t, []string{"Modality"}, ds.Keys())
}

func TestReadRegionTruncatedValue(t *testing.T) {
	head := explicitLE(str(dicomtag.Modality, dicomtag.CS, "CT"))
	e := dicomio.NewBytesEncoder(binary.LittleEndian, dicomio.ExplicitVR)
	e.WriteBytes(head)
	e.WriteElementHeader(dicomtag.PatientID.Group, dicomtag.PatientID.Element, dicomtag.LO, 10)
	e.WriteString("1234")
	data := e.Bytes()

	ds, next, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{})
	assert.Equal(t, len(head), next)
	assert.Equal(t, []string{"Modality"}, ds.Keys())
	require.Equal(t, []ConditionKind{TruncatedRecord}, conditionKinds(conds))
	assert.Equal(t, dicomtag.PatientID, conds[0].Tag)
}

func TestReadRegionTrailingBytes(t *testing.T) {
	body := explicitLE(str(dicomtag.Modality, dicomtag.CS, "CT"))
	data := append(append([]byte{}, body...), 1, 2, 3)

	ds, next, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{})
	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, len(body), next)
	require.Equal(t, []ConditionKind{TruncatedRecord}, conditionKinds(conds))
	assert.Equal(t, len(body), conds[0].Offset)

	// 正好结束时没有问题
	_, next, conds = ReadRegion(body, 0, explicitRegion, ReadOptions{})
	assert.Empty(t, conds)
	assert.Equal(t, len(body), next)

	ds, next, conds = ReadRegion(nil, 0, explicitRegion, ReadOptions{})
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, 0, next)
	assert.Empty(t, conds)
}

func TestReadRegionStopConditions(t *testing.T) {
	meta := explicitLE(uid(dicomtag.TransferSyntaxUID, "1.2.840.10008.1.2.1"))
	data := append(append([]byte{}, meta...), explicitLE(str(dicomtag.Modality, dicomtag.CS, "CT"))...)

	ds, next, conds := ReadRegion(data, 0, Region{
		ByteOrder: binary.LittleEndian, Implicit: dicomio.ExplicitVR, Stop: StopOutsideMetaGroup,
	}, ReadOptions{})
	assert.Empty(t, conds)
	assert.Equal(t, len(meta), next)
	assert.Equal(t, []string{"TransferSyntaxUID"}, ds.Keys())

	// command group 是空的
	ds, next, conds = ReadRegion(data, len(meta), Region{
		ByteOrder: binary.LittleEndian, Implicit: dicomio.ImplicitVR, Stop: StopOutsideCommandGroup,
	}, ReadOptions{})
	assert.Empty(t, conds)
	assert.Equal(t, len(meta), next)
	assert.Equal(t, 0, ds.Len())

	assert.Equal(t, "outside-meta-group", StopOutsideMetaGroup.String())
}

func TestReadRegionPrivateTags(t *testing.T) {
	data := implicitLE(
		str(dicomtag.Tag{Group: 0x0009, Element: 0x0010}, "", "ACME"),
		str(dicomtag.Tag{Group: 0x0009, Element: 0x1001}, "", "xy"),
	)
	ds, _, conds := ReadRegion(data, 0, implicitRegion, ReadOptions{})
	assert.Empty(t, conds)
	assert.Equal(t, []string{dicomtag.UnknownPrivate, dicomtag.UnknownPrivate + "-1"}, ds.Keys())

	e, ok := ds.Get("Unknown-PrivateTag-1")
	require.True(t, ok)
	assert.True(t, e.IsPrivate())
	assert.Equal(t, dicomtag.UN, e.VR)
	assert.Equal(t, dicomtag.UnknownPrivate, e.DictionaryVR)
	assert.Equal(t, dicomtag.UnknownPrivate, e.Name)
	assert.Equal(t, []byte("xy"), e.Value)

	// explicit 时使用文件中的VR
	ds, _, _ = ReadRegion(explicitLE(str(dicomtag.Tag{Group: 0x0009, Element: 0x0010}, dicomtag.LO, "ACME")), 0, explicitRegion, ReadOptions{})
	e, ok = ds.Get(dicomtag.UnknownPrivate)
	require.True(t, ok)
	assert.Equal(t, dicomtag.LO, e.VR)
	assert.Equal(t, "ACME", e.Value)
}

func TestReadRegionUnknownPublicTag(t *testing.T) {
	tag := dicomtag.Tag{Group: 0x0008, Element: 0x9999}
	ds, _, conds := ReadRegion(explicitLE(str(tag, dicomtag.LO, "hello")), 0, explicitRegion, ReadOptions{})
	require.Equal(t, []ConditionKind{UnresolvedDictionaryEntry}, conditionKinds(conds))
	assert.ErrorIs(t, conds[0], ErrUnresolvedDictionaryEntry)

	e, ok := ds.Get(dicomtag.Unknown)
	require.True(t, ok)
	assert.Equal(t, dicomtag.StatusUnknown, e.Status)
	assert.Equal(t, dicomtag.LO, e.VR)
	assert.Equal(t, "", e.DictionaryVR)
	assert.Equal(t, "hello", e.Value)
}

func TestReadRegionGroupLength(t *testing.T) {
	data := implicitLE(raw(dicomtag.Tag{Group: 0x0008, Element: 0x0000}, "", 8, 0, 0, 0))
	ds, _, conds := ReadRegion(data, 0, implicitRegion, ReadOptions{})
	assert.Empty(t, conds)
	e, ok := ds.Get("GroupLength")
	require.True(t, ok)
	assert.Equal(t, dicomtag.StatusGroupLength, e.Status)
	assert.Equal(t, dicomtag.UL, e.VR)
	assert.Equal(t, uint32(8), e.Value)
}

func TestReadRegionAmbiguousVR(t *testing.T) {
	unsigned := implicitLE(
		us(binary.LittleEndian, dicomtag.PixelRepresentation, 0),
		raw(dicomtag.SmallestImagePixelValue, "", 0xff, 0xff),
	)
	ds, _, _ := ReadRegion(unsigned, 0, implicitRegion, ReadOptions{})
	e, err := ds.FindElementByTag(dicomtag.SmallestImagePixelValue)
	require.NoError(t, err)
	assert.Equal(t, dicomtag.US, e.VR)
	assert.Equal(t, "US or SS", e.DictionaryVR)
	assert.Equal(t, uint16(0xffff), e.Value)

	signed := implicitLE(
		us(binary.LittleEndian, dicomtag.PixelRepresentation, 1),
		raw(dicomtag.SmallestImagePixelValue, "", 0xff, 0xff),
	)
	ds, _, _ = ReadRegion(signed, 0, implicitRegion, ReadOptions{})
	e, err = ds.FindElementByTag(dicomtag.SmallestImagePixelValue)
	require.NoError(t, err)
	assert.Equal(t, dicomtag.SS, e.VR)
	assert.Equal(t, int16(-1), e.Value)

	data := implicitLE(raw(dicomtag.PixelData, "", 1, 2, 3, 4))
	ds, _, _ = ReadRegion(data, 0, implicitRegion, ReadOptions{})
	e, err = ds.FindElementByTag(dicomtag.PixelData)
	require.NoError(t, err)
	assert.Equal(t, dicomtag.OW, e.VR)
	assert.Equal(t, "OB or OW", e.DictionaryVR)
	assert.Equal(t, []byte{1, 2, 3, 4}, e.Value)
}

func TestReadRegionDefinedLengthSequence(t *testing.T) {
	seq := dicomtag.Tag{Group: 0x0008, Element: 0x1140}
	data := explicitLE(
		raw(seq, dicomtag.SQ, 0xfe, 0xff, 0x00, 0xe0, 0, 0, 0, 0),
		str(dicomtag.Modality, dicomtag.CS, "CT"),
	)
	ds, next, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{})
	assert.Equal(t, len(data), next)
	require.Equal(t, []ConditionKind{UnsupportedSequence}, conditionKinds(conds))

	e, err := ds.FindElementByTag(seq)
	require.NoError(t, err)
	assert.Equal(t, dicomtag.SQ, e.VR)
	assert.Len(t, e.Value, 8)

	_, err = ds.FindElementByTag(dicomtag.Modality)
	assert.NoError(t, err)
}

func TestReadRegionOptions(t *testing.T) {
	data := explicitLE(
		str(dicomtag.Modality, dicomtag.CS, "CT"),
		str(dicomtag.PatientName, dicomtag.PN, "Doe^John"),
		us(binary.LittleEndian, dicomtag.Rows, 2),
		raw(dicomtag.PixelData, dicomtag.OW, 0, 0, 0, 0),
	)
	pixelStart := len(data) - 16

	ds, next, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{DropPixelData: true})
	assert.Empty(t, conds)
	assert.Equal(t, pixelStart, next)
	assert.Equal(t, 3, ds.Len())

	ds, next, _ = ReadRegion(data, 0, explicitRegion, ReadOptions{StopAtTag: &dicomtag.PatientName})
	assert.Equal(t, []string{"Modality"}, ds.Keys())
	assert.Equal(t, 10, next)

	ds, next, _ = ReadRegion(data, 0, explicitRegion, ReadOptions{ReturnTags: []dicomtag.Tag{dicomtag.Rows}})
	assert.Equal(t, []string{"Rows"}, ds.Keys())
	assert.Equal(t, len(data), next)
}

func TestReadRegionSpecificCharacterSet(t *testing.T) {
	data := explicitLE(
		str(dicomtag.SpecificCharacterSet, dicomtag.CS, "ISO_IR 100"),
		raw(dicomtag.PatientName, dicomtag.PN, 'J', 'o', 's', 0xe9),
		raw(dicomtag.StudyDescription, dicomtag.LO, 'C', 'a', 'f', 0xe9),
	)
	ds, _, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{})
	assert.Empty(t, conds)
	e, err := ds.FindElementByTag(dicomtag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, "José", e.Value)
	e, err = ds.FindElementByTag(dicomtag.StudyDescription)
	require.NoError(t, err)
	assert.Equal(t, "Café", e.Value)

	// 未知的字符集保留默认编码
	data = explicitLE(
		str(dicomtag.SpecificCharacterSet, dicomtag.CS, "NOPE"),
		str(dicomtag.PatientName, dicomtag.PN, "Doe"),
	)
	ds, _, _ = ReadRegion(data, 0, explicitRegion, ReadOptions{})
	e, err = ds.FindElementByTag(dicomtag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, "Doe", e.Value)
}

func TestReadRegionValueConditionsCarryTag(t *testing.T) {
	data := explicitLE(str(dicomtag.StudyDate, dicomtag.DA, "2020XX01"))
	_, _, conds := ReadRegion(data, 0, explicitRegion, ReadOptions{})
	require.Len(t, conds, 1)
	assert.Equal(t, MalformedScalar, conds[0].Kind)
	assert.Equal(t, dicomtag.StudyDate, conds[0].Tag)
	assert.Equal(t, 0, conds[0].Offset)
	assert.Contains(t, conds[0].Error(), "MalformedScalar (0008,0020)[StudyDate] at offset 0")
}
