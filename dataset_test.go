package dicom

import (
	"encoding/binary"
	"testing"

	"github.com/odincare/dcmview/dicomtag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataSet(t *testing.T) *DataSet {
	t.Helper()
	ds, _, conds := ReadRegion(explicitLE(
		uid(dicomtag.SOPClassUID, "1.2.840.10008.5.1.4.1.1.2"),
		str(dicomtag.StudyDate, dicomtag.DA, "20240301"),
		str(dicomtag.Modality, dicomtag.CS, "CT"),
		str(dicomtag.PatientName, dicomtag.PN, "Doe^John"),
		str(dicomtag.PatientID, dicomtag.LO, "7DkT2Tp"),
		str(dicomtag.PatientAge, dicomtag.AS, "045Y"),
		us(binary.LittleEndian, dicomtag.Rows, 2),
		us(binary.LittleEndian, dicomtag.BitsAllocated, 16),
	), 0, explicitRegion, ReadOptions{})
	require.Empty(t, conds)
	return ds
}

func TestDataSetLookups(t *testing.T) {
	ds := testDataSet(t)
	assert.Equal(t, 8, ds.Len())

	e, err := ds.FindElementByTag(dicomtag.PatientID)
	require.NoError(t, err)
	assert.Equal(t, "7DkT2Tp", e.MustGetString())

	e, err = ds.FindElementByHex("0010", "0010")
	require.NoError(t, err)
	assert.Equal(t, dicomtag.PatientName, e.Tag)

	e, err = ds.FindElementByName("patient's name")
	require.NoError(t, err)
	assert.Equal(t, dicomtag.PatientName, e.Tag)

	e, err = ds.FindElementByKeyword("patient_id")
	require.NoError(t, err)
	assert.Equal(t, dicomtag.PatientID, e.Tag)

	_, err = ds.FindElementByTag(dicomtag.PixelData)
	assert.Error(t, err)
	_, err = ds.FindElementByHex("zz", "0010")
	assert.Error(t, err)
	_, err = ds.FindElementByName("Nothing Here")
	assert.Error(t, err)
}

func TestDataSetFind(t *testing.T) {
	ds := testDataSet(t)
	for _, q := range []string{"00100020", "(0010,0020)", "0010,0020", "PatientID", "Patient ID", " patientid "} {
		e, err := ds.Find(q)
		require.NoError(t, err, q)
		assert.Equal(t, dicomtag.PatientID, e.Tag, q)
	}
	_, err := ds.Find("NoSuchThing")
	assert.Error(t, err)
}

func TestDataSetGroup(t *testing.T) {
	ds := testDataSet(t)
	g := ds.Group(0x0008)
	assert.Len(t, g, 3)
	assert.Contains(t, g, "sopClassUID")
	assert.Contains(t, g, "studyDate")
	assert.Contains(t, g, "modality")

	g = ds.Group(dicomtag.ImagePixelGroup)
	require.Contains(t, g, "bitsAllocated")
	assert.Equal(t, uint16(16), g["bitsAllocated"].Value)

	assert.Empty(t, ds.Group(0x7fe0))
}

func TestLowerCamel(t *testing.T) {
	for in, want := range map[string]string{
		"SOPClassUID":        "sopClassUID",
		"BitsAllocated":      "bitsAllocated",
		"Rows":               "rows",
		"UID":                "uid",
		"GroupLength-1":      "groupLength-1",
		"":                   "",
		"Unknown-PrivateTag": "unknown-PrivateTag",
	} {
		assert.Equal(t, want, lowerCamel(in), in)
	}
}

func TestDataSetSortedElements(t *testing.T) {
	ds := newDataSet()
	ds.add(&Element{Tag: dicomtag.Rows, Keyword: "Rows", Offset: 30})
	ds.add(&Element{Tag: dicomtag.Modality, Keyword: "Modality", Offset: 20})
	ds.add(&Element{Tag: dicomtag.Modality, Keyword: "Modality", Offset: 10})

	assert.Equal(t, []string{"Rows", "Modality", "Modality-1"}, ds.Keys())
	sorted := ds.SortedElements()
	require.Len(t, sorted, 3)
	assert.Equal(t, 10, sorted[0].Offset)
	assert.Equal(t, 20, sorted[1].Offset)
	assert.Equal(t, dicomtag.Rows, sorted[2].Tag)

	e, err := ds.FindElementByTag(dicomtag.Modality)
	require.NoError(t, err)
	assert.Equal(t, 10, e.Offset)

	assert.Len(t, ds.Elements(), 3)
}

func TestNilDataSet(t *testing.T) {
	var ds *DataSet
	assert.Equal(t, 0, ds.Len())
	assert.Nil(t, ds.Keys())
	assert.Empty(t, ds.Elements())
	assert.Empty(t, ds.Group(0x0010))
	_, ok := ds.Get("Rows")
	assert.False(t, ok)
	_, err := ds.FindElementByTag(dicomtag.Rows)
	assert.Error(t, err)
}

func TestElementAccessors(t *testing.T) {
	ds := testDataSet(t)

	e, _ := ds.FindElementByTag(dicomtag.StudyDate)
	d, err := e.GetDate()
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	_, err = e.GetString()
	assert.Error(t, err)

	e, _ = ds.FindElementByTag(dicomtag.Rows)
	n, err := e.GetInt()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	vs, err := e.GetUint16s()
	require.NoError(t, err)
	assert.Equal(t, []uint16{2}, vs)
	_, err = e.GetUInt32()
	assert.Error(t, err)
	assert.Panics(t, func() { e.MustGetString() })

	e, _ = ds.FindElementByTag(dicomtag.PatientName)
	assert.Equal(t, "(0010,0010)[PatientName] PN [Doe^John]", e.String())
	assert.False(t, e.IsPrivate())
}

func TestNewElement(t *testing.T) {
	e, err := NewElement(dicomtag.PatientName, "Doe*")
	require.NoError(t, err)
	assert.Equal(t, dicomtag.PN, e.VR)

	e, err = NewElement(dicomtag.Rows, uint16(2))
	require.NoError(t, err)
	assert.Equal(t, dicomtag.US, e.VR)

	_, err = NewElement(dicomtag.Rows, "two")
	assert.Error(t, err)

	_, err = NewElement(dicomtag.Tag{Group: 0x0008, Element: 0x9999}, "x")
	assert.Error(t, err)

	e = MustNewElement(dicomtag.PixelData, nil)
	assert.Equal(t, dicomtag.OW, e.VR)
	assert.Panics(t, func() { MustNewElement(dicomtag.StudyDate, 3) })
}
