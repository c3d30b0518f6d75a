package dicom_test

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"

	dicom "github.com/odincare/dcmview"
	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
	"github.com/stretchr/testify/require"
)

// sampleFile 组装一个 explicit VR little endian 的 Part 10 buffer
func sampleFile() []byte {
	body := dicomio.NewBytesEncoder(binary.LittleEndian, dicomio.ExplicitVR)
	body.WriteElement(0x0010, 0x0010, dicomtag.PN, []byte("Doe^John"))
	body.WriteElement(0x0010, 0x0020, dicomtag.LO, []byte("7DkT2Tp "))
	body.WriteElement(0x0010, 0x0030, dicomtag.DA, []byte("19530828"))
	body.WriteElement(0x0020, 0x000D, dicomtag.UI, []byte("1.2.3.4\x00"))
	body.WriteElement(0x0020, 0x000E, dicomtag.UI, []byte("1.2.3.4.5\x00"))
	body.WriteElement(0x7FE0, 0x0010, dicomtag.OW, []byte{0, 0, 0, 0})

	meta := dicomio.NewBytesEncoder(binary.LittleEndian, dicomio.ExplicitVR)
	meta.WriteElement(0x0002, 0x0001, dicomtag.OB, []byte{0, 1})
	meta.WriteElement(0x0002, 0x0010, dicomtag.UI, []byte(dicomio.ExplicitVRLittleEndian+"\x00"))

	e := dicomio.NewBytesEncoder(binary.LittleEndian, dicomio.ExplicitVR)
	e.WritePreamble()
	e.WriteElementHeader(0x0002, 0x0000, dicomtag.UL, 4)
	e.WriteUInt32(uint32(len(meta.Bytes())))
	e.WriteBytes(meta.Bytes())
	e.WriteBytes(body.Bytes())
	return e.Bytes()
}

func mustParseFile(t *testing.T, options dicom.ReadOptions) *dicom.FullDataset {
	path := filepath.Join(t.TempDir(), "IM-0001-0001.dcm")
	if err := os.WriteFile(path, sampleFile(), 0o644); err != nil {
		log.Panic(err)
	}
	data, err := dicom.ParseFile(path, options)
	if err != nil {
		log.Panic(err)
	}
	return data
}

func Example_parse() {
	ds, err := dicom.Parse(sampleFile(), dicom.ReadOptions{})
	if err != nil {
		panic(err)
	}
	patientID, err := ds.FindElementByTag(dicomtag.PatientID)
	if err != nil {
		panic(err)
	}
	patientBirthDate, err := ds.FindElementByTag(dicomtag.PatientBirthDate)
	if err != nil {
		panic(err)
	}
	fmt.Println("ID: " + patientID.String())
	fmt.Println("BirthDate: " + patientBirthDate.String())
	fmt.Println("TransferSyntax: " + ds.TransferSyntax.String())
	// Output:
	// ID: (0010,0020)[PatientID] LO [7DkT2Tp]
	// BirthDate: (0010,0030)[PatientBirthDate] DA [1953-08-28]
	// TransferSyntax: 1.2.840.10008.1.2.1 (explicit VR little endian)
}

// Test ReadOptions
func TestReadOptions(t *testing.T) {
	// Test Drop Pixel Data
	data := mustParseFile(t, dicom.ReadOptions{DropPixelData: true})
	_, err := data.FindElementByTag(dicomtag.PatientName)
	require.NoError(t, err)
	_, err = data.FindElementByTag(dicomtag.PixelData)
	require.Error(t, err)

	// Test Return Tags
	data = mustParseFile(t, dicom.ReadOptions{DropPixelData: true, ReturnTags: []dicomtag.Tag{dicomtag.StudyInstanceUID}})
	_, err = data.FindElementByTag(dicomtag.StudyInstanceUID)
	if err != nil {
		t.Error(err)
	}
	_, err = data.FindElementByTag(dicomtag.PatientName)
	if err == nil {
		t.Errorf("PatientName should not be present")
	}
	// file meta 不受影响
	_, err = data.FindElementByTag(dicomtag.TransferSyntaxUID)
	require.NoError(t, err)

	// Test Stop at Tag
	data = mustParseFile(t,
		dicom.ReadOptions{
			DropPixelData: true,
			// Study Instance UID Element tag is Tag{0x0020, 0x000D}
			StopAtTag: &dicomtag.StudyInstanceUID})
	_, err = data.FindElementByTag(dicomtag.PatientName) // Patient Name Element tag is Tag{0x0010, 0x0010}
	if err != nil {
		t.Error(err)
	}
	_, err = data.FindElementByTag(dicomtag.SeriesInstanceUID) // Series Instance UID Element tag is Tag{0x0020, 0x000E}
	if err == nil {
		t.Errorf("SeriesInstanceUID should not be present")
	}
}
