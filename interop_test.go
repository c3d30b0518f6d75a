package dicom_test

import (
	"bytes"
	"fmt"
	"testing"

	dicom "github.com/odincare/dcmview"
	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdicom "github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/frame"
	"github.com/suyashkumar/dicom/pkg/tag"
)

func mustNewElement(t tag.Tag, value interface{}) *sdicom.Element {
	elem, err := sdicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}

// writeSynthetic 用另一个DICOM实现写出一个 2x2, 12 bit 的单帧图像
func writeSynthetic(t *testing.T, transferSyntax string, pixels []uint16) []byte {
	t.Helper()
	const rows, cols = 2, 2

	elements := []*sdicom.Element{
		mustNewElement(tag.TransferSyntaxUID, []string{transferSyntax}),
		mustNewElement(tag.MediaStorageSOPClassUID, []string{"1.2.840.10008.5.1.4.1.1.4"}),
		mustNewElement(tag.MediaStorageSOPInstanceUID, []string{"1.2.826.0.1.3680043.8.498.7"}),
		mustNewElement(tag.ImplementationClassUID, []string{"1.2.826.0.1.3680043.8.498"}),

		mustNewElement(tag.SOPClassUID, []string{"1.2.840.10008.5.1.4.1.1.4"}),
		mustNewElement(tag.Modality, []string{"MR"}),
		mustNewElement(tag.PatientName, []string{"Doe^Jane"}),
		mustNewElement(tag.PatientID, []string{"P-0001"}),
		mustNewElement(tag.SamplesPerPixel, []int{1}),
		mustNewElement(tag.PhotometricInterpretation, []string{"MONOCHROME2"}),
		mustNewElement(tag.Rows, []int{rows}),
		mustNewElement(tag.Columns, []int{cols}),
		mustNewElement(tag.BitsAllocated, []int{16}),
		mustNewElement(tag.BitsStored, []int{12}),
		mustNewElement(tag.HighBit, []int{11}),
		mustNewElement(tag.PixelRepresentation, []int{0}),
		mustNewElement(tag.WindowCenter, []string{"2048.0"}),
		mustNewElement(tag.WindowWidth, []string{"4096.0"}),
	}

	data := make([][]int, rows*cols)
	for i := range data {
		if i < len(pixels) {
			data[i] = []int{int(pixels[i])}
		} else {
			data[i] = []int{0}
		}
	}
	nativeFrame := frame.NativeFrame{Data: data, Rows: rows, Cols: cols, BitsPerSample: 16}
	pixelDataInfo := sdicom.PixelDataInfo{
		Frames: []*frame.Frame{
			{
				Encapsulated: false,
				NativeData:   nativeFrame,
			},
		},
	}
	elements = append(elements, mustNewElement(tag.PixelData, pixelDataInfo))

	var buf bytes.Buffer
	require.NoError(t, sdicom.Write(&buf, sdicom.Dataset{Elements: elements}))
	return buf.Bytes()
}

func TestParseWrittenByOtherImplementation(t *testing.T) {
	for _, ts := range []string{dicomio.ExplicitVRLittleEndian, dicomio.ImplicitVRLittleEndian} {
		t.Run(ts, func(t *testing.T) {
			data := writeSynthetic(t, ts, []uint16{0, 1024, 2048, 4095})

			fd, err := dicom.Parse(data, dicom.ReadOptions{})
			require.NoError(t, err)
			assert.False(t, fd.HasCondition(dicom.TruncatedRecord))
			assert.False(t, fd.HasCondition(dicom.UnsupportedLength))
			assert.Equal(t, ts, fd.TransferSyntax.UID)
			assert.Equal(t, ts == dicomio.ImplicitVRLittleEndian, fd.ImplicitVR)

			name, err := fd.FindElementByTag(dicomtag.PatientName)
			require.NoError(t, err)
			assert.Equal(t, "Doe^Jane", name.MustGetString())

			rows, err := fd.FindElementByTag(dicomtag.Rows)
			require.NoError(t, err)
			assert.Equal(t, uint16(2), rows.MustGetUInt16())

			pixels, err := fd.Main.FindElementByTag(dicomtag.PixelData)
			require.NoError(t, err)
			assert.Equal(t, dicomtag.OW, pixels.VR)
			assert.Len(t, pixels.RawValue, 8)

			img, ok := dicom.ReconstructPixels(fd.DataSet)
			require.True(t, ok)
			assert.Equal(t, []uint8{0, 63, 127, 254}, img.Levels)
			assert.Equal(t, "#3F3F3F", img.Tokens[1])
		})
	}
}
