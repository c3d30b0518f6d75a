package dicom

import (
	"encoding/binary"
	"testing"

	"github.com/odincare/dcmview/dicomtag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pixelFixture struct {
	rows, columns     uint16
	bitsStored        uint16
	highBit           uint16
	signed            bool
	photometric       string
	center, width     string
	slope, intercept  string
	samples           []uint16
	trailing          []byte
	withoutPixelData  bool
	withoutBitsStored bool
}

func (f pixelFixture) dataset(t *testing.T) *DataSet {
	t.Helper()
	pr := uint16(0)
	if f.signed {
		pr = 1
	}
	recs := []record{
		us(binary.LittleEndian, dicomtag.SamplesPerPixel, 1),
	}
	if f.photometric != "" {
		recs = append(recs, str(dicomtag.PhotometricInterpretation, dicomtag.CS, f.photometric))
	}
	recs = append(recs,
		us(binary.LittleEndian, dicomtag.Rows, f.rows),
		us(binary.LittleEndian, dicomtag.Columns, f.columns),
		us(binary.LittleEndian, dicomtag.BitsAllocated, 16),
	)
	if !f.withoutBitsStored {
		recs = append(recs, us(binary.LittleEndian, dicomtag.BitsStored, f.bitsStored))
	}
	recs = append(recs,
		us(binary.LittleEndian, dicomtag.HighBit, f.highBit),
		us(binary.LittleEndian, dicomtag.PixelRepresentation, pr),
	)
	for _, r := range []struct {
		tag   dicomtag.Tag
		value string
	}{
		{dicomtag.WindowCenter, f.center},
		{dicomtag.WindowWidth, f.width},
		{dicomtag.RescaleIntercept, f.intercept},
		{dicomtag.RescaleSlope, f.slope},
	} {
		if r.value != "" {
			recs = append(recs, str(r.tag, dicomtag.DS, r.value))
		}
	}
	if !f.withoutPixelData {
		pixels := us(binary.LittleEndian, dicomtag.PixelData, f.samples...)
		pixels.vr = dicomtag.OW
		pixels.value = append(pixels.value, f.trailing...)
		recs = append(recs, pixels)
	}

	ds, _, conds := ReadRegion(explicitLE(recs...), 0, explicitRegion, ReadOptions{})
	require.Empty(t, conds)
	return ds
}

func TestSample(t *testing.T) {
	p := PixelDescriptor{BitsAllocated: 16, BitsStored: 16, HighBit: 15, PixelRepresentation: 1}
	assert.Equal(t, int64(-1), p.Sample([]byte{0xff, 0xff}))
	assert.Equal(t, int64(-32768), p.Sample([]byte{0x00, 0x80}))
	assert.Equal(t, int64(0x7fff), p.Sample([]byte{0xff, 0x7f}))

	p.PixelRepresentation = 0
	assert.Equal(t, int64(0xffff), p.Sample([]byte{0xff, 0xff}))

	// HighBit+1 == BitsStored: little endian, 先反转
	p = PixelDescriptor{BitsAllocated: 16, BitsStored: 12, HighBit: 11}
	assert.Equal(t, int64(0x0102), p.Sample([]byte{0x02, 0x01}))

	// 否则按原顺序
	p = PixelDescriptor{BitsAllocated: 16, BitsStored: 12, HighBit: 15}
	assert.Equal(t, int64(0x0102), p.Sample([]byte{0x01, 0x02}))

	// 只有16 bit的sample有符号
	p = PixelDescriptor{BitsAllocated: 8, BitsStored: 8, HighBit: 7, PixelRepresentation: 1}
	assert.Equal(t, 1, p.BytesPerSample())
	assert.Equal(t, int64(128), p.Sample([]byte{0x80}))
	assert.Equal(t, int64(255), p.Sample([]byte{0xff}))

	p = PixelDescriptor{BitsAllocated: 32, BitsStored: 32, HighBit: 31, PixelRepresentation: 1}
	assert.Equal(t, int64(4294967295), p.Sample([]byte{0xff, 0xff, 0xff, 0xff}))

	assert.Equal(t, 2, PixelDescriptor{BitsAllocated: 12}.BytesPerSample())
}

func TestLevel(t *testing.T) {
	p := PixelDescriptor{WindowCenter: 0, WindowWidth: 100}
	assert.Equal(t, uint8(0), p.Level(-80))
	assert.Equal(t, uint8(127), p.Level(0))
	assert.Equal(t, uint8(255), p.Level(50))
	assert.Equal(t, uint8(255), p.Level(5000))

	p.PhotometricInterpretation = Monochrome1
	assert.Equal(t, uint8(255), p.Level(-80))
	assert.Equal(t, uint8(0), p.Level(50))
}

func TestToken(t *testing.T) {
	assert.Equal(t, "#000000", Token(0))
	assert.Equal(t, "#7F7F7F", Token(127))
	assert.Equal(t, "#FFFFFF", Token(255))
	assert.Equal(t, "#0A0A0A", Token(10))
}

func TestReconstructPixels(t *testing.T) {
	f := pixelFixture{
		rows: 2, columns: 2,
		bitsStored: 12, highBit: 11,
		photometric: "MONOCHROME2",
		center:      "128", width: "256",
		samples: []uint16{0, 128, 256, 1000},
	}
	img, ok := ReconstructPixels(f.dataset(t))
	require.True(t, ok)
	assert.Equal(t, []string{"#000000", "#7F7F7F", "#FFFFFF", "#FFFFFF"}, img.Tokens)
	assert.Equal(t, []uint8{0, 127, 255, 255}, img.Levels)
	assert.Equal(t, 2, img.Rows)
	assert.Equal(t, 2, img.Columns)

	f.photometric = Monochrome1
	img, ok = ReconstructPixels(f.dataset(t))
	require.True(t, ok)
	assert.Equal(t, []string{"#FFFFFF", "#808080", "#000000", "#000000"}, img.Tokens)
}

func TestReconstructPixelsTrailingShortSample(t *testing.T) {
	f := pixelFixture{
		rows: 1, columns: 2,
		bitsStored: 12, highBit: 11,
		center: "128", width: "256",
		samples:  []uint16{256},
		trailing: []byte{0x10},
	}
	img, ok := ReconstructPixels(f.dataset(t))
	require.True(t, ok)
	assert.Equal(t, []uint8{255, 15}, img.Levels)
	assert.Equal(t, []string{"#FFFFFF", "#0F0F0F"}, img.Tokens)
}

func TestReconstructPixelsRescale(t *testing.T) {
	f := pixelFixture{
		rows: 1, columns: 1,
		bitsStored: 12, highBit: 11,
		center: "128", width: "256",
		slope: "2", intercept: "-10",
		samples: []uint16{100},
	}
	img, ok := ReconstructPixels(f.dataset(t))
	require.True(t, ok)
	assert.Equal(t, []uint8{189}, img.Levels)
	assert.Equal(t, []string{"#BDBDBD"}, img.Tokens)
}

func TestNewPixelDescriptorDefaults(t *testing.T) {
	f := pixelFixture{
		rows: 1, columns: 2,
		bitsStored: 16, highBit: 15,
		width:   "0",
		samples: []uint16{0, 0},
	}
	p, ok := NewPixelDescriptor(f.dataset(t))
	require.True(t, ok)
	assert.Equal(t, 1.0, p.RescaleSlope)
	assert.Equal(t, 0.0, p.RescaleIntercept)
	assert.Equal(t, float64(DefaultWindowCenter), p.WindowCenter)
	assert.Equal(t, float64(DefaultWindowWidth), p.WindowWidth)
	assert.Equal(t, 16, p.BitsAllocated)

	// 多值时取第一个, 窗位0被保留
	f.center, f.width = `0\300`, `400\800`
	p, ok = NewPixelDescriptor(f.dataset(t))
	require.True(t, ok)
	assert.Equal(t, 0.0, p.WindowCenter)
	assert.Equal(t, 400.0, p.WindowWidth)
}

func TestReconstructPixelsMissingInput(t *testing.T) {
	f := pixelFixture{rows: 1, columns: 1, bitsStored: 16, highBit: 15, samples: []uint16{1}}

	f.withoutBitsStored = true
	_, ok := ReconstructPixels(f.dataset(t))
	assert.False(t, ok)

	f.withoutBitsStored = false
	f.withoutPixelData = true
	_, ok = ReconstructPixels(f.dataset(t))
	assert.False(t, ok)

	_, ok = ReconstructPixels(newDataSet())
	assert.False(t, ok)
}

func TestPixelImage(t *testing.T) {
	img := &PixelImage{Rows: 2, Columns: 4, Levels: []uint8{0, 10, 20, 30, 40, 50, 60, 70}}
	g := img.Image()
	assert.Equal(t, 4, g.Bounds().Dx())
	assert.Equal(t, 2, g.Bounds().Dy())
	assert.Equal(t, uint8(50), g.GrayAt(1, 1).Y)

	thumb := img.Thumbnail(2)
	assert.Equal(t, 2, thumb.Bounds().Dx())
	assert.Equal(t, 1, thumb.Bounds().Dy())

	assert.Equal(t, g.Bounds(), img.Thumbnail(10).Bounds())

	// 没有行列信息时是一行
	g = (&PixelImage{Levels: []uint8{1, 2, 3}}).Image()
	assert.Equal(t, 3, g.Bounds().Dx())
	assert.Equal(t, 1, g.Bounds().Dy())
}
