package dicom

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
	"golang.org/x/image/draw"
)

// 没有 WindowCenter / WindowWidth 时使用的窗位窗宽
const (
	DefaultWindowCenter = 610
	DefaultWindowWidth  = 1221
)

// Monochrome1 是反相灰度的 PhotometricInterpretation
const Monochrome1 = "MONOCHROME1"

// PixelDescriptor 是从group 0028中读出的像素描述
type PixelDescriptor struct {
	Rows, Columns int

	BitsAllocated int
	BitsStored    int
	HighBit       int
	// 0 = unsigned, 1 = 补码
	PixelRepresentation int

	PhotometricInterpretation string

	RescaleSlope     float64
	RescaleIntercept float64
	WindowCenter     float64
	WindowWidth      float64
}

// BytesPerSample is ceil(BitsAllocated / 8).
func (p PixelDescriptor) BytesPerSample() int {
	return (p.BitsAllocated + 7) / 8
}

// NewPixelDescriptor 从ds中读取像素描述。
// BitsAllocated, BitsStored, HighBit 与 PixelRepresentation 是必须的, 缺少时返回false。
// 其他字段缺少时使用默认值: slope 1, intercept 0, 窗位610 窗宽1221。
// 多值的窗位窗宽只使用第一个值
func NewPixelDescriptor(ds *DataSet) (PixelDescriptor, bool) {
	group := ds.Group(dicomtag.ImagePixelGroup)
	p := PixelDescriptor{
		RescaleSlope: 1,
		WindowCenter: DefaultWindowCenter,
		WindowWidth:  DefaultWindowWidth,
	}

	required := []struct {
		key string
		dst *int
	}{
		{"bitsAllocated", &p.BitsAllocated},
		{"bitsStored", &p.BitsStored},
		{"highBit", &p.HighBit},
		{"pixelRepresentation", &p.PixelRepresentation},
	}
	for _, r := range required {
		e, ok := group[r.key]
		if !ok {
			return p, false
		}
		v, err := e.GetInt()
		if err != nil {
			return p, false
		}
		*r.dst = v
	}
	if p.BitsAllocated <= 0 {
		return p, false
	}

	if e, ok := group["rows"]; ok {
		p.Rows, _ = e.GetInt()
	}
	if e, ok := group["columns"]; ok {
		p.Columns, _ = e.GetInt()
	}
	if e, ok := group["photometricInterpretation"]; ok {
		p.PhotometricInterpretation, _ = e.GetString()
	}
	if e, ok := group["rescaleSlope"]; ok {
		if v, err := e.GetFloat64(); err == nil {
			p.RescaleSlope = v
		}
	}
	if e, ok := group["rescaleIntercept"]; ok {
		if v, err := e.GetFloat64(); err == nil {
			p.RescaleIntercept = v
		}
	}
	if e, ok := group["windowCenter"]; ok {
		if v, err := e.GetFloat64(); err == nil {
			p.WindowCenter = v
		}
	}
	if e, ok := group["windowWidth"]; ok {
		if v, err := e.GetFloat64(); err == nil && v > 0 {
			p.WindowWidth = v
		}
	}
	return p, true
}

// Sample 将一个sample的bytes转换为数值 (rescale之前)。
// HighBit+1 == BitsStored 时先反转bytes的顺序 (little endian存储);
// PixelRepresentation为1时只有16 bit的sample按补码解释, 其他宽度保持非负
func (p PixelDescriptor) Sample(b []byte) int64 {
	if p.HighBit+1 == p.BitsStored {
		b = dicomio.ReverseBytes(b)
	}
	var u uint64
	for _, x := range b {
		u = u<<8 | uint64(x)
	}
	if p.PixelRepresentation == 1 && len(b) == 2 {
		return int64(int16(uint16(u)))
	}
	return int64(u)
}

// Level 对一个rescale后的值做窗位窗宽, 返回0-255的灰度
func (p PixelDescriptor) Level(value float64) uint8 {
	lo := p.WindowCenter - p.WindowWidth/2
	hi := p.WindowCenter + p.WindowWidth/2
	span := math.Abs(lo) + math.Abs(hi)

	v := math.Min(math.Max(value, lo), hi)
	if lo < 0 {
		v += math.Abs(lo)
	}
	out := math.Floor(v * 255 / span)
	switch {
	case math.IsNaN(out) || out < 0:
		out = 0
	case out > 255:
		out = 255
	}
	level := uint8(out)
	if p.PhotometricInterpretation == Monochrome1 {
		level = 255 - level
	}
	return level
}

// PixelImage 是重建出的灰度图
type PixelImage struct {
	Rows, Columns int
	// Tokens 是每个像素的 "#RRGGBB", 三个通道相同
	Tokens []string
	// Levels 是每个像素的灰度
	Levels []uint8
}

// Token formats a gray level as "#LLLLLL" with upper-case hex digits.
func Token(level uint8) string {
	return "#" + strings.Repeat(fmt.Sprintf("%02X", level), 3)
}

// ReconstructPixels 从ds的PixelData与group 0028重建灰度像素。
// 缺少必须的描述或PixelData时返回false。
// PixelData结尾不足一个sample的bytes作为一个较短的sample处理
func ReconstructPixels(ds *DataSet) (*PixelImage, bool) {
	p, ok := NewPixelDescriptor(ds)
	if !ok {
		return nil, false
	}
	pixels, err := ds.FindElementByTag(dicomtag.PixelData)
	if err != nil || len(pixels.RawValue) == 0 {
		return nil, false
	}

	width := p.BytesPerSample()
	n := (len(pixels.RawValue) + width - 1) / width
	img := &PixelImage{
		Rows:    p.Rows,
		Columns: p.Columns,
		Tokens:  make([]string, n),
		Levels:  make([]uint8, n),
	}
	for i := 0; i < n; i++ {
		raw := p.Sample(pixels.RawValue[i*width : min((i+1)*width, len(pixels.RawValue))])
		level := p.Level(p.RescaleSlope*float64(raw) + p.RescaleIntercept)
		img.Levels[i] = level
		img.Tokens[i] = Token(level)
	}
	return img, true
}

// Image 返回第一帧的 *image.Gray。
// 没有Rows/Columns时返回一行
func (img *PixelImage) Image() *image.Gray {
	rows, cols := img.Rows, img.Columns
	if rows <= 0 || cols <= 0 || rows*cols > len(img.Levels) {
		rows, cols = 1, len(img.Levels)
	}
	g := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		copy(g.Pix[y*g.Stride:y*g.Stride+cols], img.Levels[y*cols:(y+1)*cols])
	}
	return g
}

// Thumbnail 将图缩放到长边不超过maxDim, 保持宽高比
func (img *PixelImage) Thumbnail(maxDim int) *image.Gray {
	src := img.Image()
	b := src.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return src
	}
	w, h := maxDim, b.Dy()*maxDim/b.Dx()
	if b.Dy() > b.Dx() {
		w, h = b.Dx()*maxDim/b.Dy(), maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
