// Package dicomio provides utility functions for encoding and decoding
// low-level DICOM data types, such as integers and strings
package dicomio

import (
	"encoding/binary"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
)

// ! ---- types/consts/variables ----

type transferSyntaxStackEntry struct {
	byteorder binary.ByteOrder
	implicit  IsImplicitVR
}

// IsImplicitVR defines whether a 2-character VR tag
// is emit with each data element
type IsImplicitVR int

const (
	// ImplicitVR编码一个没有VR tag的data element
	// VR 从字典(dicomtag)中查出
	ImplicitVR IsImplicitVR = iota

	// ExplicitVR 保存了2比特VR value inline w/ a data element
	ExplicitVR
)

func (v IsImplicitVR) String() string {
	switch v {
	case ImplicitVR:
		return "implicit"
	case ExplicitVR:
		return "explicit"
	}
	return fmt.Sprintf("IsImplicitVR(%d)", int(v))
}

// Decoder用来解码low-level的dicom data 类型（types）
//
// 与文件流不同，Decoder直接在内存中的buffer上移动游标，
// ReadBytes返回的是源buffer的子切片（容量已截断），不会复制。
type Decoder struct {
	data      []byte
	err       error
	byteorder binary.ByteOrder

	// 当前record的header布局, 由调用者通过TransferSyntax()读取
	implicit IsImplicitVR

	// 当前游标位置(相对于data开头)
	pos int

	// 将dicom文件的原始数据解码为utf-8，如果为空，则可能是ASCII编码。详情见Cf p3.5 6.1.2.1
	codingSystem CodingSystem

	// 旧transfer syntax栈，由{push, pop}TransferSyntax使用
	oldTransferSyntaxes []transferSyntaxStackEntry
}

// NewBytesDecoder 创建一个decoder来读取“a sequence of bytes”, 游标从offset开始
func NewBytesDecoder(data []byte, offset int, byteorder binary.ByteOrder, implicit IsImplicitVR) *Decoder {
	if offset < 0 {
		offset = 0
	}
	if offset > len(data) {
		offset = len(data)
	}
	return &Decoder{
		data:      data,
		byteorder: byteorder,
		implicit:  implicit,
		pos:       offset,
	}
}

// NewBytesDecoderWithTransferSyntax与NewBytesDecoder相似，
// 但需要一个transfer syntax UID 而不是一对<byteorder, IsImplicitVR>
func NewBytesDecoderWithTransferSyntax(data []byte, offset int, transferSyntaxUID string) *Decoder {
	endian, implicit, err := ParseTransferSyntaxUID(transferSyntaxUID)
	if err == nil {
		return NewBytesDecoder(data, offset, endian, implicit)
	}

	d := NewBytesDecoder(data, offset, binary.LittleEndian, ExplicitVR)
	d.SetError(fmt.Errorf("%v: %w", transferSyntaxUID, err))
	return d
}

// SetError 将之后Error() call的错误设为已上报（reported）
// 只保留第一个错误
func (d *Decoder) SetError(err error) {
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("%w (file offset %d)", err, d.pos)
	}
}

// SetErrorf 与 SetError相似，但需要一个可打印的string
func (d *Decoder) SetErrorf(format string, args ...interface{}) {
	d.SetError(fmt.Errorf(format, args...))
}

// Error returns an error encountered so far.
func (d *Decoder) Error() error { return d.err }

// TransferSyntax 返回目前的transfer syntax
func (d *Decoder) TransferSyntax() (byteorder binary.ByteOrder, implicit IsImplicitVR) {
	return d.byteorder, d.implicit
}

// PushTransferSyntax() 暂时改变编码格式
// PopTransferSyntax() 恢复旧的编码格式
func (d *Decoder) PushTransferSyntax(byteorder binary.ByteOrder, implicit IsImplicitVR) {
	d.oldTransferSyntaxes = append(d.oldTransferSyntaxes, transferSyntaxStackEntry{d.byteorder, d.implicit})
	d.byteorder = byteorder
	d.implicit = implicit
}

// PopTransferSyntax 在最后一次调用PushTransferSyntax前回复编码方式
func (d *Decoder) PopTransferSyntax() {
	DoAssert(len(d.oldTransferSyntaxes) > 0, "PopTransferSyntax without push")
	e := d.oldTransferSyntaxes[len(d.oldTransferSyntaxes)-1]

	d.byteorder = e.byteorder
	d.implicit = e.implicit
	d.oldTransferSyntaxes = d.oldTransferSyntaxes[:len(d.oldTransferSyntaxes)-1]
}

// SetCodingSystem overrides the default (7bit ASCII) decoder used when
// converting a byte[] to a string.
func (d *Decoder) SetCodingSystem(cs CodingSystem) {
	d.codingSystem = cs
}

// CodingSystem returns the coding system set by SetCodingSystem.
func (d *Decoder) CodingSystem() CodingSystem {
	return d.codingSystem
}

// Pos returns the cursor position within the whole buffer.
func (d *Decoder) Pos() int { return d.pos }

// Remaining 返回游标之后还剩多少bytes
func (d *Decoder) Remaining() int { return len(d.data) - d.pos }

// Peek returns up to n bytes at the cursor without moving it. Fewer than n
// bytes are returned near the end of the buffer.
func (d *Decoder) Peek(n int) []byte {
	return Range(d.data, d.pos, n)
}

// ReadBytes returns the next "length" bytes as a sub-slice of the source
// buffer. On short input it returns nil, leaves the cursor alone and sets an
// error.
func (d *Decoder) ReadBytes(length int) []byte {
	if length < 0 || d.Remaining() < length {
		d.SetError(fmt.Errorf("ReadBytes: requested %d, available %d", length, d.Remaining()))
		return nil
	}
	v := d.data[d.pos : d.pos+length : d.pos+length]
	d.pos += length
	return v
}

// Skip advances the cursor by "length" bytes.
func (d *Decoder) Skip(length int) {
	if length < 0 || d.Remaining() < length {
		d.SetError(fmt.Errorf("Skip: requested %d, available %d", length, d.Remaining()))
		return
	}
	d.pos += length
}

func (d *Decoder) ReadUInt16() uint16 {
	b := d.ReadBytes(2)
	if b == nil {
		return 0
	}
	return d.byteorder.Uint16(b)
}

func (d *Decoder) ReadUInt32() uint32 {
	b := d.ReadBytes(4)
	if b == nil {
		return 0
	}
	return d.byteorder.Uint32(b)
}

// DecodeString converts raw bytes to a Go string with sd. A nil sd, or bytes
// sd cannot decode, give the bytes unchanged.
func DecodeString(sd *encoding.Decoder, raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	if sd == nil {
		// 假设UTF-8是ASCII的超集
		return string(raw)
	}
	out, err := sd.Bytes(raw)
	if err != nil {
		logrus.Debugf("dicomio.DecodeString: %v, keeping raw bytes", err)
		return string(raw)
	}
	return string(out)
}

func DoAssert(condition bool, values ...interface{}) {
	if !condition {
		var s string
		for _, value := range values {
			s += fmt.Sprintf("%v", value)
		}

		logrus.Panic(s)
	}
}
