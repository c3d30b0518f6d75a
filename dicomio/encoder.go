package dicomio

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/odincare/dcmview/dicomtag"
	"github.com/sirupsen/logrus"
)

// UndefinedLength 代表长度未定义 (sequence / encapsulated pixel data)
const UndefinedLength uint32 = 0xffffffff

// Encoder is a helper class for encoding low-level DICOM data types. It is
// used to assemble byte streams (tests, fixtures); the decoder never needs it.
type Encoder struct {
	err error

	out *bytes.Buffer

	byteorder binary.ByteOrder

	// 决定WriteElementHeader写出的header布局
	implicit IsImplicitVR

	// Stack of old transfer syntaxes. {Push, Pop} TransferSyntax使用.
	oldTransferSyntaxes []transferSyntaxStackEntry
}

// NewBytesEncoder创建一个新的encoder，数据会写入缓冲区
// 可以通过Bytes（）来获取
func NewBytesEncoder(byteorder binary.ByteOrder, implicit IsImplicitVR) *Encoder {
	return &Encoder{
		out:       &bytes.Buffer{},
		byteorder: byteorder,
		implicit:  implicit,
	}
}

// PushTransferSyntax 让之后写出的records使用另一种编码,
// 用来在explicit的数据中混入implicit的record。PopTransferSyntax 恢复
func (e *Encoder) PushTransferSyntax(byteorder binary.ByteOrder, implicit IsImplicitVR) {
	e.oldTransferSyntaxes = append(e.oldTransferSyntaxes,
		transferSyntaxStackEntry{e.byteorder, e.implicit})

	e.byteorder = byteorder
	e.implicit = implicit
}

func (e *Encoder) PopTransferSyntax() {
	DoAssert(len(e.oldTransferSyntaxes) > 0, "PopTransferSyntax without push")
	ts := e.oldTransferSyntaxes[len(e.oldTransferSyntaxes)-1]
	e.byteorder = ts.byteorder
	e.implicit = ts.implicit
	e.oldTransferSyntaxes = e.oldTransferSyntaxes[:len(e.oldTransferSyntaxes)-1]
}

// SetError sets the error to be reported by future Error() calls.
// Only the first error is kept.
func (e *Encoder) SetError(err error) {
	if err != nil && e.err == nil {
		e.err = err
	}
}

// SetErrorf is similar to SetError, but takes a printf format string
func (e *Encoder) SetErrorf(format string, args ...interface{}) {
	e.SetError(fmt.Errorf(format, args...))
}

// 返回一个由SetError设置的error，如果SetError没有被使用，则返回nil
func (e *Encoder) Error() error {
	return e.err
}

// Bytes returns the encoded data
//
// 须知: e.Error() == nil, 且所有Push都已Pop
func (e *Encoder) Bytes() []byte {
	DoAssert(len(e.oldTransferSyntaxes) == 0)
	if e.err != nil {
		logrus.Panic(e.err)
	}
	return e.out.Bytes()
}

func (e *Encoder) WriteUInt16(v uint16) {
	if err := binary.Write(e.out, e.byteorder, &v); err != nil {
		e.SetError(err)
	}
}

func (e *Encoder) WriteUInt32(v uint32) {
	if err := binary.Write(e.out, e.byteorder, &v); err != nil {
		e.SetError(err)
	}
}

// WriteString writes the string, withoutout any length prefix or padding.
func (e *Encoder) WriteString(v string) {
	e.out.WriteString(v)
}

// WriteZeros encodes an array of zero bytes.
func (e *Encoder) WriteZeros(n int) {
	e.out.Write(make([]byte, n))
}

// Copy the given data to output.
func (e *Encoder) WriteBytes(v []byte) {
	e.out.Write(v)
}

// WritePreamble writes the 128 zero bytes and the "DICM" magic.
func (e *Encoder) WritePreamble() {
	e.WriteZeros(128)
	e.WriteString("DICM")
}

// WriteElementHeader writes a tag and its VR/length fields in the current
// transfer syntax. In explicit mode, extra-length VRs get two reserved bytes
// followed by a 32-bit length (PS3.5 7.1.2).
func (e *Encoder) WriteElementHeader(group, element uint16, vr string, vl uint32) {
	e.WriteUInt16(group)
	e.WriteUInt16(element)

	if e.implicit == ImplicitVR {
		e.WriteUInt32(vl)
		return
	}

	DoAssert(len(vr) == 2, vr)
	e.WriteString(vr)
	if dicomtag.IsExtraLengthVR(vr) {
		e.WriteZeros(2)
		e.WriteUInt32(vl)
		return
	}
	if vl > 0xffff {
		e.SetErrorf("WriteElementHeader: VR %s cannot hold length %d", vr, vl)
		return
	}
	e.WriteUInt16(uint16(vl))
}

// WriteElement writes a complete element whose value is already encoded.
// No padding is added.
func (e *Encoder) WriteElement(group, element uint16, vr string, value []byte) {
	e.WriteElementHeader(group, element, vr, uint32(len(value)))
	e.WriteBytes(value)
}
