package dicom

import (
	"encoding/binary"
	"fmt"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
)

// TransferSyntax 描述主dataset的编码方式
type TransferSyntax struct {
	// UID 是 (0002,0010) 的值, 没有时为空
	UID       string
	ByteOrder binary.ByteOrder
	Implicit  dicomio.IsImplicitVR
	// Inferred 表示没有 TransferSyntaxUID, 编码方式是从第一个element猜出来的
	Inferred bool
	// Err 非空时主dataset不能被解码 (deflated)
	Err error
}

// IsImplicitVR reports whether the main region has no VR on the wire.
func (ts TransferSyntax) IsImplicitVR() bool { return ts.Implicit == dicomio.ImplicitVR }

// IsLittleEndian reports whether the main region is little endian.
func (ts TransferSyntax) IsLittleEndian() bool { return ts.ByteOrder == binary.LittleEndian }

func (ts TransferSyntax) String() string {
	order := "big endian"
	if ts.IsLittleEndian() {
		order = "little endian"
	}
	s := fmt.Sprintf("%v VR %s", ts.Implicit, order)
	if ts.UID != "" {
		s = ts.UID + " (" + s + ")"
	}
	if ts.Inferred {
		s += " (inferred)"
	}
	return s
}

// highGroup 以little endian读出的group不小于这个值时, 认为数据是big endian
const highGroup = 1024

// ResolveTransferSyntax 决定从offset开始的主dataset的编码方式。
//
// uid 是file meta中的TransferSyntaxUID element, 可以为nil。没有uid时,
// 以little endian读取offset处的 group/reserved/VR 6个byte: VR是已知的代码则为
// explicit VR, group >= 1024 时为big endian; 否则为implicit VR little endian。
// 未知的UID按explicit VR little endian处理, deflated的UID设置Err。
func ResolveTransferSyntax(data []byte, offset int, uid *Element) TransferSyntax {
	ts := TransferSyntax{ByteOrder: binary.LittleEndian, Implicit: dicomio.ImplicitVR}
	if offset < 0 || offset >= len(data) {
		ts.Inferred = uid == nil
		return ts
	}

	if uid == nil {
		ts.Inferred = true
		peek := dicomio.Range(data, offset, 6)
		if len(peek) < 6 {
			return ts
		}
		group := binary.LittleEndian.Uint16(peek[0:2])
		if dicomtag.IsKnownVR(dicomio.ToText(peek[4:6])) {
			ts.Implicit = dicomio.ExplicitVR
			if group >= highGroup {
				ts.ByteOrder = binary.BigEndian
			}
		}
		return ts
	}

	s, err := uid.GetString()
	if err != nil {
		// 多值或者非字符串, 取第一个
		if ss, err2 := uid.GetStrings(); err2 == nil && len(ss) > 0 {
			s = ss[0]
		}
	}
	ts.UID = s
	d := dicomio.NewBytesDecoderWithTransferSyntax(data, offset, s)
	ts.ByteOrder, ts.Implicit = d.TransferSyntax()
	ts.Err = d.Error()
	return ts
}
