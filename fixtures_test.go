package dicom

import (
	"encoding/binary"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
)

// record 是测试用的一个 tag-VR-value
type record struct {
	tag   dicomtag.Tag
	vr    string
	value []byte
}

// str 用空格补齐到偶数长度
func str(tag dicomtag.Tag, vr, s string) record {
	if len(s)%2 == 1 {
		s += " "
	}
	return record{tag, vr, []byte(s)}
}

// uid 用NUL补齐到偶数长度
func uid(tag dicomtag.Tag, s string) record {
	if len(s)%2 == 1 {
		s += "\x00"
	}
	return record{tag, dicomtag.UI, []byte(s)}
}

func us(bo binary.ByteOrder, tag dicomtag.Tag, values ...uint16) record {
	b := make([]byte, 2*len(values))
	for i, v := range values {
		bo.PutUint16(b[2*i:], v)
	}
	return record{tag, dicomtag.US, b}
}

func raw(tag dicomtag.Tag, vr string, b ...byte) record {
	return record{tag, vr, b}
}

// encode 按给定的编码写出records
func encode(bo binary.ByteOrder, implicit dicomio.IsImplicitVR, recs ...record) []byte {
	e := dicomio.NewBytesEncoder(bo, implicit)
	for _, r := range recs {
		e.WriteElement(r.tag.Group, r.tag.Element, r.vr, r.value)
	}
	if err := e.Error(); err != nil {
		panic(err)
	}
	return e.Bytes()
}

func explicitLE(recs ...record) []byte {
	return encode(binary.LittleEndian, dicomio.ExplicitVR, recs...)
}

func implicitLE(recs ...record) []byte {
	return encode(binary.LittleEndian, dicomio.ImplicitVR, recs...)
}

// part10 在body前加上preamble与file meta, tsUID为空时不写TransferSyntaxUID
func part10(tsUID string, body []byte) []byte {
	recs := []record{raw(dicomtag.FileMetaInformationVersion, dicomtag.OB, 0, 1)}
	if tsUID != "" {
		recs = append(recs, uid(dicomtag.TransferSyntaxUID, tsUID))
	}
	meta := explicitLE(recs...)

	e := dicomio.NewBytesEncoder(binary.LittleEndian, dicomio.ExplicitVR)
	e.WritePreamble()
	groupLength := make([]byte, 4)
	binary.LittleEndian.PutUint32(groupLength, uint32(len(meta)))
	e.WriteElement(dicomtag.FileMetaInformationGroupLength.Group, dicomtag.FileMetaInformationGroupLength.Element, dicomtag.UL, groupLength)
	e.WriteBytes(meta)
	e.WriteBytes(body)
	return e.Bytes()
}

func conditionKinds(conds []Condition) []ConditionKind {
	var kinds []ConditionKind
	for _, c := range conds {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}
