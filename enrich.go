package dicom

import (
	"github.com/odincare/dcmview/dicomtag"
)

// EnrichTag 查出tag的字典信息, 并决定解码时使用的具体VR。
//
// (gggg,0000) 总是 GroupLength, VR 固定为 UL; 奇数group是私有tag,
// 不查字典; 其他tag查字典, 查不到时字段为 "Unknown"。
// wireVR 为空 (implicit VR) 时使用字典中的VR, 字典给出选择时由
// dicomtag.ResolveAmbiguousVR 决定, signed 表示同一region中已经解码出
// PixelRepresentation == 1。没有可用VR时为 UN。
func EnrichTag(tag dicomtag.Tag, wireVR string, signed bool) (info dicomtag.TagInfo, status dicomtag.Status, vr string) {
	info, status = dicomtag.Lookup(tag)
	switch status {
	case dicomtag.StatusGroupLength:
		vr = dicomtag.UL
	case dicomtag.StatusKnown:
		vr = wireVR
		if vr == "" {
			vr = dicomtag.ResolveAmbiguousVR(info.VR, signed)
		}
	default:
		vr = wireVR
		if vr == "" {
			vr = dicomtag.UN
		}
	}
	return info, status, vr
}

// newElement builds the decoded element for one record.
func newElement(tag dicomtag.Tag, wireVR string, offset int, raw []byte, signed bool) *Element {
	info, status, vr := EnrichTag(tag, wireVR, signed)
	return &Element{
		Tag:          tag,
		VR:           vr,
		DictionaryVR: info.VR,
		Length:       uint32(len(raw)),
		Offset:       offset,
		RawValue:     raw,
		Name:         info.Name,
		Keyword:      info.Keyword,
		VM:           info.VM,
		Retired:      info.Retired,
		Status:       status,
	}
}
