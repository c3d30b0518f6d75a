package dicom

import (
	"encoding/binary"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomlog"
	"github.com/odincare/dcmview/dicomtag"
)

// StopCondition 决定一个region在哪个group处结束
type StopCondition int

const (
	// StopNever reads to the end of the buffer.
	StopNever StopCondition = iota
	// StopOutsideCommandGroup halts at the first tag whose group is not 0x0000.
	StopOutsideCommandGroup
	// StopOutsideMetaGroup halts at the first tag whose group is not 0x0002.
	StopOutsideMetaGroup
)

func (s StopCondition) String() string {
	switch s {
	case StopNever:
		return "never"
	case StopOutsideCommandGroup:
		return "outside-command-group"
	case StopOutsideMetaGroup:
		return "outside-meta-group"
	}
	return "StopCondition(?)"
}

// halts 在读取value之前调用。vr在implicit时为空
func (s StopCondition) halts(group uint16, vr string, length uint32) bool {
	switch s {
	case StopOutsideCommandGroup:
		return group != dicomtag.CommandGroup
	case StopOutsideMetaGroup:
		return group != dicomtag.MetadataGroup
	}
	return false
}

// Region 描述如何读取buffer中的一段
type Region struct {
	ByteOrder binary.ByteOrder
	Implicit  dicomio.IsImplicitVR
	Stop      StopCondition
}

// ReadOptions定义DataSets和Element的读取格式, 只作用于主dataset
type ReadOptions struct {
	// DropPixelData 会在PixelData之前停止读取
	DropPixelData bool

	// ReturnTags 是tag白名单, 为nil时保留所有tag
	ReturnTags []dicomtag.Tag

	// StopAtTag 在遇到第一个 >= StopAtTag 的tag时停止读取
	StopAtTag *dicomtag.Tag
}

// ReadRegion 从offset开始读取一系列 tag-length-value record。
//
// 返回读到的elements, 最后一个被读取的record之后的位置, 以及读取时的问题。
// 遇到停止条件时, 返回的位置是那个record的开头。
// 长度为 0xFFFFFFFF 或者超出buffer的record会结束这个region。
func ReadRegion(data []byte, offset int, region Region, options ReadOptions) (*DataSet, int, []Condition) {
	d := dicomio.NewBytesDecoder(data, offset, region.ByteOrder, region.Implicit)
	ds := newDataSet()
	var conds conditionList
	signed := false

	for {
		start := d.Pos()
		if d.Remaining() < 8 {
			if d.Remaining() > 0 {
				conds.add(newCondition(TruncatedRecord, dicomtag.Tag{}, start,
					"%d trailing bytes cannot hold a tag header", d.Remaining()))
			}
			return ds, start, conds
		}

		tag := readTag(d)

		// explicit region中没有VR的record按implicit读取, 只影响这一个record
		fallback := region.Implicit == dicomio.ExplicitVR && !hasExplicitVR(d)
		if fallback {
			d.PushTransferSyntax(region.ByteOrder, dicomio.ImplicitVR)
		}
		wireVR, vl := readHeader(d)
		if fallback {
			d.PopTransferSyntax()
		}
		if d.Error() != nil {
			conds.add(newCondition(TruncatedRecord, tag, start, "%v", d.Error()))
			return ds, start, conds
		}

		if region.Stop.halts(tag.Group, wireVR, vl) {
			return ds, start, conds
		}
		if options.DropPixelData && tag == dicomtag.PixelData {
			return ds, start, conds
		}
		// 如果有StopAtTag且tag不比StopAtTag小
		if options.StopAtTag != nil && tag.Compare(*options.StopAtTag) >= 0 {
			return ds, start, conds
		}

		if vl == dicomio.UndefinedLength {
			conds.add(newCondition(UnsupportedLength, tag, start,
				"undefined length (sequence or encapsulated pixel data), VR %q", wireVR))
			return ds, start, conds
		}
		if vl == 0 {
			continue
		}
		if uint64(vl) > uint64(d.Remaining()) {
			conds.add(newCondition(TruncatedRecord, tag, start,
				"value length %d exceeds the %d bytes left", vl, d.Remaining()))
			return ds, start, conds
		}

		raw := d.ReadBytes(int(vl))
		elem := newElement(tag, wireVR, start, raw, signed)
		if elem.Status == dicomtag.StatusUnknown {
			conds.add(newCondition(UnresolvedDictionaryEntry, tag, start, "not in dictionary"))
		}
		if elem.VR == dicomtag.SQ {
			conds.add(newCondition(UnsupportedSequence, tag, start, "sequence of %d bytes kept undecoded", vl))
		}

		value, problems := convertValue(elem.VR, raw, region.ByteOrder, d.CodingSystem())
		for _, c := range problems {
			c.Tag, c.Offset = tag, start
			conds.add(c)
		}
		elem.Value = value

		switch tag {
		case dicomtag.PixelRepresentation:
			if v, err := elem.GetUInt16(); err == nil && v == 1 {
				signed = true
			}
		case dicomtag.SpecificCharacterSet:
			// 将剩余region设为[]byte -> string decoder
			setCodingSystem(d, elem)
		}

		if options.ReturnTags == nil || tagInList(tag, options.ReturnTags) {
			ds.add(elem)
		}
	}
}

func setCodingSystem(d *dicomio.Decoder, elem *Element) {
	encodingNames, err := elem.GetStrings()
	if err != nil {
		dicomlog.Vprintf(1, "dicom.ReadRegion: %v", err)
		return
	}
	cs, err := dicomio.ParseSpecificCharacterSet(encodingNames)
	if err != nil {
		// 未知的字符集, 保持原来的编码
		dicomlog.Vprintf(0, "dicom.ReadRegion: %v", err)
		return
	}
	d.SetCodingSystem(cs)
}

func readTag(d *dicomio.Decoder) dicomtag.Tag {
	group := d.ReadUInt16()
	element := d.ReadUInt16()
	return dicomtag.Tag{Group: group, Element: element}
}

// hasExplicitVR 检查游标处的两个byte是不是大写字母,
// 不是的话这个record其实是implicit编码的
func hasExplicitVR(d *dicomio.Decoder) bool {
	vr := d.Peek(2)
	return len(vr) == 2 && dicomio.IsUpperASCII(vr[0]) && dicomio.IsUpperASCII(vr[1])
}

// readHeader 按decoder当前的布局读取VR与VL。
// implicit时VL是32比特无符号数字, VR为空, 需要从字典中读取
func readHeader(d *dicomio.Decoder) (string, uint32) {
	if _, implicit := d.TransferSyntax(); implicit == dicomio.ImplicitVR {
		return "", d.ReadUInt32()
	}
	return readExplicit(d)
}

// VR由下两个连续的bytes代表
// VL根据VR的值
// PS3.5 7.1.2
func readExplicit(d *dicomio.Decoder) (string, uint32) {
	vr := string(d.ReadBytes(2))
	if dicomtag.IsExtraLengthVR(vr) {
		d.Skip(2) // 忽略两个bytes，给未来用(0000H)
		return vr, d.ReadUInt32()
	}
	return vr, uint32(d.ReadUInt16())
}

func tagInList(tag dicomtag.Tag, tags []dicomtag.Tag) bool {
	for _, t := range tags {
		if tag == t {
			return true
		}
	}
	return false
}
