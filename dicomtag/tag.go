package dicomtag

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag 是一个定义了dicom文件中element 的类型的 <group, element> 元组
// 列表中的标准tags定义在dictdata.go, 也可以参考：
// ftp://medical.nema.org/medical/dicom/2011/11_06pu.pdf
type Tag struct {
	// Group 和 Element 是读取16进制对的结果 如 (0008,0005)
	Group   uint16
	Element uint16
}

// Compare 返回 -1/0/1 如果t<other | t==other | t>other，
// tag先由group排序，再由element排序
func (t Tag) Compare(other Tag) int {
	if t.Group < other.Group {
		return -1
	}

	if t.Group > other.Group {
		return 1
	}

	if t.Element < other.Element {
		return -1
	}

	if t.Element > other.Element {
		return 1
	}

	return 0
}

// IsPrivate reports whether the group number is odd.
func IsPrivate(group uint16) bool {
	return group%2 == 1
}

// IsPrivate reports whether t is a private tag.
func (t Tag) IsPrivate() bool { return IsPrivate(t.Group) }

// IsGroupLength reports whether t is the group length pseudo-tag (gggg,0000).
func (t Tag) IsGroupLength() bool { return t.Element == 0x0000 }

// String 返回一个如"(0008,1234)"格式的string
// 0x0008 是 t.Group 0x1234是t.Element
func (t Tag) String() string {
	return fmt.Sprintf("(%04x,%04x)", t.Group, t.Element)
}

// HexGroup returns the zero-padded, lower-case hex form of the group, e.g. "0008".
func (t Tag) HexGroup() string { return fmt.Sprintf("%04x", t.Group) }

// HexElement returns the zero-padded, lower-case hex form of the element.
func (t Tag) HexElement() string { return fmt.Sprintf("%04x", t.Element) }

// Key returns the canonical dictionary key: HexGroup + HexElement, e.g.
// "00080005".
func (t Tag) Key() string { return t.HexGroup() + t.HexElement() }

// Tuple returns {HexGroup, HexElement}.
func (t Tag) Tuple() [2]string { return [2]string{t.HexGroup(), t.HexElement()} }

// ParseKey parses an 8 hex digit key such as "00080005" or "7FE00010".
func ParseKey(key string) (Tag, error) {
	if len(key) != 8 {
		return Tag{}, fmt.Errorf("dicomtag.ParseKey: %q is not 8 hex digits", key)
	}
	return ParseTag(key[:4] + "," + key[4:])
}

// ParseTag 将tag分成 group和element 由16进制数表示
// 接受 "(0008,0005)" 与 "0008,0005"
func ParseTag(tag string) (Tag, error) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(tag), "()"), ",")
	if len(parts) != 2 {
		return Tag{}, fmt.Errorf("dicomtag.ParseTag: malformed tag %q", tag)
	}
	group, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 16, 16)
	if err != nil {
		return Tag{}, err
	}
	elem, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 16, 16)
	if err != nil {
		return Tag{}, err
	}
	return Tag{Group: uint16(group), Element: uint16(elem)}, nil
}
