package dicomtag

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"
)

// TagInfo 保存了Tag在标准DICOM标准中的detail information
type TagInfo struct {
	Tag Tag
	// Data 编码 如 "UL" "CS", 也可能是 "US or SS" 这样的选择
	VR string
	// 人类可读的Tag名称 如 "Specific Character Set"
	Name string
	// 基数(Cardinality) (element中期望的值 #), 如 "1", "1-n"
	VM string
	// Retired 表示该tag已经从标准中退休
	Retired bool
	// Keyword 如 "SpecificCharacterSet"
	Keyword string
}

// MetadataGroup 是 Tag.Group 中 metadata tags的值.
const MetadataGroup = 2

// CommandGroup is the group of the DIMSE command set.
const CommandGroup = 0

// Status tells how a TagInfo was obtained.
type Status int

const (
	// StatusKnown means the tag was found in the dictionary.
	StatusKnown Status = iota
	// StatusGroupLength means the tag is (gggg,0000).
	StatusGroupLength
	// StatusPrivate means the group is odd; the dictionary was not consulted.
	StatusPrivate
	// StatusUnknown means the tag is public but absent from the dictionary.
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusKnown:
		return "known"
	case StatusGroupLength:
		return "group-length"
	case StatusPrivate:
		return "private"
	case StatusUnknown:
		return "unknown"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

const (
	// UnknownPrivate 是私有tag的所有字段
	UnknownPrivate = "Unknown-PrivateTag"
	// Unknown marks the fields of a public tag missing from the dictionary.
	Unknown = "Unknown"
)

// GroupLengthEntry 用于所有 element 为0的tag
var GroupLengthEntry = TagInfo{VR: UL, Name: "GroupLength", VM: "1", Keyword: "GroupLength"}

// UnknownPrivateEntry 用于所有奇数group的tag
var UnknownPrivateEntry = TagInfo{VR: UnknownPrivate, Name: UnknownPrivate, VM: UnknownPrivate, Keyword: UnknownPrivate}

// UnknownEntry is used for public tags that the dictionary does not list.
// VR is left empty so the caller can fall back to the wire VR or UN.
var UnknownEntry = TagInfo{Name: Unknown, VM: Unknown, Keyword: Unknown}

var (
	tagDictOnce  sync.Once
	tagDict      map[Tag]TagInfo
	keywordIndex map[string]Tag
	nameIndex    map[string]Tag
)

func maybeInitTagDict() {
	tagDictOnce.Do(func() {
		tagDict = make(map[Tag]TagInfo)
		keywordIndex = make(map[string]Tag)
		nameIndex = make(map[string]Tag)

		reader := csv.NewReader(strings.NewReader(tagDictData))
		reader.Comma = '\t'
		reader.Comment = '#'
		reader.LazyQuotes = true
		reader.FieldsPerRecord = 6
		for {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				panic(fmt.Sprintf("dicomtag: corrupt dictionary: %v", err))
			}
			tag, err := ParseTag(row[0])
			if err != nil {
				panic(fmt.Sprintf("dicomtag: corrupt dictionary row %v: %v", row, err))
			}
			info := TagInfo{
				Tag:     tag,
				VR:      row[1],
				VM:      row[2],
				Name:    row[3],
				Retired: row[4] == "RET",
				Keyword: row[5],
			}
			tagDict[tag] = info
			keywordIndex[NormalizeName(info.Keyword)] = tag
			nameIndex[NormalizeName(info.Name)] = tag
		}
	})
}

// NormalizeName lower-cases s and drops everything that is not a letter or
// a digit, so "Patient's Name", "PatientName" and "patient_name" compare
// equal.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// 找到给与的tag中的信息
// 如果tag不是dicom standard的一部分 会返回错误
// 私有tag与group length不在字典中, 请使用 Lookup
func Find(tag Tag) (TagInfo, error) {
	maybeInitTagDict()
	entry, ok := tagDict[tag]
	if !ok {
		return TagInfo{}, fmt.Errorf("could not find tag %v in dictionary", tag)
	}
	return entry, nil
}

// MustFind与Find相似, 但报错会panic停止程序
func MustFind(tag Tag) TagInfo {
	e, err := Find(tag)
	if err != nil {
		panic(fmt.Sprintf("tag %v not found: %s", tag, err))
	}
	return e
}

// FindByKey 查找 "00080005" 形式的key
func FindByKey(key string) (TagInfo, error) {
	tag, err := ParseKey(key)
	if err != nil {
		return TagInfo{}, err
	}
	return Find(tag)
}

// FindByKeyword 例: FindByKeyword("TransferSyntaxUID")
// 比较时忽略大小写与标点
func FindByKeyword(keyword string) (TagInfo, error) {
	maybeInitTagDict()
	if tag, ok := keywordIndex[NormalizeName(keyword)]; ok {
		return tagDict[tag], nil
	}
	return TagInfo{}, fmt.Errorf("could not find tag with keyword %s", keyword)
}

// FindByName将传入的name寻找到information。
// 例: FindByName("Transfer Syntax UID")
func FindByName(name string) (TagInfo, error) {
	maybeInitTagDict()
	if tag, ok := nameIndex[NormalizeName(name)]; ok {
		return tagDict[tag], nil
	}
	return TagInfo{}, fmt.Errorf("could not find tag with name %s", name)
}

// Lookup resolves the dictionary identity of tag. Element zero always yields
// GroupLengthEntry, then an odd group yields UnknownPrivateEntry without
// consulting the dictionary, then the dictionary is searched; a miss yields
// UnknownEntry. The returned TagInfo always carries tag.
func Lookup(tag Tag) (TagInfo, Status) {
	var (
		info   TagInfo
		status Status
	)
	switch {
	case tag.IsGroupLength():
		info, status = GroupLengthEntry, StatusGroupLength
	case tag.IsPrivate():
		info, status = UnknownPrivateEntry, StatusPrivate
	default:
		e, err := Find(tag)
		if err != nil {
			info, status = UnknownEntry, StatusUnknown
		} else {
			info, status = e, StatusKnown
		}
	}
	info.Tag = tag
	return info, status
}

// DebugString 返回一个人类可读的tag的诊断字符串，格式如 "(group,element)[name]"
func DebugString(tag Tag) string {
	info, status := Lookup(tag)
	switch status {
	case StatusPrivate:
		return fmt.Sprintf("%v[private]", tag)
	case StatusUnknown:
		return fmt.Sprintf("%v[??]", tag)
	}
	return fmt.Sprintf("%v[%s]", tag, info.Keyword)
}
