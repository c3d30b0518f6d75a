package dicom

import (
	"errors"
	"fmt"

	"github.com/odincare/dcmview/dicomlog"
	"github.com/odincare/dcmview/dicomtag"
	"github.com/sirupsen/logrus"
)

// ConditionKind 是解码过程中可能出现的问题的种类
type ConditionKind int

const (
	// MissingHeader: 偏移128处不是"DICM"
	MissingHeader ConditionKind = iota + 1
	// TruncatedRecord: a record header or its value runs past the end of the
	// buffer. Ends the region.
	TruncatedRecord
	// UnsupportedLength: 长度为 0xFFFFFFFF (sequence / encapsulated pixel
	// data). Ends the region.
	UnsupportedLength
	// UnsupportedSequence: a defined-length SQ; kept as raw bytes.
	UnsupportedSequence
	// UnsupportedTransferSyntax: deflated dataset; the main region is not read.
	UnsupportedTransferSyntax
	// UnknownValueRepresentation: no converter for the VR; raw bytes kept.
	UnknownValueRepresentation
	// UnresolvedDictionaryEntry: public tag missing from the dictionary.
	UnresolvedDictionaryEntry
	// MalformedScalar: DA/TM/IS/DS text of the wrong shape.
	MalformedScalar
	// LengthMismatch: binary value length is not a multiple of the value width.
	LengthMismatch
)

// 与每种ConditionKind对应的error, 可配合 errors.Is 使用
var (
	ErrMissingHeader              = errors.New("dicom: keyword 'DICM' not found in the header")
	ErrTruncatedRecord            = errors.New("dicom: truncated record")
	ErrUnsupportedLength          = errors.New("dicom: undefined length is not supported")
	ErrUnsupportedSequence        = errors.New("dicom: sequences are not decoded")
	ErrUnsupportedTransferSyntax  = errors.New("dicom: unsupported transfer syntax")
	ErrUnknownValueRepresentation = errors.New("dicom: unknown value representation")
	ErrUnresolvedDictionaryEntry  = errors.New("dicom: tag not in dictionary")
	ErrMalformedScalar            = errors.New("dicom: malformed value")
	ErrLengthMismatch             = errors.New("dicom: value length is not a multiple of the value size")
)

var conditionSentinels = map[ConditionKind]error{
	MissingHeader:              ErrMissingHeader,
	TruncatedRecord:            ErrTruncatedRecord,
	UnsupportedLength:          ErrUnsupportedLength,
	UnsupportedSequence:        ErrUnsupportedSequence,
	UnsupportedTransferSyntax:  ErrUnsupportedTransferSyntax,
	UnknownValueRepresentation: ErrUnknownValueRepresentation,
	UnresolvedDictionaryEntry:  ErrUnresolvedDictionaryEntry,
	MalformedScalar:            ErrMalformedScalar,
	LengthMismatch:             ErrLengthMismatch,
}

func (k ConditionKind) String() string {
	switch k {
	case MissingHeader:
		return "MissingHeader"
	case TruncatedRecord:
		return "TruncatedRecord"
	case UnsupportedLength:
		return "UnsupportedLength"
	case UnsupportedSequence:
		return "UnsupportedSequence"
	case UnsupportedTransferSyntax:
		return "UnsupportedTransferSyntax"
	case UnknownValueRepresentation:
		return "UnknownValueRepresentation"
	case UnresolvedDictionaryEntry:
		return "UnresolvedDictionaryEntry"
	case MalformedScalar:
		return "MalformedScalar"
	case LengthMismatch:
		return "LengthMismatch"
	}
	return fmt.Sprintf("ConditionKind(%d)", int(k))
}

// EndsRegion reports whether a condition of this kind stops the region scan
// in which it was found.
func (k ConditionKind) EndsRegion() bool {
	switch k {
	case MissingHeader, TruncatedRecord, UnsupportedLength, UnsupportedTransferSyntax:
		return true
	}
	return false
}

// Condition 记录了一次解码中出现的问题。
// 它实现了error接口, errors.Is(c, ErrTruncatedRecord) 等可以用来判断种类
type Condition struct {
	Kind ConditionKind
	// Tag 是出问题的element, 与element无关时为零值
	Tag dicomtag.Tag
	// Offset 是record在整个buffer中的起始位置
	Offset int
	Detail string
}

func (c Condition) Error() string {
	s := fmt.Sprintf("%v %s at offset %d", c.Kind, dicomtag.DebugString(c.Tag), c.Offset)
	if c.Detail != "" {
		s += ": " + c.Detail
	}
	return s
}

func (c Condition) Unwrap() error {
	return conditionSentinels[c.Kind]
}

// log 将region结束类的问题作为警告输出, 其他的只在verbose时输出
func (c Condition) log() {
	if c.Kind.EndsRegion() {
		dicomlog.Warnf(logrus.Fields{
			"kind":   c.Kind.String(),
			"tag":    c.Tag.String(),
			"offset": c.Offset,
		}, "dicom: %s", c.Detail)
		return
	}
	dicomlog.Vprintf(1, "dicom: %v", c)
}

func newCondition(kind ConditionKind, tag dicomtag.Tag, offset int, format string, args ...interface{}) Condition {
	return Condition{Kind: kind, Tag: tag, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// conditionList 收集一次解码中的问题, 每个加入的问题都会被输出到日志
type conditionList []Condition

func (l *conditionList) add(c Condition) {
	c.log()
	*l = append(*l, c)
}
