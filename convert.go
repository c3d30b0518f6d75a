package dicom

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
)

// converter 将一个element的原始bytes转换为go的值。
// 返回的Condition还没有Tag与Offset, 由reader补全
type converter func(raw []byte, bo binary.ByteOrder, cs dicomio.CodingSystem) (interface{}, []Condition)

// converters 是VR到converter的表, 不在表中的VR保留原始bytes
var converters = map[string]converter{
	dicomtag.US: func(raw []byte, bo binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
		return numbers(raw, 2, bo.Uint16)
	},
	dicomtag.SS: func(raw []byte, bo binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
		return numbers(raw, 2, func(b []byte) int16 { return int16(bo.Uint16(b)) })
	},
	dicomtag.UL: func(raw []byte, bo binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
		return numbers(raw, 4, bo.Uint32)
	},
	dicomtag.SL: func(raw []byte, bo binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
		return numbers(raw, 4, func(b []byte) int32 { return int32(bo.Uint32(b)) })
	},
	dicomtag.UV: func(raw []byte, bo binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
		return numbers(raw, 8, bo.Uint64)
	},
	dicomtag.SV: func(raw []byte, bo binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
		return numbers(raw, 8, func(b []byte) int64 { return int64(bo.Uint64(b)) })
	},
	dicomtag.FL: func(raw []byte, bo binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
		return numbers(raw, 4, func(b []byte) float32 { return math.Float32frombits(bo.Uint32(b)) })
	},
	dicomtag.FD: func(raw []byte, bo binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
		return numbers(raw, 8, func(b []byte) float64 { return math.Float64frombits(bo.Uint64(b)) })
	},
	dicomtag.AT: func(raw []byte, bo binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
		// (2byte group, 2byte elem)
		return numbers(raw, 4, func(b []byte) dicomtag.Tag {
			return dicomtag.Tag{Group: bo.Uint16(b), Element: bo.Uint16(b[2:])}
		})
	},

	dicomtag.AE: asciiList,
	dicomtag.CS: asciiList,
	dicomtag.UI: asciiList,
	dicomtag.DT: asciiList,
	dicomtag.SH: textList,
	dicomtag.LO: textList,
	dicomtag.UC: textList,
	dicomtag.ST: text,
	dicomtag.LT: text,
	dicomtag.PN: personName,
	dicomtag.AS: ageString,
	dicomtag.IS: decimals,
	dicomtag.DS: decimals,
	dicomtag.DA: dates,
	dicomtag.TM: times,

	dicomtag.OB: opaque,
	dicomtag.OD: opaque,
	dicomtag.OF: opaque,
	dicomtag.OL: opaque,
	dicomtag.OV: opaque,
	dicomtag.OW: opaque,
	dicomtag.UN: opaque,
	dicomtag.UR: opaque,
	dicomtag.UT: opaque,
	dicomtag.SQ: opaque,
}

// ConvertValue decodes raw as a value of the given VR, with the default
// character repertoire.
//
// The result is a scalar when one value is present and a slice otherwise:
// uint16/int16/uint32/int32/uint64/int64/float32/float64 for the binary
// numeric VRs, dicomtag.Tag for AT, string or []string for text VRs, float64
// or []float64 for IS and DS, time.Time (nil if malformed) or []*time.Time
// for DA, *Time (nil if malformed) or []*Time for TM, and the raw bytes for
// opaque VRs, disjunctive codes such as "OB or OW", and unknown codes.
func ConvertValue(vr string, raw []byte, bo binary.ByteOrder) (interface{}, []Condition) {
	return convertValue(vr, raw, bo, dicomio.CodingSystem{})
}

func convertValue(vr string, raw []byte, bo binary.ByteOrder, cs dicomio.CodingSystem) (interface{}, []Condition) {
	if dicomtag.IsDisjunctive(vr) {
		return raw, nil
	}
	conv, ok := converters[vr]
	if !ok {
		return raw, []Condition{newCondition(UnknownValueRepresentation, dicomtag.Tag{}, 0, "no converter for VR %q, keeping %d raw bytes", vr, len(raw))}
	}
	return conv(raw, bo, cs)
}

func numbers[T any](raw []byte, width int, read func([]byte) T) (interface{}, []Condition) {
	var conds []Condition
	if len(raw)%width != 0 {
		conds = append(conds, newCondition(LengthMismatch, dicomtag.Tag{}, 0, "%d bytes is not a multiple of %d, trailing bytes dropped", len(raw), width))
	}
	values := make([]T, len(raw)/width)
	for i := range values {
		values[i] = read(raw[i*width:])
	}
	if len(values) == 1 {
		return values[0], conds
	}
	return values, conds
}

func opaque(raw []byte, _ binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
	return raw, nil
}

// trimPadding 去掉结尾的空格与NUL
func trimPadding(s string) string {
	return strings.TrimRight(s, " \x00")
}

// splitMulti 以反斜杠分割, 只有一个值时返回string
func splitMulti(s string) interface{} {
	parts := strings.Split(s, `\`)
	if len(parts) == 1 {
		return parts[0]
	}
	return parts
}

func asciiList(raw []byte, _ binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
	return splitMulti(trimPadding(string(raw))), nil
}

func textList(raw []byte, _ binary.ByteOrder, cs dicomio.CodingSystem) (interface{}, []Condition) {
	return splitMulti(trimPadding(dicomio.DecodeString(cs.Ideographic, raw))), nil
}

func text(raw []byte, _ binary.ByteOrder, cs dicomio.CodingSystem) (interface{}, []Condition) {
	return trimPadding(dicomio.DecodeString(cs.Ideographic, raw)), nil
}

// personName 以'='分成 alphabetic/ideographic/phonetic 三组, 每组用各自的编码解码
func personName(raw []byte, _ binary.ByteOrder, cs dicomio.CodingSystem) (interface{}, []Condition) {
	groups := bytes.SplitN(raw, []byte("="), 3)
	decoded := make([]string, len(groups))
	for i, g := range groups {
		decoded[i] = dicomio.DecodeString(cs.Decoder(dicomio.CodingSystemType(i)), g)
	}
	return splitMulti(trimPadding(strings.Join(decoded, "="))), nil
}

func ageString(raw []byte, _ binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
	parts := strings.Split(strings.TrimSpace(trimPadding(string(raw))), `\`)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return parts, nil
}

func decimals(raw []byte, _ binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
	var conds []Condition
	parts := strings.Split(trimPadding(string(raw)), `\`)
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			conds = append(conds, newCondition(MalformedScalar, dicomtag.Tag{}, 0, "not a number: %q", p))
			v = math.NaN()
		}
		values[i] = v
	}
	if len(values) == 1 {
		return values[0], conds
	}
	return values, conds
}

func dates(raw []byte, _ binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
	var conds []Condition
	parts := strings.Split(trimPadding(string(raw)), `\`)
	values := make([]*time.Time, len(parts))
	for i, p := range parts {
		d, ok := parseDate(p)
		if !ok {
			conds = append(conds, newCondition(MalformedScalar, dicomtag.Tag{}, 0, "not a date: %q", p))
		}
		values[i] = d
	}
	if len(values) == 1 {
		if values[0] == nil {
			return nil, conds
		}
		return *values[0], conds
	}
	return values, conds
}

// parseDate 接受 YYYYMMDD 与旧式的 YYYY.MM.DD。
// 空值返回 (nil, true)
func parseDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	var layout string
	switch {
	case s == "":
		return nil, true
	case len(s) == 8:
		layout = "20060102"
	case len(s) == 10 && s[4] == '.' && s[7] == '.':
		layout = "2006.01.02"
	default:
		return nil, false
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return nil, false
	}
	return &t, true
}

func times(raw []byte, _ binary.ByteOrder, _ dicomio.CodingSystem) (interface{}, []Condition) {
	var conds []Condition
	parts := strings.Split(trimPadding(string(raw)), `\`)
	values := make([]*Time, len(parts))
	for i, p := range parts {
		t, ok := parseTime(p)
		if !ok {
			conds = append(conds, newCondition(MalformedScalar, dicomtag.Tag{}, 0, "not a time: %q", p))
		}
		values[i] = t
	}
	if len(values) == 1 {
		if values[0] == nil {
			return nil, conds
		}
		return values[0], conds
	}
	return values, conds
}

// parseTime 解析 HHMMSS[.FFFFFF], 秒数60(闰秒)当作59。
// 空值返回 (nil, true)
func parseTime(s string) (*Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	hms, frac, hasFrac := strings.Cut(s, ".")
	if len(hms) != 6 || !isDigits(hms) {
		return nil, false
	}
	t := &Time{
		Hours:   atoi(hms[0:2]),
		Minutes: atoi(hms[2:4]),
		Seconds: atoi(hms[4:6]),
	}
	if t.Hours > 23 || t.Minutes > 59 || t.Seconds > 60 {
		return nil, false
	}
	if t.Seconds == 60 {
		t.Seconds = 59
	}
	if hasFrac {
		if len(frac) == 0 || len(frac) > 6 || !isDigits(frac) {
			return nil, false
		}
		// FFFFFF 是秒的小数部分
		t.Microseconds = atoi(frac + strings.Repeat("0", 6-len(frac)))
	}
	return t, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
