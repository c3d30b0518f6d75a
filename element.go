package dicom

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
)

// Element 是一个已解码的DICOM data element。
// 由ReadRegion创建, 创建后不会再被修改
type Element struct {
	// Tag is a pair of <group, element>. See dicomtag/tags.go for named values.
	Tag dicomtag.Tag

	// VR 是解码时使用的具体VR, 不会是 "US or SS" 这种选择。
	// explicit时来自文件, implicit时来自字典
	VR string

	// DictionaryVR 是字典中记录的VR, 可能是 "US or SS"。
	// 私有tag为 dicomtag.UnknownPrivate, 字典中没有的tag为空
	DictionaryVR string

	// Length 是从文件中读出的value length, 等于 len(RawValue)
	Length uint32

	// Offset 是这个record的tag在整个buffer中的位置
	Offset int

	// RawValue 是源buffer的子切片, 不要修改它
	RawValue []byte

	// Value 是转换后的值, 其类型由VR决定 (见 ConvertValue)。
	// 一个值时是标量, 多个值时是slice
	Value interface{}

	// 以下字段来自字典, 私有tag为 dicomtag.UnknownPrivate,
	// 字典中没有的tag为 dicomtag.Unknown
	Name    string
	Keyword string
	VM      string
	Retired bool

	// Status 说明字典信息的来源
	Status dicomtag.Status
}

// NewElement 用传入的tag和value来创建一个新的Element, 主要用作Query的过滤条件。
// value 必须符合 tag 的 VR (见 ConvertValue), nil 表示空值
func NewElement(tag dicomtag.Tag, value interface{}) (*Element, error) {
	ti, err := dicomtag.Find(tag)
	if err != nil {
		return nil, err
	}
	vr := dicomtag.ResolveAmbiguousVR(ti.VR, false)
	e := &Element{
		Tag:          tag,
		VR:           vr,
		DictionaryVR: ti.VR,
		Value:        value,
		Name:         ti.Name,
		Keyword:      ti.Keyword,
		VM:           ti.VM,
		Retired:      ti.Retired,
		Status:       dicomtag.StatusKnown,
	}
	if value == nil {
		return e, nil
	}

	var ok bool
	vrKind := dicomtag.GetVRKind(vr)
	switch vrKind {
	case dicomtag.VRStringList, dicomtag.VRString, dicomtag.VRPersonName:
		switch value.(type) {
		case string, []string:
			ok = true
		}
	case dicomtag.VRDate:
		switch value.(type) {
		case string, time.Time, []*time.Time:
			ok = true
		}
	case dicomtag.VRTime:
		switch value.(type) {
		case string, *Time, []*Time:
			ok = true
		}
	case dicomtag.VRBytes:
		_, ok = value.([]byte)
	case dicomtag.VRTagList:
		switch value.(type) {
		case dicomtag.Tag, []dicomtag.Tag:
			ok = true
		}
	case dicomtag.VRNumberList, dicomtag.VRDecimalList:
		_, ok = toFloat64(value)
		if !ok {
			_, err := e.GetFloat64s()
			ok = err == nil
		}
	}
	if !ok {
		return nil, fmt.Errorf("%v: wrong payload type for NewElement: VR %s, found %T",
			dicomtag.DebugString(tag), vr, value)
	}
	return e, nil
}

// MustNewElement is similar to NewElement, but it crashes the process on any error
func MustNewElement(tag dicomtag.Tag, value interface{}) *Element {
	elem, err := NewElement(tag, value)
	if err != nil {
		panic(fmt.Sprintf("Failed to create element with tag %v: %v", tag, err))
	}
	return elem
}

// IsPrivate reports whether the element has an odd group.
func (e *Element) IsPrivate() bool { return e.Status == dicomtag.StatusPrivate }

// GetUInt32 gets a uint32 value from an element.  It returns an error if the
// element contains zero or >1 values, or the value is not a uint32.
func (e *Element) GetUInt32() (uint32, error) {
	v, ok := e.Value.(uint32)
	if !ok {
		return 0, fmt.Errorf("uint32 value not found in %v", e)
	}
	return v, nil
}

// MustGetUInt32 is similar to GetUInt32, but panics on error.
func (e *Element) MustGetUInt32() uint32 {
	v, err := e.GetUInt32()
	if err != nil {
		panic(err)
	}
	return v
}

// GetUInt16 gets a uint16 value from an element.  It returns an error if the
// element contains zero or >1 values, or the value is not a uint16.
func (e *Element) GetUInt16() (uint16, error) {
	v, ok := e.Value.(uint16)
	if !ok {
		return 0, fmt.Errorf("uint16 value not found in %v", e)
	}
	return v, nil
}

// MustGetUInt16 is similar to GetUInt16, but panics on error.
func (e *Element) MustGetUInt16() uint16 {
	v, err := e.GetUInt16()
	if err != nil {
		panic(err)
	}
	return v
}

// GetString gets a string value from an element.  It returns an error if the
// element contains >1 values, or the value is not a string.
func (e *Element) GetString() (string, error) {
	v, ok := e.Value.(string)
	if !ok {
		return "", fmt.Errorf("string value not found in %v", e)
	}
	return v, nil
}

// MustGetString is similar to GetString(), but panics on error.
func (e *Element) MustGetString() string {
	v, err := e.GetString()
	if err != nil {
		panic(err)
	}
	return v
}

// GetStrings 返回 存在element中的string数组，单个值也返回一个数组
// 如果 e 的值不是string将返回错误
func (e *Element) GetStrings() ([]string, error) {
	switch v := e.Value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	}
	return nil, fmt.Errorf("string value not found in %v", e)
}

// GetUint16s returns the list of uint16 values stored in the elment. Returns an
// error if the VR of e.Tag is not a uint16.
func (e *Element) GetUint16s() ([]uint16, error) {
	switch v := e.Value.(type) {
	case uint16:
		return []uint16{v}, nil
	case []uint16:
		return v, nil
	}
	return nil, fmt.Errorf("uint16 value not found in %v", e)
}

// GetUint32s returns the list of uint32 values stored in the elment. Returns an
// error if the VR of e.Tag is not a uint32.
func (e *Element) GetUint32s() ([]uint32, error) {
	switch v := e.Value.(type) {
	case uint32:
		return []uint32{v}, nil
	case []uint32:
		return v, nil
	}
	return nil, fmt.Errorf("uint32 value not found in %v", e)
}

// GetFloat64s returns every numeric value of the element as float64. It
// accepts all binary numeric VRs and IS/DS.
func (e *Element) GetFloat64s() ([]float64, error) {
	if f, ok := toFloat64(e.Value); ok {
		return []float64{f}, nil
	}
	var out []float64
	switch v := e.Value.(type) {
	case []float64:
		return v, nil
	case []float32:
		for _, x := range v {
			out = append(out, float64(x))
		}
	case []uint16:
		for _, x := range v {
			out = append(out, float64(x))
		}
	case []int16:
		for _, x := range v {
			out = append(out, float64(x))
		}
	case []uint32:
		for _, x := range v {
			out = append(out, float64(x))
		}
	case []int32:
		for _, x := range v {
			out = append(out, float64(x))
		}
	case []uint64:
		for _, x := range v {
			out = append(out, float64(x))
		}
	case []int64:
		for _, x := range v {
			out = append(out, float64(x))
		}
	default:
		return nil, fmt.Errorf("numeric value not found in %v", e)
	}
	return out, nil
}

// GetFloat64 returns the first numeric value of the element. NaN values
// (malformed IS/DS) are returned as an error.
func (e *Element) GetFloat64() (float64, error) {
	vs, err := e.GetFloat64s()
	if err != nil {
		return 0, err
	}
	if len(vs) == 0 {
		return 0, fmt.Errorf("no value in %v", e)
	}
	if math.IsNaN(vs[0]) {
		return 0, fmt.Errorf("malformed number in %v", e)
	}
	return vs[0], nil
}

// GetInt is GetFloat64 truncated to an int.
func (e *Element) GetInt() (int, error) {
	v, err := e.GetFloat64()
	return int(v), err
}

// GetDate returns the DA value of a single-valued element.
func (e *Element) GetDate() (time.Time, error) {
	v, ok := e.Value.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("date value not found in %v", e)
	}
	return v, nil
}

// GetTime returns the TM value of a single-valued element.
func (e *Element) GetTime() (Time, error) {
	v, ok := e.Value.(*Time)
	if !ok || v == nil {
		return Time{}, fmt.Errorf("time value not found in %v", e)
	}
	return *v, nil
}

func toFloat64(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case uint16:
		return float64(x), true
	case int16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func valueString(v interface{}) string {
	switch x := v.(type) {
	case []byte:
		if len(x) > 16 {
			return fmt.Sprintf("<%d bytes> %s...", len(x), dicomio.ToHex(x[:16]))
		}
		return dicomio.ToHex(x)
	case time.Time:
		return x.Format("2006-01-02")
	case []*time.Time:
		parts := make([]string, len(x))
		for i, t := range x {
			if t != nil {
				parts[i] = t.Format("2006-01-02")
			}
		}
		return fmt.Sprintf("(%d)%v", len(x), parts)
	case []*Time:
		parts := make([]string, len(x))
		for i, t := range x {
			if t != nil {
				parts[i] = t.String()
			}
		}
		return fmt.Sprintf("(%d)%v", len(x), parts)
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%v", v)
}

// Stringer, 格式如 "(0010,0020)[PatientID] LO [7DkT2Tp]"
func (e *Element) String() string {
	sv := valueString(e.Value)
	if len(sv) > 1024 {
		sv = sv[:1024] + "(...)"
	}
	keyword := e.Keyword
	if keyword == "" {
		keyword = "??"
	}
	return fmt.Sprintf("%v[%s] %s [%s]", e.Tag, strings.TrimSpace(keyword), e.VR, sv)
}
