package dicom

import (
	"fmt"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/odincare/dcmview/dicomtag"
)

// Query 检查dataset是否符合QR condition "f"。
// 如果是，就返回<true, 匹配的element, nil>
// 如果 "f" 要求一个通用匹配(universal match) i.e. 空查询 empty query value，函数返回<true, nil, nil>
// 如果”f“有误(malformed)，函数返回<false, nil, err reason>
func Query(ds *DataSet, f *Element) (match bool, matchedElement *Element, err error) {
	if values, ok := f.Value.([]string); ok && len(values) > 1 && f.VR != dicomtag.UI {
		// 过滤器不能包含多个值 P3.4 C2.2.2.1, UID列表除外
		return false, nil, fmt.Errorf("multiple values found in filter '%v'", f)
	}

	if f.Tag == dicomtag.QueryRetrieveLevel || f.Tag == dicomtag.SpecificCharacterSet {
		return true, nil, nil
	}

	elem, err := ds.FindElementByTag(f.Tag)
	if err != nil {
		elem = nil
	}

	match, err = queryElement(elem, f)
	if match {
		return true, elem, nil
	}
	return false, nil, err
}

func queryElement(elem *Element, f *Element) (match bool, err error) {
	if isEmptyQuery(f) {
		// 通用匹配 一个空格代表通配符
		return true, nil
	}

	if elem == nil {
		return false, nil
	}

	if f.VR != elem.VR {
		return false, fmt.Errorf("VR mismatch: filter %v, value %v", f, elem)
	}

	switch f.VR {
	case dicomtag.UI:
		// 判断element是否至少包含filter中的一个uid
		expected, err := f.GetStrings()
		if err != nil {
			return false, err
		}
		values, err := elem.GetStrings()
		if err != nil {
			return false, err
		}
		for _, e := range expected {
			for _, v := range values {
				if v == e {
					return true, nil
				}
			}
		}
		return false, nil
	case dicomtag.DA:
		return matchDate(f, elem)
	}

	switch v := f.Value.(type) {
	case string:
		values, err := elem.GetStrings()
		if err != nil {
			return false, err
		}
		g, err := glob.Compile(v)
		if err != nil {
			return false, err
		}
		for _, value := range values {
			if g.Match(value) {
				return true, nil
			}
		}
		return false, nil
	default:
		want, ok := toFloat64(v)
		if !ok {
			return false, fmt.Errorf("unknown data: %v", f)
		}
		values, err := elem.GetFloat64s()
		if err != nil {
			return false, err
		}
		for _, value := range values {
			if value == want {
				return true, nil
			}
		}
		return false, nil
	}
}

// matchDate 支持单个日期与范围 "A-B", "A-", "-B" P3.4 C.2.2.2.5
func matchDate(f *Element, elem *Element) (bool, error) {
	var lo, hi *time.Time
	switch v := f.Value.(type) {
	case time.Time:
		lo, hi = &v, &v
	case string:
		from, to, isRange := strings.Cut(v, "-")
		var ok bool
		if lo, ok = parseDate(from); !ok {
			return false, fmt.Errorf("malformed date in filter %q", v)
		}
		hi = lo
		if isRange {
			if hi, ok = parseDate(to); !ok {
				return false, fmt.Errorf("malformed date in filter %q", v)
			}
		}
	default:
		return false, fmt.Errorf("unknown data: %v", f)
	}

	var dates []*time.Time
	switch v := elem.Value.(type) {
	case time.Time:
		dates = []*time.Time{&v}
	case []*time.Time:
		dates = v
	}
	for _, d := range dates {
		if d == nil {
			continue
		}
		if (lo == nil || !d.Before(*lo)) && (hi == nil || !d.After(*hi)) {
			return true, nil
		}
	}
	return false, nil
}

func isEmptyQuery(f *Element) bool {
	// 检查匹配格式是否是一串 “*”
	// "*" 与 空查询一样是通用匹配符 P3.4 C2.2.2.4
	isUniversalGlob := func(s string) bool {
		for i := 0; i < len(s); i++ {
			if s[i] != '*' {
				return false
			}
		}
		return true
	}

	switch v := f.Value.(type) {
	case nil:
		return true
	case []byte:
		return len(v) == 0
	case string:
		return isUniversalGlob(v)
	case []string:
		return len(v) == 0
	}
	return false
}
