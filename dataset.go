package dicom

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/odincare/dcmview/dicomtag"
)

// DataSet 是一个region解码出的elements, 以keyword为key。
// keyword重复时依次使用 "keyword-1", "keyword-2"...
// 与pydicom不同， 合并后的DataSet仍包含元数据（Tag.Group==2的)
type DataSet struct {
	elements map[string]*Element
	// 插入顺序, 只用于稳定的输出
	keys []string
}

func newDataSet() *DataSet {
	return &DataSet{elements: make(map[string]*Element)}
}

// add 插入e并返回它的key
func (ds *DataSet) add(e *Element) string {
	key := e.Keyword
	for i := 1; ; i++ {
		if _, dup := ds.elements[key]; !dup {
			break
		}
		key = fmt.Sprintf("%s-%d", e.Keyword, i)
	}
	ds.elements[key] = e
	ds.keys = append(ds.keys, key)
	return key
}

// Len returns the number of elements.
func (ds *DataSet) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.keys)
}

// Keys returns the keys in decode order.
func (ds *DataSet) Keys() []string {
	if ds == nil {
		return nil
	}
	return append([]string(nil), ds.keys...)
}

// Get returns the element stored under key, e.g. "PatientName" or
// "Unknown-PrivateTag-2".
func (ds *DataSet) Get(key string) (*Element, bool) {
	if ds == nil {
		return nil, false
	}
	e, ok := ds.elements[key]
	return e, ok
}

// Elements 返回key到element的map的拷贝
func (ds *DataSet) Elements() map[string]*Element {
	out := make(map[string]*Element, ds.Len())
	if ds == nil {
		return out
	}
	for k, v := range ds.elements {
		out[k] = v
	}
	return out
}

// SortedElements returns the elements ordered by tag, then by position in the
// buffer.
func (ds *DataSet) SortedElements() []*Element {
	if ds == nil {
		return nil
	}
	out := make([]*Element, 0, len(ds.keys))
	for _, k := range ds.keys {
		out = append(out, ds.elements[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Tag.Compare(out[j].Tag); c != 0 {
			return c < 0
		}
		return out[i].Offset < out[j].Offset
	})
	return out
}

// FindElementByTag finds an element from the dataset given its tag, such as
// Tag{0x0010, 0x0010}.
func (ds *DataSet) FindElementByTag(tag dicomtag.Tag) (*Element, error) {
	for _, elem := range ds.SortedElements() {
		if elem.Tag == tag {
			return elem, nil
		}
	}
	return nil, fmt.Errorf("%s: element not found", dicomtag.DebugString(tag))
}

// FindElementByHex 以16进制的group与element查找, 如 ("0010", "0010")
func (ds *DataSet) FindElementByHex(group, element string) (*Element, error) {
	tag, err := dicomtag.ParseTag(group + "," + element)
	if err != nil {
		return nil, err
	}
	return ds.FindElementByTag(tag)
}

// FindElementByName 寻找指定name的element, 如 "Patient's Name"。
// 比较时忽略大小写与标点
func (ds *DataSet) FindElementByName(name string) (*Element, error) {
	want := dicomtag.NormalizeName(name)
	for _, elem := range ds.SortedElements() {
		if dicomtag.NormalizeName(elem.Name) == want {
			return elem, nil
		}
	}
	return nil, fmt.Errorf("could not find element named '%s' in dicom file", name)
}

// FindElementByKeyword 寻找指定keyword的element, 如 "PatientName"。
// 比较时忽略大小写与标点
func (ds *DataSet) FindElementByKeyword(keyword string) (*Element, error) {
	want := dicomtag.NormalizeName(keyword)
	for _, elem := range ds.SortedElements() {
		if dicomtag.NormalizeName(elem.Keyword) == want {
			return elem, nil
		}
	}
	return nil, fmt.Errorf("could not find element with keyword '%s' in dicom file", keyword)
}

// Find 接受多种写法: "00100010", "(0010,0010)", "0010,0010", keyword,
// name, 或者DataSet中的key (如 "Unknown-PrivateTag-1")。
func (ds *DataSet) Find(query string) (*Element, error) {
	q := strings.TrimSpace(query)
	if e, ok := ds.Get(q); ok {
		return e, nil
	}
	if tag, err := dicomtag.ParseKey(q); err == nil {
		return ds.FindElementByTag(tag)
	}
	if tag, err := dicomtag.ParseTag(q); err == nil {
		return ds.FindElementByTag(tag)
	}
	if e, err := ds.FindElementByKeyword(q); err == nil {
		return e, nil
	}
	if e, err := ds.FindElementByName(q); err == nil {
		return e, nil
	}
	return nil, fmt.Errorf("%q: element not found", query)
}

// Group 返回group中的所有element, key为首字母小写的keyword,
// 如 Group(0x0028)["bitsAllocated"]
func (ds *DataSet) Group(group uint16) map[string]*Element {
	out := make(map[string]*Element)
	if ds == nil {
		return out
	}
	for _, k := range ds.keys {
		e := ds.elements[k]
		if e.Tag.Group == group {
			out[lowerCamel(k)] = e
		}
	}
	return out
}

// lowerCamel 把开头的大写字母变成小写, 缩写只保留最后一个大写字母,
// 如 "SOPClassUID" -> "sopClassUID"
func lowerCamel(s string) string {
	r := []rune(s)
	for i := 0; i < len(r) && unicode.IsUpper(r[i]); i++ {
		if i > 0 && i+1 < len(r) && unicode.IsLower(r[i+1]) {
			break
		}
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// merge 将others中的element依次加入ds
func (ds *DataSet) merge(others ...*DataSet) {
	for _, o := range others {
		if o == nil {
			continue
		}
		for _, k := range o.keys {
			ds.add(o.elements[k])
		}
	}
}

// FullDataset 是一次解码的结果: command set, file meta 与主dataset 三个region,
// 以及主dataset的编码方式。嵌入的 *DataSet 是三者合并后的视图
type FullDataset struct {
	*DataSet

	CommandSet *DataSet
	Meta       *DataSet
	Main       *DataSet

	// Preamble 是文件开头的128个byte
	Preamble []byte

	TransferSyntax TransferSyntax
	ImplicitVR     bool
	LittleEndian   bool

	// Conditions 是解码过程中的所有问题, 按发现顺序
	Conditions []Condition
}

// Merged returns the union of the three regions.
func (f *FullDataset) Merged() *DataSet { return f.DataSet }

// Err 返回所有Condition合成的error, 没有时返回nil
func (f *FullDataset) Err() error {
	errs := make([]error, len(f.Conditions))
	for i, c := range f.Conditions {
		errs[i] = c
	}
	return errors.Join(errs...)
}

// HasCondition reports whether a condition of the given kind was recorded.
func (f *FullDataset) HasCondition(kind ConditionKind) bool {
	for _, c := range f.Conditions {
		if c.Kind == kind {
			return true
		}
	}
	return false
}
