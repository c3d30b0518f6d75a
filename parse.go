package dicom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomlog"
	"github.com/odincare/dcmview/dicomtag"
)

const (
	preambleLength = 128
	magic          = "DICM"
	// HeaderLength 是preamble与"DICM"的总长度
	HeaderLength = preambleLength + len(magic)
)

// ReadPreamble 检查buffer开头的128个byte与"DICM"。
// 成功时返回preamble与新的游标位置132; 失败时返回位置0与一个
// MissingHeader Condition (errors.Is(err, ErrMissingHeader))。
func ReadPreamble(data []byte) ([]byte, int, error) {
	header := dicomio.Range(data, 0, HeaderLength)
	preamble, m := dicomio.Split(header, preambleLength)
	if len(m) != len(magic) || dicomio.ToText(m) != magic {
		return nil, 0, newCondition(MissingHeader, dicomtag.Tag{}, preambleLength,
			"keyword 'DICM' not found in the header, found %q", dicomio.ToText(m))
	}
	return preamble, HeaderLength, nil
}

// Parse 解码一个完整的DICOM Part 10 buffer。
//
// 顺序为: preamble, file meta (explicit VR little endian, 到group 2结束),
// command set (implicit VR little endian, 到group 0结束), 然后用
// ResolveTransferSyntax 决定的编码读取主dataset直到buffer结束。
// options 只作用于主dataset。
//
// 返回的FullDataset永远不为nil。只有缺少"DICM"时返回error, 其它问题
// 记录在 FullDataset.Conditions 中, 已经读出的region保持不变。
func Parse(data []byte, options ReadOptions) (*FullDataset, error) {
	f := &FullDataset{
		DataSet:    newDataSet(),
		CommandSet: newDataSet(),
		Meta:       newDataSet(),
		Main:       newDataSet(),
	}
	var conds conditionList

	preamble, pos, err := ReadPreamble(data)
	if err != nil {
		var c Condition
		if errors.As(err, &c) {
			conds.add(c)
		}
		f.Conditions = conds
		return f, err
	}
	f.Preamble = preamble

	var regionConds []Condition
	f.Meta, pos, regionConds = ReadRegion(data, pos, Region{
		ByteOrder: binary.LittleEndian,
		Implicit:  dicomio.ExplicitVR,
		Stop:      StopOutsideMetaGroup,
	}, ReadOptions{})
	conds = append(conds, regionConds...)

	f.CommandSet, pos, regionConds = ReadRegion(data, pos, Region{
		ByteOrder: binary.LittleEndian,
		Implicit:  dicomio.ImplicitVR,
		Stop:      StopOutsideCommandGroup,
	}, ReadOptions{})
	conds = append(conds, regionConds...)

	uid, _ := f.Meta.FindElementByTag(dicomtag.TransferSyntaxUID)
	ts := ResolveTransferSyntax(data, pos, uid)
	f.TransferSyntax = ts
	f.ImplicitVR = ts.IsImplicitVR()
	f.LittleEndian = ts.IsLittleEndian()
	dicomlog.Vprintf(1, "dicom.Parse: main dataset at offset %d uses %v", pos, ts)

	if ts.Err != nil {
		conds.add(newCondition(UnsupportedTransferSyntax, dicomtag.TransferSyntaxUID, pos, "%v", ts.Err))
	} else {
		f.Main, _, regionConds = ReadRegion(data, pos, Region{
			ByteOrder: ts.ByteOrder,
			Implicit:  ts.Implicit,
			Stop:      StopNever,
		}, options)
		conds = append(conds, regionConds...)
	}

	f.DataSet.merge(f.CommandSet, f.Meta, f.Main)
	f.Conditions = conds
	return f, nil
}

// ParseFile 读取文件内容并调用Parse。
// 文件无法读取时返回的FullDataset为nil
func ParseFile(path string, options ReadOptions) (*FullDataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dicom.ParseFile: %w", err)
	}
	return Parse(data, options)
}
