package dicom

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/odincare/dcmview/dicomio"
	"github.com/odincare/dcmview/dicomtag"
)

// decodeContext 保存一个scenario的状态
type decodeContext struct {
	syntax    string
	byteOrder binary.ByteOrder
	implicit  dicomio.IsImplicitVR
	records   []record
	raw       []byte
	cut       int

	fd  *FullDataset
	err error
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	dc := &decodeContext{}

	sc.Step(`^a Part 10 file with transfer syntax "([^"]*)"$`, dc.aPart10File)
	sc.Step(`^a buffer of (\d+) zero bytes$`, dc.aBufferOfZeroBytes)
	sc.Step(`^the main dataset holds a "([^"]*)" element "([^"]*)" with value "([^"]*)"$`, dc.theMainDatasetHolds)
	sc.Step(`^a (\d+) bit image with samples "([^"]*)" and window (\d+)/(\d+)$`, dc.anImage)
	sc.Step(`^the last (\d+) bytes are cut off$`, dc.theLastBytesAreCutOff)
	sc.Step(`^the file is decoded$`, dc.theFileIsDecoded)
	sc.Step(`^there are no conditions$`, dc.thereAreNoConditions)
	sc.Step(`^element "([^"]*)" has value "([^"]*)"$`, dc.elementHasValue)
	sc.Step(`^the main dataset has (\d+) elements$`, dc.theMainDatasetHas)
	sc.Step(`^the transfer syntax is "([^"]*)" VR "([^"]*)" endian$`, dc.theTransferSyntaxIs)
	sc.Step(`^decoding fails with "([^"]*)"$`, dc.decodingFailsWith)
	sc.Step(`^a "([^"]*)" condition is recorded$`, dc.aConditionIsRecorded)
	sc.Step(`^the pixel tokens are "([^"]*)"$`, dc.thePixelTokensAre)
}

func (dc *decodeContext) aPart10File(syntax string) error {
	dc.syntax = syntax
	dc.byteOrder, dc.implicit = binary.LittleEndian, dicomio.ExplicitVR
	if syntax == "" {
		return nil
	}
	bo, implicit, err := dicomio.ParseTransferSyntaxUID(syntax)
	if err != nil && err != dicomio.ErrDeflatedTransferSyntax {
		return err
	}
	dc.byteOrder, dc.implicit = bo, implicit
	return nil
}

func (dc *decodeContext) aBufferOfZeroBytes(n int) error {
	dc.raw = make([]byte, n)
	return nil
}

func (dc *decodeContext) theMainDatasetHolds(vr, keyword, value string) error {
	info, err := dicomtag.FindByKeyword(keyword)
	if err != nil {
		return err
	}
	switch vr {
	case dicomtag.US:
		n, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return err
		}
		dc.records = append(dc.records, us(dc.byteOrder, info.Tag, uint16(n)))
	case dicomtag.UI:
		dc.records = append(dc.records, uid(info.Tag, value))
	default:
		dc.records = append(dc.records, str(info.Tag, vr, value))
	}
	return nil
}

func (dc *decodeContext) anImage(bits int, samples string, center, width int) error {
	var values []uint16
	for _, s := range strings.Split(samples, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
		if err != nil {
			return err
		}
		values = append(values, uint16(n))
	}
	pixels := us(dc.byteOrder, dicomtag.PixelData, values...)
	pixels.vr = dicomtag.OW
	dc.records = append(dc.records,
		us(dc.byteOrder, dicomtag.Rows, 1),
		us(dc.byteOrder, dicomtag.Columns, uint16(len(values))),
		us(dc.byteOrder, dicomtag.BitsAllocated, 16),
		us(dc.byteOrder, dicomtag.BitsStored, uint16(bits)),
		us(dc.byteOrder, dicomtag.HighBit, uint16(bits-1)),
		us(dc.byteOrder, dicomtag.PixelRepresentation, 0),
		str(dicomtag.WindowCenter, dicomtag.DS, strconv.Itoa(center)),
		str(dicomtag.WindowWidth, dicomtag.DS, strconv.Itoa(width)),
		pixels,
	)
	return nil
}

func (dc *decodeContext) theLastBytesAreCutOff(n int) error {
	dc.cut = n
	return nil
}

func (dc *decodeContext) theFileIsDecoded() error {
	data := dc.raw
	if data == nil {
		data = part10(dc.syntax, encode(dc.byteOrder, dc.implicit, dc.records...))
	}
	if dc.cut > len(data) {
		return fmt.Errorf("cannot cut %d bytes from %d", dc.cut, len(data))
	}
	dc.fd, dc.err = Parse(data[:len(data)-dc.cut], ReadOptions{})
	return nil
}

func (dc *decodeContext) thereAreNoConditions() error {
	if dc.err != nil {
		return dc.err
	}
	if len(dc.fd.Conditions) > 0 {
		return fmt.Errorf("unexpected conditions: %v", dc.fd.Err())
	}
	return nil
}

func (dc *decodeContext) elementHasValue(keyword, want string) error {
	e, err := dc.fd.FindElementByKeyword(keyword)
	if err != nil {
		return err
	}
	if got := valueString(e.Value); got != want {
		return fmt.Errorf("%s: expected %q, got %q", keyword, want, got)
	}
	return nil
}

func (dc *decodeContext) theMainDatasetHas(n int) error {
	if got := dc.fd.Main.Len(); got != n {
		return fmt.Errorf("expected %d elements in the main dataset, got %d: %v", n, got, dc.fd.Main.Keys())
	}
	return nil
}

func (dc *decodeContext) theTransferSyntaxIs(vr, order string) error {
	ts := dc.fd.TransferSyntax
	if ts.Implicit.String() != vr {
		return fmt.Errorf("expected %s VR, got %v", vr, ts)
	}
	if (order == "little") != ts.IsLittleEndian() {
		return fmt.Errorf("expected %s endian, got %v", order, ts)
	}
	return nil
}

func (dc *decodeContext) decodingFailsWith(kind string) error {
	if dc.err == nil {
		return fmt.Errorf("expected %s, decode succeeded", kind)
	}
	return dc.aConditionIsRecorded(kind)
}

func (dc *decodeContext) aConditionIsRecorded(kind string) error {
	for _, c := range dc.fd.Conditions {
		if c.Kind.String() == kind {
			return nil
		}
	}
	return fmt.Errorf("no %s condition in %v", kind, dc.fd.Conditions)
}

func (dc *decodeContext) thePixelTokensAre(tokens string) error {
	img, ok := ReconstructPixels(dc.fd.DataSet)
	if !ok {
		return fmt.Errorf("no pixel data reconstructed")
	}
	if got := strings.Join(img.Tokens, ","); got != tokens {
		return fmt.Errorf("expected tokens %s, got %s", tokens, got)
	}
	return nil
}
