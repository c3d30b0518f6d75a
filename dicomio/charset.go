package dicomio

import (
	"fmt"
	"strings"

	"github.com/odincare/dcmview/dicomlog"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// CodingSystem defines how a []byte is translated into a utf8 string.
// P3.5 6.1.2.5.3: PN values may carry up to three component groups
// (alphabetic, ideographic, phonetic), each with its own encoding.
// A nil decoder means the bytes are taken as-is (ASCII / UTF-8).
type CodingSystem struct {
	Alphabetic  *encoding.Decoder
	Ideographic *encoding.Decoder
	Phonetic    *encoding.Decoder
}

// CodingSystemType defines the where the coding system is going to be
// used. This distinction is useful in Japanese, but of little use in other
// languages.
type CodingSystemType int

const (
	// AlphabeticCodingSystem is for writing a name in (English) alphabets.
	AlphabeticCodingSystem CodingSystemType = iota
	// IdeographicCodingSystem is for writing the name in the native writing
	// system (Kanji).
	IdeographicCodingSystem
	// PhoneticCodingSystem is for hirakana and/or katakana.
	PhoneticCodingSystem
)

// Decoder returns the decoder for the given component group.
func (cs CodingSystem) Decoder(t CodingSystemType) *encoding.Decoder {
	switch t {
	case AlphabeticCodingSystem:
		return cs.Alphabetic
	case PhoneticCodingSystem:
		return cs.Phonetic
	default:
		return cs.Ideographic
	}
}

// defined term (0008,0005) -> WHATWG label understood by charset.Lookup.
// An empty label means the default repertoire.
var lookupLabelByTerm = map[string]string{
	"":           "",
	"ISO_IR 6":   "",
	"ISO_IR 100": "iso-ir-100",
	"ISO_IR 101": "iso-ir-101",
	"ISO_IR 109": "iso-ir-109",
	"ISO_IR 110": "iso-ir-110",
	"ISO_IR 144": "iso-ir-144",
	"ISO_IR 127": "iso-ir-127",
	"ISO_IR 126": "iso-ir-126",
	"ISO_IR 138": "iso-ir-138",
	"ISO_IR 148": "iso-ir-148",
	"ISO_IR 13":  "shift-jis",
	"ISO_IR 166": "tis-620",
	"ISO_IR 192": "utf-8",
	"GB18030":    "gb18030",
	"GBK":        "gbk",
	// TODO 正确支持 ISO 2022 的 code extension (escape sequence 切换)
	"ISO 2022 IR 6":   "",
	"ISO 2022 IR 100": "iso-ir-100",
	"ISO 2022 IR 101": "iso-ir-101",
	"ISO 2022 IR 109": "iso-ir-109",
	"ISO 2022 IR 110": "iso-ir-110",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO 2022 IR 13":  "shift-jis",
	"ISO 2022 IR 166": "tis-620",
	"ISO 2022 IR 87":  "iso-2022-jp",
	"ISO 2022 IR 159": "iso-2022-jp",
	"ISO 2022 IR 149": "euc-kr",
}

func lookupDecoder(term string) (*encoding.Decoder, error) {
	label, ok := lookupLabelByTerm[strings.TrimSpace(term)]
	if !ok {
		return nil, fmt.Errorf("specific character set defined term not found: %q", term)
	}
	if label == "" {
		return nil, nil
	}
	coding, _ := charset.Lookup(label)
	if coding == nil {
		return nil, fmt.Errorf("missing encoding for label %q", label)
	}
	return coding.NewDecoder(), nil
}

// ParseSpecificCharacterSet converts DICOM character encoding names, such as
// "ISO-IR 100" to golang decoder. It will return nil, nil for the default (7bit
// ASCII) encoding. Cf. P3.2 D.6.2.
// http://dicom.nema.org/medical/dicom/2016d/output/chtml/part02/sect_D.6.2.html
func ParseSpecificCharacterSet(encodingNames []string) (CodingSystem, error) {
	var decoders []*encoding.Decoder
	for _, name := range encodingNames {
		dicomlog.Vprintf(2, "dicomio.ParseSpecificCharacterSet: Using coding system %s", name)
		d, err := lookupDecoder(name)
		if err != nil {
			return CodingSystem{}, err
		}
		decoders = append(decoders, d)
	}

	switch len(decoders) {
	case 0:
		return CodingSystem{}, nil
	case 1:
		return CodingSystem{decoders[0], decoders[0], decoders[0]}, nil
	case 2:
		return CodingSystem{decoders[0], decoders[1], decoders[1]}, nil
	default:
		return CodingSystem{decoders[0], decoders[1], decoders[2]}, nil
	}
}
