package dicomio

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// list of transfer syntaxes obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
const (
	ImplicitVRLittleEndian         = "1.2.840.10008.1.2"
	ExplicitVRLittleEndian         = "1.2.840.10008.1.2.1"
	ExplicitVRBigEndian            = "1.2.840.10008.1.2.2"
	DeflatedExplicitVRLittleEndian = "1.2.840.10008.1.2.1.99"
)

// ErrDeflatedTransferSyntax is returned for the deflated transfer syntax,
// whose dataset is a zlib stream this package does not inflate.
var ErrDeflatedTransferSyntax = errors.New("deflated explicit VR little endian is not supported")

// CanonicalTransferSyntaxUID return the canonical transfer syntax UID
// (e.g. ExplicitVRLittleEndian or ImplicitVRLittleEndian), given an UID
// that represents any transfer syntax. Any UID outside the four standard
// ones is treated as explicit VR little endian (PS3.5 A.4: encapsulated
// syntaxes encode the dataset itself that way).
func CanonicalTransferSyntaxUID(uid string) string {
	switch uid {
	case ImplicitVRLittleEndian,
		ExplicitVRLittleEndian,
		ExplicitVRBigEndian,
		DeflatedExplicitVRLittleEndian:
		return uid
	default:
		// the default is ExplicitVRLittleEndian
		return ExplicitVRLittleEndian
	}
}

// ParseTransferSyntaxUID parses a transfer syntax uid and returns its byteorder
// and implicitVR/explicitVR type. TransferSyntaxUID can be any UID that refers to
// a transfer syntax. It can be, e.g.
// 1.2.840.10008.1.2 (it will return (LittleEndian, ImplicitVR))
// or 1.2.840.10008.1.2.4.54 (it will return (LittleEndian, ExplicitVR)).
//
// For the deflated syntax the byte order and VR mode are still returned,
// together with ErrDeflatedTransferSyntax.
func ParseTransferSyntaxUID(uid string) (byteorder binary.ByteOrder, implicit IsImplicitVR, err error) {
	switch canonical := CanonicalTransferSyntaxUID(uid); canonical {
	case ImplicitVRLittleEndian:
		return binary.LittleEndian, ImplicitVR, nil
	case DeflatedExplicitVRLittleEndian:
		return binary.LittleEndian, ExplicitVR, ErrDeflatedTransferSyntax
	case ExplicitVRLittleEndian:
		return binary.LittleEndian, ExplicitVR, nil
	case ExplicitVRBigEndian:
		return binary.BigEndian, ExplicitVR, nil
	default:
		panic(fmt.Sprintf("Invalid transfer syntax: %v, %v", canonical, uid))
	}
}
