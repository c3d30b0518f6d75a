package dicomtag

import "strings"

// VR codes. P3.5 6.2
const (
	AE = "AE"
	AS = "AS"
	AT = "AT"
	CS = "CS"
	DA = "DA"
	DS = "DS"
	DT = "DT"
	FD = "FD"
	FL = "FL"
	IS = "IS"
	LO = "LO"
	LT = "LT"
	OB = "OB"
	OD = "OD"
	OF = "OF"
	OL = "OL"
	OV = "OV"
	OW = "OW"
	PN = "PN"
	SH = "SH"
	SL = "SL"
	SQ = "SQ"
	SS = "SS"
	ST = "ST"
	SV = "SV"
	TM = "TM"
	UC = "UC"
	UI = "UI"
	UL = "UL"
	UN = "UN"
	UR = "UR"
	US = "US"
	UT = "UT"
	UV = "UV"
)

// knownVRs 是所有两字母的VR
var knownVRs = map[string]struct{}{
	AE: {}, AS: {}, AT: {}, CS: {}, DA: {}, DS: {}, DT: {}, FD: {}, FL: {},
	IS: {}, LO: {}, LT: {}, OB: {}, OD: {}, OF: {}, OL: {}, OV: {}, OW: {},
	PN: {}, SH: {}, SL: {}, SQ: {}, SS: {}, ST: {}, SV: {}, TM: {}, UC: {},
	UI: {}, UL: {}, UN: {}, UR: {}, US: {}, UT: {}, UV: {},
}

// ExtraLengthVRs are the VRs whose explicit encoding has two reserved bytes
// and a 32-bit length field instead of a 16-bit one. P3.5 7.1.2
var ExtraLengthVRs = []string{OB, OD, OF, OL, OV, OW, SQ, SV, UC, UN, UR, UT, UV}

// IsKnownVR reports whether vr is one of the two-letter codes of P3.5 6.2.
func IsKnownVR(vr string) bool {
	_, ok := knownVRs[vr]
	return ok
}

// IsExtraLengthVR reports whether vr belongs to ExtraLengthVRs.
func IsExtraLengthVR(vr string) bool {
	for _, v := range ExtraLengthVRs {
		if v == vr {
			return true
		}
	}
	return false
}

// IsDisjunctive reports whether vr is a dictionary code set such as
// "US or SS" rather than a single code.
func IsDisjunctive(vr string) bool {
	return strings.Contains(vr, " or ")
}

// Alternatives splits a disjunctive code into its members.
func Alternatives(vr string) []string {
	return strings.Split(vr, " or ")
}

// ResolveAmbiguousVR picks a concrete VR for a disjunctive dictionary code in
// implicit VR streams. Sets containing OW resolve to OW, else OB; "US or SS"
// resolves to SS when signed is true (PixelRepresentation == 1), else US.
// Any other set resolves to its first member. Concrete codes pass through.
func ResolveAmbiguousVR(vr string, signed bool) string {
	if !IsDisjunctive(vr) {
		return vr
	}
	alts := Alternatives(vr)
	has := func(code string) bool {
		for _, a := range alts {
			if a == code {
				return true
			}
		}
		return false
	}
	switch {
	case has(OW):
		return OW
	case has(OB):
		return OB
	case has(US) && has(SS):
		if signed {
			return SS
		}
		return US
	default:
		return alts[0]
	}
}

// VRKind 定义了golang 编码的VR
type VRKind int

const (
	// VRStringList means the element stores a string, or a []string when
	// the value holds a backslash
	VRStringList VRKind = iota
	// VRBytes means the element stores a []byte
	VRBytes
	// VRString means the element stores a single string (ST, LT)
	VRString
	// VRNumberList means the element stores a native number or a slice of them
	VRNumberList
	// VRDecimalList means the element stores a float64 or []float64 parsed from text (IS, DS)
	VRDecimalList
	// VRTagList element stores a Tag or []Tag
	VRTagList
	// VRDate means the element stores a time.Time
	VRDate
	// VRTime means the element stores a dicom.Time
	VRTime
	// VRPersonName means the element stores a person name string or []string
	VRPersonName
)

// GetVRKind 返回 go语言的 value encoding of an element with the given VR.
func GetVRKind(vr string) VRKind {
	switch vr {
	case DA:
		return VRDate
	case TM:
		return VRTime
	case AT:
		return VRTagList
	case PN:
		return VRPersonName
	case OB, OD, OF, OL, OV, OW, UN, UR, UT, SQ:
		return VRBytes
	case LT, ST:
		return VRString
	case US, SS, UL, SL, UV, SV, FL, FD:
		return VRNumberList
	case IS, DS:
		return VRDecimalList
	default:
		if IsDisjunctive(vr) {
			return VRBytes
		}
		return VRStringList
	}
}
