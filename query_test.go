package dicom

import (
	"testing"
	"time"

	"github.com/odincare/dcmview/dicomtag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	ds := testDataSet(t)

	tests := []struct {
		name  string
		tag   dicomtag.Tag
		value interface{}
		match bool
	}{
		{"exact string", dicomtag.PatientID, "7DkT2Tp", true},
		{"wrong string", dicomtag.PatientID, "nope", false},
		{"glob", dicomtag.PatientName, "Doe*", true},
		{"glob single char", dicomtag.PatientName, "Do?^John", true},
		{"glob miss", dicomtag.PatientName, "Smith*", false},
		{"universal", dicomtag.PatientName, "*", true},
		{"empty", dicomtag.PatientName, "", true},
		{"nil", dicomtag.PatientName, nil, true},
		{"uid", dicomtag.SOPClassUID, "1.2.840.10008.5.1.4.1.1.2", true},
		{"uid list", dicomtag.SOPClassUID, []string{"1.2.3", "1.2.840.10008.5.1.4.1.1.2"}, true},
		{"uid list miss", dicomtag.SOPClassUID, []string{"1.2.3", "1.2.4"}, false},
		{"number", dicomtag.Rows, uint16(2), true},
		{"number miss", dicomtag.Rows, uint16(3), false},
		{"date", dicomtag.StudyDate, "20240301", true},
		{"date range", dicomtag.StudyDate, "20240101-20241231", true},
		{"date open end", dicomtag.StudyDate, "20240301-", true},
		{"date open start", dicomtag.StudyDate, "-20240229", false},
		{"date value", dicomtag.StudyDate, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"missing element", dicomtag.AccessionNumber, "A1", false},
		{"missing element universal", dicomtag.AccessionNumber, "", true},
		{"query level", dicomtag.QueryRetrieveLevel, "STUDY", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := MustNewElement(tc.tag, tc.value)
			match, elem, err := Query(ds, f)
			require.NoError(t, err)
			assert.Equal(t, tc.match, match)
			if match && tc.value != nil && tc.value != "" && tc.value != "*" && tc.tag != dicomtag.QueryRetrieveLevel {
				require.NotNil(t, elem)
				assert.Equal(t, tc.tag, elem.Tag)
			}
		})
	}
}

func TestQueryErrors(t *testing.T) {
	ds := testDataSet(t)

	_, _, err := Query(ds, MustNewElement(dicomtag.PatientName, []string{"A", "B"}))
	assert.Error(t, err)

	_, _, err = Query(ds, MustNewElement(dicomtag.StudyDate, "2024-03-01-05"))
	assert.Error(t, err)

	// filter的VR与element不同
	f := MustNewElement(dicomtag.PatientID, "x")
	f.VR = dicomtag.SH
	_, _, err = Query(ds, f)
	assert.Error(t, err)
}
