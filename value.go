package dicom

import (
	"fmt"
	"time"
)

// Time 是一个TM值 (HHMMSS.FFFFFF), 不带日期与时区
type Time struct {
	Hours        int
	Minutes      int
	Seconds      int
	Microseconds int
}

// String returns "HH:MM:SS.ffffff".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hours, t.Minutes, t.Seconds, t.Microseconds)
}

// Duration 返回从零点开始经过的时间
func (t Time) Duration() time.Duration {
	return time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second +
		time.Duration(t.Microseconds)*time.Microsecond
}

// On combines t with the calendar day of date.
func (t Time) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(t.Duration())
}
