package dicomio

import (
	"encoding/hex"
	"strings"
)

// Range returns buf[start:start+n], clipped to the buffer. The returned slice
// has its capacity clipped too, so appending to it never touches the bytes
// that follow it in buf. A start outside the buffer yields an empty slice.
func Range(buf []byte, start, n int) []byte {
	if start < 0 || n <= 0 || start >= len(buf) {
		return buf[:0:0]
	}
	end := start + n
	if end > len(buf) || end < start {
		end = len(buf)
	}
	return buf[start:end:end]
}

// Split 将buf在n处分成两段, n超出长度时第二段为空
func Split(buf []byte, n int) ([]byte, []byte) {
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	return buf[:n:n], buf[n:]
}

// ToHex returns the lower-case two-digit hex form of every byte, concatenated.
func ToHex(buf []byte) string {
	return hex.EncodeToString(buf)
}

// ToText maps each byte to the rune of the same value. Used for fixed ASCII
// markers such as the "DICM" magic, where no character set applies.
func ToText(buf []byte) string {
	var sb strings.Builder
	sb.Grow(len(buf))
	for _, b := range buf {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// ReverseBytes returns a reversed copy of buf.
func ReverseBytes(buf []byte) []byte {
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[len(buf)-1-i] = b
	}
	return out
}

// IsUpperASCII reports whether b is in 'A'..'Z'.
func IsUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
