package bindiff

import "bytes"

// Byte is one side of a byte-level difference. Present is false when the
// offset lies past the end of that side's buffer (length mismatch); the
// Value field is meaningful only while Present is true.
type Byte struct {
	Value   byte
	Present bool
}

// Entry records one offset where two buffers disagree. At least one side is
// always present.
type Entry struct {
	// Offset is the byte position within the compared buffers
	Offset int

	// A is the byte from the first buffer
	A Byte

	// B is the byte from the second buffer
	B Byte
}

// Report is the exhaustive result of a byte-level comparison, in ascending
// offset order.
type Report struct {
	Entries []Entry
}

// Count returns the total number of differing offsets.
func (r *Report) Count() int {
	return len(r.Entries)
}

// Diff compares two buffers byte by byte and returns every differing offset
// in ascending order. Buffers of different length produce an entry for every
// trailing offset of the longer buffer, with the shorter side marked absent.
// An empty report means the buffers are identical in both content and
// length.
func Diff(a, b []byte) *Report {
	report := &Report{}
	if bytes.Equal(a, b) {
		return report
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	for i := 0; i < maxLen; i++ {
		var va, vb Byte
		if i < len(a) {
			va = Byte{Value: a[i], Present: true}
		}
		if i < len(b) {
			vb = Byte{Value: b[i], Present: true}
		}
		if va != vb {
			report.Entries = append(report.Entries, Entry{Offset: i, A: va, B: vb})
		}
	}

	return report
}
