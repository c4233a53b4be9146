package bindiff

import (
	"reflect"
	"testing"
)

func present(v byte) Byte { return Byte{Value: v, Present: true} }

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want []Entry
	}{
		{
			name: "identical buffers",
			a:    []byte{0x10, 0x20, 0x30},
			b:    []byte{0x10, 0x20, 0x30},
			want: nil,
		},
		{
			name: "both empty",
			a:    nil,
			b:    []byte{},
			want: nil,
		},
		{
			name: "changed byte and longer second buffer",
			a:    []byte{0x10, 0x20, 0x30},
			b:    []byte{0x10, 0x21, 0x30, 0x40},
			want: []Entry{
				{Offset: 1, A: present(0x20), B: present(0x21)},
				{Offset: 3, A: Byte{}, B: present(0x40)},
			},
		},
		{
			name: "zero byte is not absent",
			a:    []byte{0x00},
			b:    []byte{},
			want: []Entry{
				{Offset: 0, A: present(0x00), B: Byte{}},
			},
		},
		{
			name: "length mismatch yields entry per trailing offset",
			a:    []byte{0xAA},
			b:    []byte{0xAA, 0x01, 0x02, 0x03},
			want: []Entry{
				{Offset: 1, A: Byte{}, B: present(0x01)},
				{Offset: 2, A: Byte{}, B: present(0x02)},
				{Offset: 3, A: Byte{}, B: present(0x03)},
			},
		},
		{
			name: "multiple changed bytes in ascending order",
			a:    []byte{1, 2, 3, 4},
			b:    []byte{1, 9, 3, 8},
			want: []Entry{
				{Offset: 1, A: present(2), B: present(9)},
				{Offset: 3, A: present(4), B: present(8)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Diff(tt.a, tt.b)
			if !reflect.DeepEqual(report.Entries, tt.want) {
				t.Errorf("Entries = %v, want %v", report.Entries, tt.want)
			}
			if report.Count() != len(tt.want) {
				t.Errorf("Count() = %d, want %d", report.Count(), len(tt.want))
			}
		})
	}
}

func TestDiffSymmetry(t *testing.T) {
	a := []byte{0x10, 0x20, 0x30}
	b := []byte{0x10, 0x21, 0x30, 0x40}

	ab := Diff(a, b)
	ba := Diff(b, a)

	if ab.Count() != ba.Count() {
		t.Fatalf("Diff(a,b) has %d entries, Diff(b,a) has %d", ab.Count(), ba.Count())
	}
	for i := range ab.Entries {
		fwd, rev := ab.Entries[i], ba.Entries[i]
		if fwd.Offset != rev.Offset {
			t.Errorf("entry %d: offsets %d vs %d", i, fwd.Offset, rev.Offset)
		}
		if fwd.A != rev.B || fwd.B != rev.A {
			t.Errorf("entry %d: sides not swapped: %+v vs %+v", i, fwd, rev)
		}
	}
}
