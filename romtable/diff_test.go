package romtable

import (
	"errors"
	"reflect"
	"testing"
)

func mustGrid(t *testing.T, cells []byte, rows, cols int) *Grid {
	t.Helper()
	grid, err := Extract(cells, Layout{Offset: 0, Rows: rows, Cols: cols})
	if err != nil {
		t.Fatal(err)
	}
	return grid
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b *Grid
		want []CellDiff
	}{
		{
			name: "identical grids",
			a:    mustGrid(t, []byte{1, 2, 3, 4}, 2, 2),
			b:    mustGrid(t, []byte{1, 2, 3, 4}, 2, 2),
			want: nil,
		},
		{
			name: "single changed cell",
			a:    mustGrid(t, []byte{1, 2, 3, 4}, 2, 2),
			b:    mustGrid(t, []byte{1, 9, 3, 4}, 2, 2),
			want: []CellDiff{{Row: 0, Col: 1, A: 2, B: 9}},
		},
		{
			name: "changes emitted in row-major order",
			a:    mustGrid(t, []byte{1, 2, 3, 4, 5, 6}, 2, 3),
			b:    mustGrid(t, []byte{9, 2, 3, 4, 5, 8}, 2, 3),
			want: []CellDiff{
				{Row: 0, Col: 0, A: 1, B: 9},
				{Row: 1, Col: 2, A: 6, B: 8},
			},
		},
		{
			name: "every cell changed",
			a:    mustGrid(t, []byte{0, 0}, 1, 2),
			b:    mustGrid(t, []byte{1, 1}, 1, 2),
			want: []CellDiff{
				{Row: 0, Col: 0, A: 0, B: 1},
				{Row: 0, Col: 1, A: 0, B: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Diff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(report.Diffs, tt.want) {
				t.Errorf("Diffs = %v, want %v", report.Diffs, tt.want)
			}
			if report.Count() != len(tt.want) {
				t.Errorf("Count() = %d, want %d", report.Count(), len(tt.want))
			}
			if report.Rows != tt.a.Rows() || report.Cols != tt.a.Cols() {
				t.Errorf("report shape = %dx%d, want %dx%d",
					report.Rows, report.Cols, tt.a.Rows(), tt.a.Cols())
			}
		})
	}
}

func TestDiffSelf(t *testing.T) {
	grid := mustGrid(t, []byte{0, 1, 2, 255, 4, 5}, 3, 2)
	report, err := Diff(grid, grid)
	if err != nil {
		t.Fatal(err)
	}
	if report.Count() != 0 {
		t.Errorf("diff of grid with itself has %d entries, want 0", report.Count())
	}
}

func TestDiffShapeMismatch(t *testing.T) {
	a := mustGrid(t, []byte{1, 2, 3, 4}, 2, 2)
	b := mustGrid(t, []byte{1, 2, 3, 4}, 1, 4)

	report, err := Diff(a, b)
	if report != nil {
		t.Fatal("shape mismatch must not produce a report")
	}

	var mismatch *ShapeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *ShapeMismatchError, got %T", err)
	}
	want := &ShapeMismatchError{RowsA: 2, ColsA: 2, RowsB: 1, ColsB: 4}
	if *mismatch != *want {
		t.Errorf("error = %+v, want %+v", mismatch, want)
	}
}
