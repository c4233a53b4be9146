package romfile

import (
	"testing"
	"testing/fstest"
)

func TestScanFS(t *testing.T) {
	fsys := fstest.MapFS{
		"bgutch_2003_evo8_11_11_2025_tune_010_wastegateclear.bin": {},
		"bgutch_2003_evo8_11_11_2025.bin":                         {},
		"tunes/bgutch_2003_evo8_11_11_2025_tune_002_idle.bin":     {},
		"bgutch_2003_evo8_02_18_2026_tune_001_rpm_limit.hex":      {},
		"bgutch_2003_evo8_01_05_2025.bin":                         {},
		"notes.txt":       {},
		"random_file.bin": {},
		"octane_dump.hex": {},
	}

	roms, err := ScanFS(fsys)
	if err != nil {
		t.Fatal(err)
	}

	// Date order, base before tunes, tune number order, all .bin before .hex.
	wantPaths := []string{
		"bgutch_2003_evo8_01_05_2025.bin",
		"bgutch_2003_evo8_11_11_2025.bin",
		"tunes/bgutch_2003_evo8_11_11_2025_tune_002_idle.bin",
		"bgutch_2003_evo8_11_11_2025_tune_010_wastegateclear.bin",
		"bgutch_2003_evo8_02_18_2026_tune_001_rpm_limit.hex",
	}

	if len(roms) != len(wantPaths) {
		t.Fatalf("found %d ROMs, want %d", len(roms), len(wantPaths))
	}
	for i, want := range wantPaths {
		if roms[i].Path != want {
			t.Errorf("roms[%d].Path = %q, want %q", i, roms[i].Path, want)
		}
	}
}

func TestScanFSEmpty(t *testing.T) {
	roms, err := ScanFS(fstest.MapFS{"notes.txt": &fstest.MapFile{}})
	if err != nil {
		t.Fatal(err)
	}
	if len(roms) != 0 {
		t.Errorf("found %d ROMs in a directory with none", len(roms))
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := Scan("does/not/exist"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestTunes(t *testing.T) {
	fsys := fstest.MapFS{
		"bgutch_2003_evo8_11_11_2025_tune_010_wastegateclear.bin": {},
		"bgutch_2003_evo8_11_11_2025_tune_002_idle.hex":           {},
		"bgutch_2003_evo8_11_11_2025_tune_002_idle.bin":           {},
		"bgutch_2003_evo8_02_18_2026_tune_001_rpm_limit.bin":      {},
		"bgutch_2003_evo8_11_11_2025.bin":                         {},
	}

	roms, err := ScanFS(fsys)
	if err != nil {
		t.Fatal(err)
	}

	base, ok := ParseFilename("bgutch_2003_evo8_11_11_2025.bin")
	if !ok {
		t.Fatal("failed to parse base ROM name")
	}

	tunes := Tunes(base, roms)

	// Tune number order, .bin before .hex within a number; the 2026 tune
	// derives from a different base and is excluded.
	want := []string{
		"bgutch_2003_evo8_11_11_2025_tune_002_idle.bin",
		"bgutch_2003_evo8_11_11_2025_tune_002_idle.hex",
		"bgutch_2003_evo8_11_11_2025_tune_010_wastegateclear.bin",
	}

	if len(tunes) != len(want) {
		t.Fatalf("found %d tunes, want %d", len(tunes), len(want))
	}
	for i, w := range want {
		if tunes[i].Path != w {
			t.Errorf("tunes[%d].Path = %q, want %q", i, tunes[i].Path, w)
		}
	}
}

func TestTunesNone(t *testing.T) {
	base, ok := ParseFilename("bgutch_2003_evo8_11_11_2025.bin")
	if !ok {
		t.Fatal("failed to parse base ROM name")
	}
	if tunes := Tunes(base, nil); len(tunes) != 0 {
		t.Errorf("expected no tunes, got %d", len(tunes))
	}
}
