package romfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ScanFS walks fsys recursively and returns metadata for every .bin and
// .hex file whose name matches the ROM naming convention. Results are
// sorted by date, base ROMs before tunes, then tune number — with all .bin
// files grouped ahead of all .hex files.
func ScanFS(fsys fs.FS) ([]*Meta, error) {
	var bins, hexes []*Meta

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		meta, ok := ParseFilename(p)
		if !ok {
			return nil
		}
		if meta.Ext == "bin" {
			bins = append(bins, meta)
		} else {
			hexes = append(hexes, meta)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning for ROM files: %w", err)
	}

	sortRoms(bins)
	sortRoms(hexes)
	return append(bins, hexes...), nil
}

// Scan is ScanFS over a directory on disk. Paths in the returned metadata
// are joined with dir.
func Scan(dir string) ([]*Meta, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	roms, err := ScanFS(os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	for _, r := range roms {
		r.Path = filepath.Join(dir, filepath.FromSlash(r.Path))
	}
	return roms, nil
}

// Tunes returns the tunes among roms that derive from base, sorted by tune
// number and then extension.
func Tunes(base *Meta, roms []*Meta) []*Meta {
	stem := base.BaseStem()

	var tunes []*Meta
	for _, r := range roms {
		if r.IsTune && r.BaseStem() == stem {
			tunes = append(tunes, r)
		}
	}

	sort.SliceStable(tunes, func(i, j int) bool {
		if tunes[i].TuneNum != tunes[j].TuneNum {
			return tunes[i].TuneNum < tunes[j].TuneNum
		}
		return tunes[i].Ext < tunes[j].Ext
	})
	return tunes
}

func sortRoms(roms []*Meta) {
	sort.SliceStable(roms, func(i, j int) bool {
		a, b := roms[i], roms[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.IsTune != b.IsTune {
			return !a.IsTune // base ROMs ahead of tunes
		}
		return a.TuneNum < b.TuneNum
	})
}
