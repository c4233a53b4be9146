// Package romfile parses ROM file names into structured metadata and scans
// directories for ROM images.
//
// # Naming convention
//
// ROM files follow a fixed naming convention:
//
//	{owner}_{car_year}_{car_model}_{MM}_{DD}_{YYYY}[_tune_{NNN}_{description}].{bin|hex}
//
// Examples:
//
//	bgutch_2003_evo8_11_11_2025.bin
//	bgutch_2003_evo8_11_11_2025_tune_010_wastegateclear.bin
//	bgutch_2003_evo8_02_18_2026_tune_001_rpm_limit.hex
//
// A file without the tune suffix is a base ROM; tunes carry a zero-padded
// tune number and a free-form description. A base ROM and all tunes derived
// from it share a base stem (owner, car, and date), which is how Tunes
// groups them.
//
// # Usage
//
//	roms, err := romfile.Scan("cars/2003-evo-viii/roms")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range roms {
//	    fmt.Println(r.Path, r.Date, r.TuneNum)
//	}
package romfile
