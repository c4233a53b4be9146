// Package datalog parses EvoScan 2.9 data log files.
//
// EvoScan 2.9 produces comma-separated log files with a header row of
// channel names followed by timestamped sensor readings. Files exported on
// Windows often start with a UTF-8 byte order mark, which is stripped.
// Ragged rows (fewer or more fields than the header) are tolerated: short
// rows read as empty trailing values, extra fields are dropped.
//
//	log, err := datalog.Read("pull_3rd_gear.csv")
//	if err != nil {
//	    return err
//	}
//	for _, s := range log.Summary() {
//	    fmt.Printf("%s: %d samples\n", s.Name, s.Count)
//	}
package datalog
