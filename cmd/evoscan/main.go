// Command evoscan summarises EvoScan 2.9 data log CSV files.
//
// Usage:
//
//	evoscan <logfile.csv> [logfile2.csv ...]
//	evoscan <logfile.csv> --export cleaned.csv
//
// Every input gets a per-channel summary. --export writes a cleaned copy of
// the log and is honoured only when a single input file is given.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bgutch/evorom/datalog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("evoscan", pflag.ContinueOnError)
	exportPath := flags.String("export", "", "export cleaned CSV to this path (single input only)")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	if flags.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: evoscan <logfile.csv> [logfile2.csv ...] [--export DEST]")
		return 1
	}

	for _, path := range flags.Args() {
		log, err := datalog.Read(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return 1
		}

		printSummary(log)

		if *exportPath != "" {
			if flags.NArg() > 1 {
				fmt.Fprintln(os.Stderr, "WARNING: --export is ignored when multiple input files are given.")
			} else if err := exportCleaned(log, *exportPath); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
				return 1
			}
		}
	}

	return 0
}

func printSummary(log *datalog.Log) {
	rule := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n", rule)
	fmt.Printf("File   : %s\n", log.Path)
	fmt.Printf("Rows   : %d\n", len(log.Records))
	fmt.Println(rule)

	for _, s := range log.Summary() {
		if s.Numeric {
			fmt.Printf("  %-35s count=%6d  min=%10.3f  max=%10.3f  mean=%10.3f\n",
				s.Name, s.Count, s.Min, s.Max, s.Mean)
		} else {
			fmt.Printf("  %-35s count=%6d  sample=%s\n", s.Name, s.Count, s.Sample)
		}
	}
}

func exportCleaned(log *datalog.Log, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := log.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Exported %d rows → %s\n", len(log.Records), dest)
	return nil
}
