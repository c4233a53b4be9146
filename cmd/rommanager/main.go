// Command rommanager manages and compares Evo 8 ROM files.
//
// Usage:
//
//	rommanager list <directory>
//	rommanager tunes <base_rom> [--dir DIR]
//	rommanager diff <rom_a> <rom_b> [--limit N]
//
// ROM files follow the naming convention documented in the romfile package;
// files with unrecognised names are ignored by list and tunes.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bgutch/evorom/bindiff"
	"github.com/bgutch/evorom/render"
	"github.com/bgutch/evorom/romfile"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	var err error
	switch args[0] {
	case "list":
		err = cmdList(args[1:])
	case "tunes":
		err = cmdTunes(args[1:])
	case "diff":
		err = cmdDiff(args[1:])
	default:
		usage()
		return 1
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  rommanager list <directory>
  rommanager tunes <base_rom> [--dir DIR]
  rommanager diff <rom_a> <rom_b> [--limit N]`)
}

func cmdList(args []string) error {
	flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("list expects exactly one directory")
	}

	roms, err := romfile.Scan(flags.Arg(0))
	if err != nil {
		return err
	}
	if len(roms) == 0 {
		fmt.Println("No ROM files found.")
		return nil
	}

	fmt.Printf("\n%-60s %-12s %-8s %-6s %s\n", "File", "Date", "Type", "Tune#", "Description")
	fmt.Println(strings.Repeat("-", 110))
	for _, r := range roms {
		kind := "base"
		if r.IsTune {
			kind = "tune"
		}
		fmt.Printf("%-60s %-12s %-8s %-6s %s\n",
			filepath.Base(r.Path), r.Date, kind, r.TuneNum, r.Description)
	}
	return nil
}

func cmdTunes(args []string) error {
	flags := pflag.NewFlagSet("tunes", pflag.ContinueOnError)
	dir := flags.String("dir", "cars/2003-evo-viii/roms/tunes", "directory to search for tune files")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("tunes expects exactly one base ROM")
	}

	base, ok := romfile.ParseFilename(flags.Arg(0))
	if !ok {
		return fmt.Errorf("cannot parse base ROM filename: %s", flags.Arg(0))
	}

	roms, err := romfile.Scan(*dir)
	if err != nil {
		return err
	}

	tunes := romfile.Tunes(base, roms)
	if len(tunes) == 0 {
		fmt.Printf("No tunes found for base ROM: %s\n", filepath.Base(base.Path))
		return nil
	}

	fmt.Printf("\nTunes derived from: %s\n", filepath.Base(base.Path))
	fmt.Printf("%-60s %-6s %-5s %s\n", "File", "Tune#", "Ext", "Description")
	fmt.Println(strings.Repeat("-", 90))
	for _, t := range tunes {
		fmt.Printf("%-60s %-6s %-5s %s\n", filepath.Base(t.Path), t.TuneNum, t.Ext, t.Description)
	}
	return nil
}

func cmdDiff(args []string) error {
	flags := pflag.NewFlagSet("diff", pflag.ContinueOnError)
	limit := flags.Int("limit", render.DefaultLimit, "maximum differences to display")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return fmt.Errorf("diff expects exactly two ROM files")
	}

	dataA, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	dataB, err := os.ReadFile(flags.Arg(1))
	if err != nil {
		return err
	}

	fmt.Printf("A: %s  (%d bytes)\n", flags.Arg(0), len(dataA))
	fmt.Printf("B: %s  (%d bytes)\n", flags.Arg(1), len(dataB))

	report := bindiff.Diff(dataA, dataB)
	if report.Count() == 0 {
		fmt.Println("Files are identical.")
		return nil
	}

	fmt.Printf("\n%d byte(s) differ:\n\n", report.Count())
	fmt.Print(render.ByteDiff(report, *limit))
	return nil
}
