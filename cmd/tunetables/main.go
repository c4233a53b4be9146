// Command tunetables extracts and displays octane and ignition tables from
// Evo 8 ROM files.
//
// Usage:
//
//	tunetables show <rom.bin> --table octane [--config tables.jsonc]
//	tunetables compare <rom_a.bin> <rom_b.bin> --table ignition [--config tables.jsonc]
//	tunetables export <rom.bin> --table octane --out octane.csv [--config tables.jsonc]
//
// Table offsets come from the built-in defaults or from a JSONC config file
// mapping table names to layouts. Export writes CSV, or an XLSX workbook
// when the output path ends in .xlsx.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bgutch/evorom/export"
	"github.com/bgutch/evorom/render"
	"github.com/bgutch/evorom/romtable"
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
	case "show":
		err = cmdShow(args[1:])
	case "compare":
		err = cmdCompare(args[1:])
	case "export":
		err = cmdExport(args[1:])
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
  tunetables show <rom.bin> [--table NAME] [--config FILE]
  tunetables compare <rom_a.bin> <rom_b.bin> [--table NAME] [--config FILE]
  tunetables export <rom.bin> --out FILE [--table NAME] [--config FILE]`)
}

func cmdShow(args []string) error {
	flags := pflag.NewFlagSet("show", pflag.ContinueOnError)
	table := flags.String("table", "octane", "table name (octane|ignition)")
	config := flags.String("config", "", "JSONC file with table offset configs")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("show expects exactly one ROM file")
	}

	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	layout, err := lookupLayout(*config, *table)
	if err != nil {
		return err
	}
	grid, err := romtable.Extract(data, layout)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s Table — %s", titleCase(*table), filepath.Base(flags.Arg(0)))
	fmt.Print(render.Grid(grid, title))
	return nil
}

func cmdCompare(args []string) error {
	flags := pflag.NewFlagSet("compare", pflag.ContinueOnError)
	table := flags.String("table", "ignition", "table name (octane|ignition)")
	config := flags.String("config", "", "JSONC file with table offset configs")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return fmt.Errorf("compare expects exactly two ROM files")
	}

	dataA, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	dataB, err := os.ReadFile(flags.Arg(1))
	if err != nil {
		return err
	}
	layout, err := lookupLayout(*config, *table)
	if err != nil {
		return err
	}

	gridA, err := romtable.Extract(dataA, layout)
	if err != nil {
		return fmt.Errorf("%s: %w", flags.Arg(0), err)
	}
	gridB, err := romtable.Extract(dataB, layout)
	if err != nil {
		return fmt.Errorf("%s: %w", flags.Arg(1), err)
	}

	report, err := romtable.Diff(gridA, gridB)
	if err != nil {
		return err
	}
	fmt.Print(render.CellDiff(report, filepath.Base(flags.Arg(0)), filepath.Base(flags.Arg(1))))
	return nil
}

func cmdExport(args []string) error {
	flags := pflag.NewFlagSet("export", pflag.ContinueOnError)
	table := flags.String("table", "octane", "table name (octane|ignition)")
	config := flags.String("config", "", "JSONC file with table offset configs")
	out := flags.String("out", "", "output file path (.csv or .xlsx)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("export expects exactly one ROM file")
	}
	if *out == "" {
		return fmt.Errorf("--out is required")
	}

	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	layout, err := lookupLayout(*config, *table)
	if err != nil {
		return err
	}
	grid, err := romtable.Extract(data, layout)
	if err != nil {
		return err
	}

	rows := render.CSVRows(grid, layout.RowLabel, layout.ColLabel)
	if strings.EqualFold(filepath.Ext(*out), ".xlsx") {
		err = export.WriteXLSX(*out, titleCase(*table), rows)
	} else {
		err = writeCSVFile(*out, rows)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %s table (%d×%d) → %s\n", *table, grid.Rows(), grid.Cols(), *out)
	return nil
}

func writeCSVFile(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func lookupLayout(configPath, table string) (romtable.Layout, error) {
	catalog := romtable.Defaults()
	if configPath != "" {
		var err error
		catalog, err = romtable.LoadCatalog(configPath)
		if err != nil {
			return romtable.Layout{}, err
		}
	}
	return catalog.Lookup(table)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
