package datalog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Log is a single parsed EvoScan 2.9 data log.
type Log struct {
	// Path is the file the log was read from; empty when read from a stream
	Path string

	// Headers holds the channel names from the header row, in file order
	Headers []string

	// Records holds one slice per data row, index-aligned with Headers
	Records [][]string
}

// Read loads an EvoScan log file from disk.
func Read(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	defer func() { _ = f.Close() }()

	log, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Path = path
	return log, nil
}

// ReadFrom parses an EvoScan log from any io.Reader. A leading UTF-8 byte
// order mark is stripped before the header row is read.
func ReadFrom(r io.Reader) (*Log, error) {
	br := bufio.NewReader(r)
	if err := skipBOM(br); err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1 // EvoScan rows can be ragged

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty log file")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	log := &Log{Headers: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read log row: %w", err)
		}
		log.Records = append(log.Records, padRecord(record, len(header)))
	}

	return log, nil
}

// Channels returns the logged channel names in file order.
func (l *Log) Channels() []string {
	out := make([]string, len(l.Headers))
	copy(out, l.Headers)
	return out
}

// Values returns every recorded value for the named channel, in row order.
// An unknown channel returns nil.
func (l *Log) Values(channel string) []string {
	col := -1
	for i, h := range l.Headers {
		if h == channel {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}

	out := make([]string, 0, len(l.Records))
	for _, rec := range l.Records {
		out = append(out, rec[col])
	}
	return out
}

// NumericValues returns the channel's values parsed as floats, skipping
// entries that do not parse.
func (l *Log) NumericValues(channel string) []float64 {
	var out []float64
	for _, raw := range l.Values(channel) {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// WriteCSV re-exports the log as a clean CSV: the header row followed by
// every record, all padded to the header width.
func (l *Log) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(l.Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range l.Records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func skipBOM(br *bufio.Reader) error {
	bom, err := br.Peek(3)
	if err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		if _, err := br.Discard(3); err != nil {
			return err
		}
	}
	return nil
}

func padRecord(record []string, width int) []string {
	if len(record) == width {
		return record
	}
	if len(record) > width {
		return record[:width]
	}
	out := make([]string, width)
	copy(out, record)
	return out
}
