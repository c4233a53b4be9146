package romfile

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(
	`^(?P<owner>[^_]+)` +
		`_(?P<car_year>\d{4})` +
		`_(?P<car_model>[^_]+)` +
		`_(?P<month>\d{2})_(?P<day>\d{2})_(?P<year>\d{4})` +
		`(?:_tune_(?P<tune_num>\d+)_(?P<description>.+))?` +
		`\.(?P<ext>bin|hex)$`)

// Meta is the metadata parsed from a ROM file name.
type Meta struct {
	// Path is the file path the metadata was parsed from
	Path string

	// Owner is the owner tag, e.g. "bgutch"
	Owner string

	// CarYear is the car's model year, e.g. "2003"
	CarYear string

	// CarModel is the car model tag, e.g. "evo8"
	CarModel string

	// Date is the ROM date in YYYY-MM-DD form
	Date string

	// IsTune reports whether the file is a tune derived from a base ROM
	IsTune bool

	// TuneNum is the zero-padded tune number, e.g. "010"; empty for base ROMs
	TuneNum string

	// Description is the tune description, e.g. "wastegateclear"; empty for base ROMs
	Description string

	// Ext is the file extension, "bin" or "hex"
	Ext string
}

// ParseFilename parses the base name of p against the ROM naming convention.
// The second return value is false when the name does not match; unmatched
// names are expected during directory scans, not errors.
func ParseFilename(p string) (*Meta, bool) {
	m := namePattern.FindStringSubmatch(path.Base(filepathToSlash(p)))
	if m == nil {
		return nil, false
	}

	group := func(name string) string {
		return m[namePattern.SubexpIndex(name)]
	}

	month, day, year := group("month"), group("day"), group("year")
	return &Meta{
		Path:        p,
		Owner:       group("owner"),
		CarYear:     group("car_year"),
		CarModel:    group("car_model"),
		Date:        fmt.Sprintf("%s-%s-%s", year, month, day),
		IsTune:      group("tune_num") != "",
		TuneNum:     group("tune_num"),
		Description: group("description"),
		Ext:         group("ext"),
	}, true
}

// BaseStem returns the stem shared by a base ROM and all tunes derived from
// it: owner, car year, car model, and the date in MM_DD_YYYY order.
func (m *Meta) BaseStem() string {
	y, mo, d := m.Date[:4], m.Date[5:7], m.Date[8:10]
	return fmt.Sprintf("%s_%s_%s_%s_%s_%s", m.Owner, m.CarYear, m.CarModel, mo, d, y)
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
