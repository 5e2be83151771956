package status

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Style selects the fields and ordering of a formatted date and time.
type Style int

// Datetime styles.
const (
	StyleYMDHMS Style = iota
	StyleYMDHM
	StyleYMD
	StyleYM
	StyleMDYYYYHMS
	StyleMDYYYYHM
	StyleMDHM
	StyleMDYYYY
	StyleMD
	StyleDDMMYYYYHMS
	StyleDDMMYYYYHM
	StyleDDMMHM
	StyleDDMMYYYY
	StyleDDMM
	StyleHMS
	StyleHM
	StyleHMSAMPM
	StyleHMAMPM

	styleCount
)

var styles = [styleCount]struct {
	name   string
	layout string
}{
	StyleYMDHMS:      {"ymd_hms", "2006-01-02 15:04:05"},
	StyleYMDHM:       {"ymd_hm", "2006-01-02 15:04"},
	StyleYMD:         {"ymd", "2006-01-02"},
	StyleYM:          {"ym", "2006-01"},
	StyleMDYYYYHMS:   {"mdyyyy_hms", "01-02-2006 15:04:05"},
	StyleMDYYYYHM:    {"mdyyyy_hm", "01-02-2006 15:04"},
	StyleMDHM:        {"md_hm", "01-02 15:04"},
	StyleMDYYYY:      {"mdyyyy", "01-02-2006"},
	StyleMD:          {"md", "01-02"},
	StyleDDMMYYYYHMS: {"ddmmyyyy_hms", "02-01-2006 15:04:05"},
	StyleDDMMYYYYHM:  {"ddmmyyyy_hm", "02-01-2006 15:04"},
	StyleDDMMHM:      {"ddmm_hm", "02-01 15:04"},
	StyleDDMMYYYY:    {"ddmmyyyy", "02-01-2006"},
	StyleDDMM:        {"ddmm", "02-01"},
	StyleHMS:         {"hms", "15:04:05"},
	StyleHM:          {"hm", "15:04"},
	StyleHMSAMPM:     {"hms_ampm", "03:04:05 PM"},
	StyleHMAMPM:      {"hm_ampm", "03:04 PM"},
}

// String returns the style's configuration name.
func (s Style) String() string {
	if s < 0 || s >= styleCount {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styles[s].name
}

// ParseStyle returns the style named name, ignoring case.
func ParseStyle(name string) (Style, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	for i, s := range styles {
		if s.name == folded {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("status: unknown datetime style %q", name)
}

// Separator is the character placed between date fields.
type Separator int

// Date separators.
const (
	SeparatorHyphen Separator = iota
	SeparatorSlash
	SeparatorPeriod
)

// String returns the separator's configuration name.
func (s Separator) String() string {
	switch s {
	case SeparatorHyphen:
		return "hyphen"
	case SeparatorSlash:
		return "slash"
	case SeparatorPeriod:
		return "period"
	default:
		return fmt.Sprintf("Separator(%d)", int(s))
	}
}

func (s Separator) char() string {
	switch s {
	case SeparatorSlash:
		return "/"
	case SeparatorPeriod:
		return "."
	default:
		return "-"
	}
}

// ParseSeparator returns the separator named name, ignoring case.
func ParseSeparator(name string) (Separator, error) {
	switch cases.Fold().String(strings.TrimSpace(name)) {
	case "hyphen", "-":
		return SeparatorHyphen, nil
	case "slash", "/":
		return SeparatorSlash, nil
	case "period", ".":
		return SeparatorPeriod, nil
	}
	return 0, fmt.Errorf("status: unknown date separator %q", name)
}

// Datetime is a request to format a point in time.
type Datetime struct {
	Style     Style
	Separator Separator
}

// Layout returns the time layout for the request. Unknown styles fall
// back to StyleYMDHMS.
func (d Datetime) Layout() string {
	s := d.Style
	if s < 0 || s >= styleCount {
		s = StyleYMDHMS
	}
	layout := styles[s].layout
	if d.Separator == SeparatorHyphen {
		return layout
	}
	return strings.ReplaceAll(layout, "-", d.Separator.char())
}

// AppendDatetime appends t formatted per d to buf.
func AppendDatetime(buf []byte, d Datetime, t time.Time) []byte {
	return t.AppendFormat(buf, d.Layout())
}

// FormatDatetime returns t formatted per d.
func FormatDatetime(d Datetime, t time.Time) string {
	return string(AppendDatetime(nil, d, t))
}
