package status

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ChargingMarker follows the percentage while the battery charges.
const ChargingMarker = "+"

// PowerState is a request to format the battery level.
type PowerState struct {
	// Enabled reports whether battery display is on. When false
	// nothing is formatted.
	Enabled bool

	// Percent is the charge level, clamped to [0, 100].
	Percent int

	Charging bool

	// Lang selects number formatting. The zero tag formats as English.
	Lang language.Tag
}

// AppendPowerState appends the formatted battery level to buf.
func AppendPowerState(buf []byte, p PowerState) []byte {
	if !p.Enabled {
		return buf
	}
	lang := p.Lang
	if lang == language.Und {
		lang = language.English
	}

	pct := min(max(p.Percent, 0), 100)
	buf = append(buf, message.NewPrinter(lang).Sprintf("%d%%", pct)...)
	if p.Charging {
		buf = append(buf, ChargingMarker...)
	}
	return buf
}

// FormatPowerState returns the formatted battery level.
func FormatPowerState(p PowerState) string {
	return string(AppendPowerState(nil, p))
}
