package status

import (
	"testing"
	"time"
)

var sample = time.Date(2024, time.March, 7, 21, 5, 9, 0, time.UTC)

func TestFormatDatetime(t *testing.T) {
	tests := []struct {
		style Style
		sep   Separator
		want  string
	}{
		{StyleYMDHMS, SeparatorHyphen, "2024-03-07 21:05:09"},
		{StyleYMDHM, SeparatorSlash, "2024/03/07 21:05"},
		{StyleYMD, SeparatorPeriod, "2024.03.07"},
		{StyleYM, SeparatorHyphen, "2024-03"},
		{StyleMDYYYYHMS, SeparatorSlash, "03/07/2024 21:05:09"},
		{StyleMDYYYYHM, SeparatorHyphen, "03-07-2024 21:05"},
		{StyleMDHM, SeparatorHyphen, "03-07 21:05"},
		{StyleMDYYYY, SeparatorPeriod, "03.07.2024"},
		{StyleMD, SeparatorSlash, "03/07"},
		{StyleDDMMYYYYHMS, SeparatorPeriod, "07.03.2024 21:05:09"},
		{StyleDDMMYYYYHM, SeparatorHyphen, "07-03-2024 21:05"},
		{StyleDDMMHM, SeparatorSlash, "07/03 21:05"},
		{StyleDDMMYYYY, SeparatorHyphen, "07-03-2024"},
		{StyleDDMM, SeparatorHyphen, "07-03"},
		{StyleHMS, SeparatorSlash, "21:05:09"},
		{StyleHM, SeparatorHyphen, "21:05"},
		{StyleHMSAMPM, SeparatorHyphen, "09:05:09 PM"},
		{StyleHMAMPM, SeparatorPeriod, "09:05 PM"},
	}
	if len(tests) != int(styleCount) {
		t.Fatalf("table covers %d styles, want %d", len(tests), styleCount)
	}
	for _, tt := range tests {
		t.Run(tt.style.String()+"/"+tt.sep.String(), func(t *testing.T) {
			got := FormatDatetime(Datetime{Style: tt.style, Separator: tt.sep}, sample)
			if got != tt.want {
				t.Errorf("FormatDatetime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendDatetimeKeepsPrefix(t *testing.T) {
	buf := []byte("Time: ")
	buf = AppendDatetime(buf, Datetime{Style: StyleHM}, sample)
	if string(buf) != "Time: 21:05" {
		t.Errorf("AppendDatetime() = %q", buf)
	}
}

func TestUnknownStyleFallsBack(t *testing.T) {
	got := FormatDatetime(Datetime{Style: Style(99)}, sample)
	if got != "2024-03-07 21:05:09" {
		t.Errorf("FormatDatetime(99) = %q, want YMD_HMS layout", got)
	}
}

func TestParseStyle(t *testing.T) {
	for s := Style(0); s < styleCount; s++ {
		got, err := ParseStyle(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v", s.String(), got, err, s)
		}
	}
	if got, err := ParseStyle(" HM_AMPM "); err != nil || got != StyleHMAMPM {
		t.Errorf("ParseStyle(HM_AMPM) = %v, %v", got, err)
	}
	if _, err := ParseStyle("weekday"); err == nil {
		t.Error("ParseStyle(weekday) error = nil")
	}
}

func TestParseSeparator(t *testing.T) {
	tests := []struct {
		in   string
		want Separator
	}{
		{"hyphen", SeparatorHyphen},
		{"Slash", SeparatorSlash},
		{".", SeparatorPeriod},
	}
	for _, tt := range tests {
		got, err := ParseSeparator(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseSeparator(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseSeparator("colon"); err == nil {
		t.Error("ParseSeparator(colon) error = nil")
	}
}

func TestFormatPowerState(t *testing.T) {
	tests := []struct {
		name string
		in   PowerState
		want string
	}{
		{"disabled", PowerState{Percent: 50}, ""},
		{"discharging", PowerState{Enabled: true, Percent: 85}, "85%"},
		{"charging", PowerState{Enabled: true, Percent: 42, Charging: true}, "42%+"},
		{"clamped high", PowerState{Enabled: true, Percent: 130}, "100%"},
		{"clamped low", PowerState{Enabled: true, Percent: -3}, "0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPowerState(tt.in); got != tt.want {
				t.Errorf("FormatPowerState() = %q, want %q", got, tt.want)
			}
		})
	}
}
