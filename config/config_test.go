package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/menugfx/status"
)

const sampleTOML = `
video_driver = "vulkan"
menu_driver = "ozone"
display_driver = "software"
menu_scale_factor = 1.5

[fonts]
menu = "/usr/share/fonts/menu.ttf"

[datetime]
style = "hm_ampm"
separator = "slash"
`

const sampleYAML = `
video_driver: gl
menu_driver: glui
widget_scale_auto: false
widget_scale_factor: 2
show_battery: false
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	s, err := Load(writeFile(t, "menu.toml", sampleTOML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.VideoDriver != "vulkan" || s.MenuDriver != "ozone" || s.DisplayDriver != "software" {
		t.Errorf("drivers = %q %q %q", s.VideoDriver, s.MenuDriver, s.DisplayDriver)
	}
	if s.MenuScaleFactor != 1.5 {
		t.Errorf("MenuScaleFactor = %v, want 1.5", s.MenuScaleFactor)
	}
	if s.Fonts.Menu != "/usr/share/fonts/menu.ttf" {
		t.Errorf("Fonts.Menu = %q", s.Fonts.Menu)
	}
	// Unset keys keep their defaults.
	if s.WidgetScaleFactor != 1 || !s.ShowBattery {
		t.Errorf("defaults lost: %+v", s)
	}
	want := status.Datetime{Style: status.StyleHMAMPM, Separator: status.SeparatorSlash}
	if got := s.DatetimeRequest(); got != want {
		t.Errorf("DatetimeRequest() = %+v, want %+v", got, want)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"menu.yaml", "menu.yml"} {
		s, err := Load(writeFile(t, name, sampleYAML))
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if s.VideoDriver != "gl" || s.MenuDriver != "glui" {
			t.Errorf("%s: drivers = %q %q", name, s.VideoDriver, s.MenuDriver)
		}
		if s.WidgetScaleAuto || s.WidgetScaleFactor != 2 || s.ShowBattery {
			t.Errorf("%s: widget/battery = %+v", name, s)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    string
		invalid bool
	}{
		{"unknown extension", "menu.ini", "x=1", true},
		{"bad toml", "menu.toml", "menu_driver = [", false},
		{"zero scale", "menu.toml", "menu_scale_factor = 0", true},
		{"bad style", "menu.yaml", "datetime:\n  style: weekday\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.data))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalid) = %v, want %v (err = %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadOptional(t *testing.T) {
	s, err := LoadOptional(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if s != Default() {
		t.Errorf("LoadOptional() = %+v, want defaults", s)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(absent) error = %v, want ErrNotExist", err)
	}
}

func TestValidateDisplayDriver(t *testing.T) {
	s := Default()
	s.DisplayDriver = "Vulkan"
	known := func(name string) bool { return name == "Vulkan" }

	if err := s.Validate(known); err != nil {
		t.Errorf("Validate(known) error = %v", err)
	}
	if err := s.Validate(nil); err != nil {
		t.Errorf("Validate(nil) error = %v", err)
	}
	s.DisplayDriver = "glide"
	if err := s.Validate(known); !errors.Is(err, ErrInvalid) {
		t.Errorf("Validate(unknown) error = %v, want ErrInvalid", err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(nil); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestWatcherReloads(t *testing.T) {
	path := writeFile(t, "menu.toml", sampleTOML)
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Settings, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(s Settings, err error) {
			if err == nil {
				select {
				case got <- s:
				default:
				}
			}
		})
	}()

	if err := os.WriteFile(path, []byte(`menu_driver = "rgui"`), 0o600); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-got:
			if s.MenuDriver != "rgui" {
				continue
			}
			cancel()
			if err := <-done; !errors.Is(err, context.Canceled) {
				t.Errorf("Run() error = %v, want context.Canceled", err)
			}
			return
		case <-timeout:
			t.Fatal("no reload within 5s")
		}
	}
}
