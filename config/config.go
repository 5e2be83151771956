package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/menugfx/status"
)

// ErrInvalid is returned for settings that cannot be used.
var ErrInvalid = errors.New("config: invalid settings")

// Settings holds the user-facing configuration that display code reads.
type Settings struct {
	// VideoDriver is the ident of the active video driver.
	VideoDriver string `toml:"video_driver" yaml:"video_driver"`

	// MenuDriver names the menu implementation (rgui, ozone, glui, xmb,
	// xui, stripes).
	MenuDriver string `toml:"menu_driver" yaml:"menu_driver"`

	// DisplayDriver is probed first when set. Empty selects the first
	// compatible driver.
	DisplayDriver string `toml:"display_driver" yaml:"display_driver"`

	MenuScaleFactor float32 `toml:"menu_scale_factor" yaml:"menu_scale_factor"`

	WidgetScaleAuto           bool    `toml:"widget_scale_auto" yaml:"widget_scale_auto"`
	WidgetScaleFactor         float32 `toml:"widget_scale_factor" yaml:"widget_scale_factor"`
	WidgetScaleFactorWindowed float32 `toml:"widget_scale_factor_windowed" yaml:"widget_scale_factor_windowed"`

	// AssetsDir is the root of the menu asset tree.
	AssetsDir string `toml:"assets_dir" yaml:"assets_dir"`

	Fonts    Fonts    `toml:"fonts" yaml:"fonts"`
	Datetime Datetime `toml:"datetime" yaml:"datetime"`

	ShowBattery bool `toml:"show_battery" yaml:"show_battery"`
	Shadows     bool `toml:"shadows" yaml:"shadows"`
}

// Fonts overrides the font file used for each purpose. Empty entries
// use the menu driver's asset font.
type Fonts struct {
	Menu   string `toml:"menu" yaml:"menu"`
	OSK    string `toml:"osk" yaml:"osk"`
	Widget string `toml:"widget" yaml:"widget"`
}

// Datetime selects the clock format.
type Datetime struct {
	Style     string `toml:"style" yaml:"style"`
	Separator string `toml:"separator" yaml:"separator"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		MenuDriver:                "xmb",
		MenuScaleFactor:           1,
		WidgetScaleAuto:           true,
		WidgetScaleFactor:         1,
		WidgetScaleFactorWindowed: 1,
		Datetime: Datetime{
			Style:     status.StyleYMDHMS.String(),
			Separator: status.SeparatorHyphen.String(),
		},
		ShowBattery: true,
		Shadows:     true,
	}
}

// Load reads settings from path over Default. The format follows the
// extension: .toml, .yaml or .yml.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// LoadOptional is Load, but a missing file yields Default.
func LoadOptional(path string) (Settings, error) {
	s, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return s, err
}

// Parse decodes data in the format named by ext over Default and
// validates the result.
func Parse(ext string, data []byte) (Settings, error) {
	s := Default()
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: unsupported format %q", ErrInvalid, ext)
	}
	if err := s.Validate(nil); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks s. exists, when non-nil, reports whether a display
// driver name is registered; an unknown DisplayDriver is then an error.
func (s Settings) Validate(exists func(name string) bool) error {
	var errs []error
	if s.MenuScaleFactor <= 0 {
		errs = append(errs, fmt.Errorf("%w: menu_scale_factor %v must be positive", ErrInvalid, s.MenuScaleFactor))
	}
	if s.WidgetScaleFactor <= 0 {
		errs = append(errs, fmt.Errorf("%w: widget_scale_factor %v must be positive", ErrInvalid, s.WidgetScaleFactor))
	}
	if s.WidgetScaleFactorWindowed <= 0 {
		errs = append(errs, fmt.Errorf("%w: widget_scale_factor_windowed %v must be positive", ErrInvalid, s.WidgetScaleFactorWindowed))
	}
	if _, err := status.ParseStyle(s.Datetime.Style); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if _, err := status.ParseSeparator(s.Datetime.Separator); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if exists != nil && s.DisplayDriver != "" && !exists(s.DisplayDriver) {
		errs = append(errs, fmt.Errorf("%w: unknown display_driver %q", ErrInvalid, s.DisplayDriver))
	}
	return errors.Join(errs...)
}

// DatetimeRequest converts the clock settings. Invalid names fall back
// to the defaults.
func (s Settings) DatetimeRequest() status.Datetime {
	style, err := status.ParseStyle(s.Datetime.Style)
	if err != nil {
		style = status.StyleYMDHMS
	}
	sep, err := status.ParseSeparator(s.Datetime.Separator)
	if err != nil {
		sep = status.SeparatorHyphen
	}
	return status.Datetime{Style: style, Separator: sep}
}
