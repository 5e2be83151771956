package menugfx

import (
	"github.com/gogpu/menugfx/config"
	"github.com/gogpu/menugfx/driver"
)

// Option configures a Display during creation.
//
// Example:
//
//	d := menugfx.New(
//		menugfx.WithSettings(settings),
//		menugfx.WithDevice(provider),
//	)
type Option func(*options)

// Metrics reports physical display properties.
type Metrics interface {
	// DPI returns the display density in dots per inch, or false when
	// it is unknown.
	DPI() (float32, bool)
}

// options holds optional configuration for Display creation.
type options struct {
	registry     *driver.Registry
	settings     config.Settings
	videoDriver  string
	device       any
	metrics      Metrics
	scissorCheck bool
	menuDriver   MenuDriverID
}

func defaultOptions() options {
	return options{
		registry: driver.DefaultRegistry(),
		settings: config.Default(),
	}
}

// WithRegistry probes drivers from r instead of the default registry.
func WithRegistry(r *driver.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithSettings sets the display settings.
func WithSettings(s config.Settings) Option {
	return func(o *options) {
		o.settings = s
	}
}

// WithVideoDriver sets the active video driver ident drivers are probed
// against. It overrides the settings' video driver.
func WithVideoDriver(ident string) Option {
	return func(o *options) {
		o.videoDriver = ident
	}
}

// WithDevice passes a host-owned device handle to driver probes, for
// example a gpucontext.DeviceProvider or a terminal screen.
func WithDevice(dev any) Option {
	return func(o *options) {
		o.device = dev
	}
}

// WithMetrics supplies the display density used by DPI scaling.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithScissorCheck enables warnings for unbalanced ScissorBegin and
// ScissorEnd calls.
func WithScissorCheck(enabled bool) Option {
	return func(o *options) {
		o.scissorCheck = enabled
	}
}

// WithMenuDriver overrides the menu implementation named in settings.
func WithMenuDriver(id MenuDriverID) Option {
	return func(o *options) {
		o.menuDriver = id
	}
}
