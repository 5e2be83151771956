package menugfx

import "errors"

// Display errors.
var (
	// ErrNoDriver is returned by InitFirstDriver when no registered
	// driver is compatible with the environment.
	ErrNoDriver = errors.New("menugfx: no compatible display driver")

	// ErrDriverNotBound is returned by operations that need a driver
	// while none is bound.
	ErrDriverNotBound = errors.New("menugfx: no display driver bound")

	// ErrTexturesUnsupported is returned when the bound driver cannot
	// load textures.
	ErrTexturesUnsupported = errors.New("menugfx: display driver cannot load textures")

	// ErrUnknownDriver is returned when a display driver is requested
	// by a name nothing is registered under.
	ErrUnknownDriver = errors.New("menugfx: unknown display driver")
)
