// Package driver defines the contract between the menu display layer and
// its graphics backends.
//
// # Drivers
//
// A Driver turns backend-neutral Draw values into calls against one
// graphics API. Each backend family registers a Descriptor from an init
// function in its own package:
//
//	import _ "github.com/gogpu/menugfx/driver/software"
//
// # Selection
//
// Registry.InitFirst walks the registered drivers in the fixed Priority
// order and binds the first whose Probe accepts the active video driver:
//
//	d, err := driver.DefaultRegistry().InitFirst(driver.ProbeContext{
//		VideoDriver: "vulkan",
//		Device:      provider,
//	})
//
// # Capabilities
//
// HandlesTransform is the main extension point: drivers returning false
// receive vertices that are already rotated and scaled; drivers returning
// true receive untouched vertices with raw rotation and scale, and
// compose them with their projection through Draw.MVP.
//
// Optional behaviour is discovered through small interfaces:
// TextureLoader, TopologyPreferrer, io.Closer and SetLogger(*slog.Logger).
package driver
