// Package menugfx is the drawing layer between menu code and the
// display driver of the active video backend.
//
// # Overview
//
// Menu code draws through a Display: quads, polygons, icons, nine-slice
// panels, cursors, the on-screen keyboard, backgrounds, text and
// animated pipeline effects. The Display turns each request into a
// backend-neutral driver.Draw and hands it to the one driver bound to
// it. Which driver that is gets decided at runtime by probing the
// registered drivers against the active video driver.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/menugfx"
//		_ "github.com/gogpu/menugfx/driver/software"
//	)
//
//	d := menugfx.New(menugfx.WithVideoDriver("gl"))
//	d.SetWidth(1280)
//	d.SetHeight(720)
//	if err := d.InitFirstDriver(false); err != nil {
//		return err
//	}
//	defer d.Free()
//
//	d.BeginFrame()
//	d.DrawQuad(0, 0, 1280, 48, &header, 0)
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the framebuffer
//   - X increases right, Y increases down, units are pixels
//   - Rotations are in radians and turn clockwise on screen
//
// # Redraws
//
// Every dispatched draw and every setter that changes state marks the
// display dirty. UpdatePending combines the dirty flag with the
// animation state so callers can skip frames that would not change.
package menugfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
