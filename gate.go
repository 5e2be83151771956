package menugfx

// Animator reports whether any animation is running.
type Animator interface {
	Active() bool
}

// UpdatePending reports whether a redraw is needed: an animation is
// running or something marked the display dirty.
func UpdatePending(animActive, dirty bool) bool {
	return animActive || dirty
}

// UpdatePending reports whether the display needs a redraw given the
// animation state of anim, which may be nil. It does not clear the
// dirty flag.
func (d *Display) UpdatePending(anim Animator) bool {
	active := anim != nil && anim.Active()
	return UpdatePending(active, d.dirty)
}
