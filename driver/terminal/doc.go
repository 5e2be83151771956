// Package terminal implements a display driver that renders the menu
// overlay into a character-cell screen.
//
// Each cell stands for a block of framebuffer pixels. Geometry is
// sampled at cell centres and painted as cell background color; text
// is written as runes on top. Drop shadows and sub-cell detail are
// lost.
package terminal
