// Package status formats the clock and battery text shown in menu
// headers. Formatting appends into caller-owned buffers.
package status
