// Package cache provides the bounded LRU map the font package uses to
// remember text measurements between frames.
package cache
