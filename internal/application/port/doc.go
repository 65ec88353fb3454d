// Package port defines the interfaces the window manager use cases need
// from the outside world: the native window system, event subscribers,
// command execution and filesystem locations.
package port
