// Package nui aims to be unremarkable in aiding windowing.
//
// It describes the little a Vulkan application needs from a window system:
// a window without a client API context, an event poll, and the instance
// extensions the window system needs to present. Package
// dasa.cc/triangle/nui/desktop implements it with GLFW.
package nui

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInitFailed is returned when the window system cannot be initialized.
	ErrInitFailed = errors.New("window system init failed")

	// ErrWindowCreationFailed is returned when no window could be created.
	ErrWindowCreationFailed = errors.New("window creation failed")
)

// Config describes the window to create.
type Config struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

// DefaultConfig is a fixed 800x600 window titled "Vulkan".
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, Title: "Vulkan"}
}

// Validate reports whether c describes a window that can be created.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %vx%v", c.Width, c.Height)
	}
	return nil
}

// Platform is a window system. Its methods must be called from the main thread.
type Platform interface {
	// Init initializes global window system state; Terminate undoes it.
	Init() error
	Terminate()

	// VulkanSupported reports whether a Vulkan loader was found.
	VulkanSupported() bool

	// CreateWindow opens a window without a client API context.
	CreateWindow(Config) (Window, error)

	// PollEvents processes pending events and returns.
	PollEvents()
}

// Window is a native window owned by its creator until Destroy.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)

	// Size is the client area in screen coordinates.
	Size() (width, height int)
	Resizable() bool

	// RequiredInstanceExtensions lists the instance extensions needed to
	// present to this window.
	RequiredInstanceExtensions() []string

	Destroy()
}

// Loop polls events until w should close.
//
// The should-close flag is checked before every poll, so Loop returns right
// after the poll that set it. Cancelling ctx sets the flag.
func Loop(ctx context.Context, w Window, poll func()) {
	for !w.ShouldClose() {
		select {
		case <-ctx.Done():
			w.SetShouldClose(true)
			continue
		default:
		}
		poll()
	}
}
