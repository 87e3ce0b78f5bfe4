// Package app bootstraps a window and a Vulkan instance, runs the event
// loop until the window is closed and releases everything in reverse.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"dasa.cc/triangle/nui"
	"dasa.cc/triangle/vk"
)

// Bootstrapper owns the window and instance for the length of Run.
type Bootstrapper struct {
	Config   Config
	Platform nui.Platform

	// OpenDriver is called once the window system is up, since the loader
	// entry point usually comes from it.
	OpenDriver func() (vk.Driver, error)

	// Diagnostics receives the available extension list. Nil discards it.
	Diagnostics io.Writer

	// Log defaults to vk.Logger().
	Log *slog.Logger

	window   nui.Window
	instance vk.Instance
}

func (b *Bootstrapper) log() *slog.Logger {
	if b.Log != nil {
		return b.Log
	}
	return vk.Logger()
}

// Run initializes the window and instance, loops until the window should
// close or ctx is done, then tears down. Whatever was acquired is released,
// newest first, on every return path.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if b.Platform == nil || b.OpenDriver == nil {
		return errors.New("app: bootstrapper needs a platform and a driver")
	}
	if err := b.Config.Validate(); err != nil {
		return err
	}

	var r releaser
	defer r.release()

	if err := b.initWindow(&r); err != nil {
		return err
	}
	if err := b.initVulkan(&r); err != nil {
		return err
	}
	b.mainLoop(ctx)
	return nil
}

func (b *Bootstrapper) initWindow(r *releaser) error {
	if err := b.Platform.Init(); err != nil {
		return err
	}
	r.push(b.Platform.Terminate)

	w, err := b.Platform.CreateWindow(b.Config.Window)
	if err != nil {
		return err
	}
	b.window = w
	r.push(func() {
		b.window.Destroy()
		b.window = nil
	})

	width, height := w.Size()
	b.log().Debug("window created", "width", width, "height", height, "resizable", w.Resizable())
	return nil
}

func (b *Bootstrapper) initVulkan(r *releaser) error {
	if !b.Platform.VulkanSupported() {
		return fmt.Errorf("%w: window system found no vulkan loader", vk.ErrLoaderUnavailable)
	}
	driver, err := b.OpenDriver()
	if err != nil {
		return err
	}

	b.instance = vk.Instance{
		AppInfo:                b.Config.App.Info(),
		Extensions:             b.window.RequiredInstanceExtensions(),
		ValidationLayers:       b.Config.ValidationLayers,
		EnableValidationLayers: b.Config.Validation,
		Diagnostics:            b.Diagnostics,
	}
	if err := b.instance.Create(driver); err != nil {
		return err
	}
	r.push(b.instance.Destroy)

	desc := b.instance.Descriptor()
	major, minor, patch := vk.Version(desc.App.APIVersion)
	b.log().Debug("vulkan ready",
		"api", fmt.Sprintf("%d.%d.%d", major, minor, patch),
		"extensions", desc.Extensions,
		"layers", desc.Layers)
	return nil
}

func (b *Bootstrapper) mainLoop(ctx context.Context) {
	b.log().Debug("entering event loop")
	nui.Loop(ctx, b.window, b.Platform.PollEvents)
	b.log().Debug("window closed")
}

// releaser runs its funcs last in, first out.
type releaser []func()

func (r *releaser) push(fn func()) { *r = append(*r, fn) }

func (r *releaser) release() {
	for i := len(*r) - 1; i >= 0; i-- {
		(*r)[i]()
	}
	*r = nil
}
