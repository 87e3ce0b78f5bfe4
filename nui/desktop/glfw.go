// Package desktop implements nui with GLFW.
package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"dasa.cc/triangle/nui"
)

// Platform is the GLFW window system.
type Platform struct{}

func (Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", nui.ErrInitFailed, err)
	}
	return nil
}

func (Platform) Terminate() { glfw.Terminate() }

func (Platform) VulkanSupported() bool { return glfw.VulkanSupported() }

func (Platform) PollEvents() { glfw.PollEvents() }

// ProcAddr returns the loader's vkGetInstanceProcAddr as found by GLFW.
// Only valid after Init.
func (Platform) ProcAddr() unsafe.Pointer { return glfw.GetVulkanGetInstanceProcAddress() }

func (Platform) CreateWindow(cfg nui.Config) (nui.Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", nui.ErrWindowCreationFailed, err)
	}

	// vulkan manages its own context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", nui.ErrWindowCreationFailed, err)
	}
	return window{w}, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

type window struct{ w *glfw.Window }

func (w window) ShouldClose() bool     { return w.w.ShouldClose() }
func (w window) SetShouldClose(b bool) { w.w.SetShouldClose(b) }
func (w window) Size() (int, int)      { return w.w.GetSize() }
func (w window) Resizable() bool       { return w.w.GetAttrib(glfw.Resizable) == glfw.True }
func (w window) Destroy()              { w.w.Destroy() }

func (w window) RequiredInstanceExtensions() []string {
	return w.w.GetRequiredInstanceExtensions()
}
