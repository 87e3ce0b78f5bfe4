// Package vk creates a Vulkan instance, optionally with validation layers.
//
// The package itself never calls into Vulkan. All platform access goes
// through a Driver; package dasa.cc/triangle/vk/loader provides one backed
// by the system Vulkan loader.
package vk

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationLayersUnavailable is returned when validation is enabled
	// but a requested layer is not offered by the platform.
	ErrValidationLayersUnavailable = errors.New("validation layers requested, but not available")

	// ErrInstanceCreationFailed is returned when the driver rejects the
	// instance descriptor.
	ErrInstanceCreationFailed = errors.New("failed to create instance")

	// ErrLoaderUnavailable is returned by drivers that cannot reach a Vulkan loader.
	ErrLoaderUnavailable = errors.New("vulkan loader unavailable")
)

// KhronosValidation is the standard validation layer shipped with the SDK.
const KhronosValidation = "VK_LAYER_KHRONOS_validation"

// DebugReportExtension is enabled alongside validation layers when the
// platform offers it, so layer messages can be routed to the logger.
const DebugReportExtension = "VK_EXT_debug_report"

// DefaultValidationLayers lists the layers requested when validation is on.
func DefaultValidationLayers() []string { return []string{KhronosValidation} }

// CheckVersion reports an error if a part of the triple does not fit its
// field in a packed version: 10 bits of major and minor, 12 of patch.
func CheckVersion(major, minor, patch uint32) error {
	if major > 0x3ff || minor > 0x3ff || patch > 0xfff {
		return fmt.Errorf("version %v.%v.%v out of range", major, minor, patch)
	}
	return nil
}

// MakeVersion packs a version triple the way VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) uint32 {
	return (major << 22) | (minor << 12) | patch
}

// Version unpacks v into its major, minor and patch parts.
func Version(v uint32) (major, minor, patch uint32) {
	return v >> 22, (v >> 12) & 0x3ff, v & 0xfff
}

// AppInfo is the application metadata handed to the driver.
type AppInfo struct {
	Name          string
	Version       uint32
	EngineName    string
	EngineVersion uint32
	APIVersion    uint32
}

// DefaultAppInfo returns the metadata of the triangle test application.
func DefaultAppInfo() AppInfo {
	return AppInfo{
		Name:          "Test Triangle",
		Version:       MakeVersion(1, 0, 0),
		EngineName:    "No Engine",
		EngineVersion: MakeVersion(1, 0, 0),
		APIVersion:    MakeVersion(1, 0, 0),
	}
}

// Descriptor is everything a driver needs to realize an instance.
// Extensions built by Instance.Create are sorted and distinct.
type Descriptor struct {
	App        AppInfo
	Extensions []string
	Layers     []string
}

// Handle is a live instance realized by a Driver.
type Handle interface {
	// Destroy releases the instance. It must only be called once.
	Destroy()
}

// Driver is the boundary to the platform's Vulkan implementation.
type Driver interface {
	// Layers lists the names of the instance layers the platform offers.
	Layers() ([]string, error)

	// Extensions lists the names of the instance extensions the platform offers.
	Extensions() ([]string, error)

	// CreateInstance realizes d. A non-nil error means no instance exists.
	CreateInstance(d Descriptor) (Handle, error)
}
