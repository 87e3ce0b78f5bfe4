package vk

import (
	"fmt"
	"io"
	"strings"

	"dasa.cc/triangle/set"
)

// Instance owns a single Vulkan instance from Create until Destroy.
type Instance struct {
	AppInfo

	// Extensions are the instance extensions the window system requires.
	Extensions []string

	ValidationLayers       []string
	EnableValidationLayers bool

	// Diagnostics receives the list of available extensions once the
	// instance exists. Nil discards it.
	Diagnostics io.Writer

	desc   Descriptor
	handle Handle
}

// Create checks layer support when validation is enabled, then realizes
// the instance through driver.
//
// With validation disabled the driver's layers are never enumerated.
func (instance *Instance) Create(driver Driver) error {
	if instance.alive() {
		return fmt.Errorf("%w: instance already created", ErrInstanceCreationFailed)
	}

	desc := Descriptor{
		App:        instance.AppInfo,
		Extensions: append([]string(nil), instance.Extensions...),
	}

	var available []string
	if instance.EnableValidationLayers {
		missing, err := CheckValidationLayerSupport(driver, instance.ValidationLayers)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidationLayersUnavailable, err)
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: missing %s", ErrValidationLayersUnavailable, strings.Join(missing, ", "))
		}
		desc.Layers = append([]string(nil), instance.ValidationLayers...)

		// debug report is optional; without it validation still runs, its
		// messages just go to the loader's default output.
		if available, err = driver.Extensions(); err != nil {
			Logger().Warn("enumerate instance extensions", "err", err)
		} else if set.Of(available...).Has(DebugReportExtension) {
			desc.Extensions = append(desc.Extensions, DebugReportExtension)
		}
	}
	set.Filter(&desc.Extensions)

	handle, err := driver.CreateInstance(desc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInstanceCreationFailed, err)
	}
	instance.desc = desc
	instance.handle = handle
	Logger().Info("instance created", "app", desc.App.Name, "extensions", len(desc.Extensions), "layers", len(desc.Layers))

	if instance.Diagnostics != nil {
		if available == nil {
			if available, err = driver.Extensions(); err != nil {
				Logger().Warn("enumerate instance extensions", "err", err)
				return nil
			}
		}
		PrintExtensions(instance.Diagnostics, available)
	}
	return nil
}

// Descriptor returns the descriptor the live instance was created from.
func (instance *Instance) Descriptor() Descriptor { return instance.desc }

// alive reports whether the instance has been created and not yet destroyed.
func (instance *Instance) alive() bool { return instance.handle != nil }

// Destroy releases the instance. Calling it again, or before Create, does nothing.
func (instance *Instance) Destroy() {
	if !instance.alive() {
		return
	}
	instance.handle.Destroy()
	instance.handle = nil
	Logger().Debug("instance destroyed")
}

// PrintExtensions writes names as a tab-indented list under an "Extensions :" header.
func PrintExtensions(w io.Writer, names []string) {
	fmt.Fprintln(w, "Extensions :")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s\n", name)
	}
}
