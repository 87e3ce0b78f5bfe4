// Package loader implements vk.Driver on top of the system Vulkan loader.
package loader

import (
	"fmt"
	"unsafe"

	vulkan "github.com/vulkan-go/vulkan"

	"dasa.cc/triangle/set"
	"dasa.cc/triangle/vk"
)

// Driver talks to Vulkan through the loader entry point it was opened with.
type Driver struct{}

// Open binds the bindings to procAddr, the loader's vkGetInstanceProcAddr,
// usually obtained from the window system.
func Open(procAddr unsafe.Pointer) (*Driver, error) {
	if procAddr == nil {
		return nil, fmt.Errorf("%w: no vkGetInstanceProcAddr", vk.ErrLoaderUnavailable)
	}
	vulkan.SetGetInstanceProcAddr(procAddr)
	if err := vulkan.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", vk.ErrLoaderUnavailable, err)
	}
	return &Driver{}, nil
}

func (*Driver) Layers() ([]string, error) {
	var n uint32
	if res := vulkan.EnumerateInstanceLayerProperties(&n, nil); res != vulkan.Success {
		return nil, vulkan.Error(res)
	}
	props := make([]vulkan.LayerProperties, n)
	if res := vulkan.EnumerateInstanceLayerProperties(&n, props); res != vulkan.Success {
		return nil, vulkan.Error(res)
	}
	names := make([]string, 0, n)
	for i := range props[:n] {
		props[i].Deref()
		names = append(names, vulkan.ToString(props[i].LayerName[:]))
	}
	return names, nil
}

func (*Driver) Extensions() ([]string, error) {
	var n uint32
	if res := vulkan.EnumerateInstanceExtensionProperties("", &n, nil); res != vulkan.Success {
		return nil, vulkan.Error(res)
	}
	props := make([]vulkan.ExtensionProperties, n)
	if res := vulkan.EnumerateInstanceExtensionProperties("", &n, props); res != vulkan.Success {
		return nil, vulkan.Error(res)
	}
	names := make([]string, 0, n)
	for i := range props[:n] {
		props[i].Deref()
		names = append(names, vulkan.ToString(props[i].ExtensionName[:]))
	}
	return names, nil
}

func (*Driver) CreateInstance(d vk.Descriptor) (vk.Handle, error) {
	appInfo := vulkan.ApplicationInfo{
		SType:              vulkan.StructureTypeApplicationInfo,
		PApplicationName:   safeString(d.App.Name),
		ApplicationVersion: d.App.Version,
		PEngineName:        safeString(d.App.EngineName),
		EngineVersion:      d.App.EngineVersion,
		ApiVersion:         d.App.APIVersion,
	}

	createInfo := vulkan.InstanceCreateInfo{
		SType:                   vulkan.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(d.Extensions)),
		PpEnabledExtensionNames: safeStrings(d.Extensions),
		EnabledLayerCount:       uint32(len(d.Layers)),
		PpEnabledLayerNames:     safeStrings(d.Layers),
	}

	var instance vulkan.Instance
	if res := vulkan.CreateInstance(&createInfo, nil, &instance); res != vulkan.Success {
		return nil, vulkan.Error(res)
	}
	if err := vulkan.InitInstance(instance); err != nil {
		vulkan.DestroyInstance(instance, nil)
		return nil, err
	}

	h := &handle{instance: instance}
	if len(d.Layers) > 0 && set.Of(d.Extensions...).Has(vk.DebugReportExtension) {
		if err := h.attachDebugReport(); err != nil {
			// the instance is usable without it
			vk.Logger().Warn("debug report callback", "err", err)
		}
	}
	return h, nil
}

type handle struct {
	instance vulkan.Instance
	debug    vulkan.DebugReportCallback
}

func (h *handle) attachDebugReport() error {
	createInfo := vulkan.DebugReportCallbackCreateInfo{
		SType: vulkan.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vulkan.DebugReportFlags(
			vulkan.DebugReportErrorBit |
				vulkan.DebugReportWarningBit |
				vulkan.DebugReportPerformanceWarningBit),
		PfnCallback: debugReport,
	}
	if res := vulkan.CreateDebugReportCallback(h.instance, &createInfo, nil, &h.debug); res != vulkan.Success {
		return vulkan.Error(res)
	}
	return nil
}

func (h *handle) Destroy() {
	if h.debug != vulkan.DebugReportCallback(vulkan.NullHandle) {
		vulkan.DestroyDebugReportCallback(h.instance, h.debug, nil)
	}
	vulkan.DestroyInstance(h.instance, nil)
}

func debugReport(flags vulkan.DebugReportFlags, objectType vulkan.DebugReportObjectType, object uint64, location uint, messageCode int32, layerPrefix string, message string, userData unsafe.Pointer) vulkan.Bool32 {
	log := vk.Logger().With("layer", layerPrefix, "code", messageCode)
	if flags&vulkan.DebugReportFlags(vulkan.DebugReportErrorBit) != 0 {
		log.Error(message)
	} else {
		log.Warn(message)
	}
	return vulkan.False
}

// safeString null-terminates s; the bindings hand string data to C as is.
func safeString(s string) string {
	if len(s) == 0 || s[len(s)-1] != 0 {
		return s + "\x00"
	}
	return s
}

func safeStrings(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = safeString(s)
	}
	return out
}
