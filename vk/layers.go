package vk

import (
	"fmt"

	"dasa.cc/triangle/set"
)

// CheckValidationLayerSupport reports whether every requested layer is
// offered by the driver. Names must match exactly. The returned slice lists
// the requested layers that were not found, in request order.
func CheckValidationLayerSupport(driver Driver, requested []string) (missing []string, err error) {
	available, err := driver.Layers()
	if err != nil {
		return nil, fmt.Errorf("enumerate instance layers: %w", err)
	}
	Logger().Debug("instance layers", "available", available)

	missing = set.Of(available...).Missing(requested...)
	for _, name := range missing {
		Logger().Debug("validation layer missing", "layer", name)
	}
	return missing, nil
}
