package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dasa.cc/triangle/vk"
)

func TestSafeString(t *testing.T) {
	assert.Equal(t, "\x00", safeString(""))
	assert.Equal(t, "VK_KHR_surface\x00", safeString("VK_KHR_surface"))
	assert.Equal(t, "VK_KHR_surface\x00", safeString("VK_KHR_surface\x00"))
}

func TestSafeStrings(t *testing.T) {
	assert.Nil(t, safeStrings(nil))

	in := []string{vk.KhronosValidation, "VK_EXT_debug_report\x00"}
	out := safeStrings(in)
	assert.Equal(t, []string{vk.KhronosValidation + "\x00", "VK_EXT_debug_report\x00"}, out)
	assert.Equal(t, vk.KhronosValidation, in[0], "input modified")
}

func TestOpenWithoutProcAddr(t *testing.T) {
	_, err := Open(nil)
	assert.ErrorIs(t, err, vk.ErrLoaderUnavailable)
}
