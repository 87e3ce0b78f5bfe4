package vk_test

import (
	"fmt"
	"os"

	"dasa.cc/triangle/vk"
)

func ExampleMakeVersion() {
	v := vk.MakeVersion(1, 3, 250)
	fmt.Println(vk.Version(v))
	// Output: 1 3 250
}

func ExamplePrintExtensions() {
	vk.PrintExtensions(os.Stdout, []string{"VK_KHR_surface", "VK_KHR_xlib_surface"})
	// Output:
	// Extensions :
	//	VK_KHR_surface
	//	VK_KHR_xlib_surface
}
