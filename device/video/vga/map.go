package vga

import "unsafe"

// Map overlays a cell slice on the memory mapped framebuffer at addr.
// This is only meaningful on real hardware where the text mode buffer is
// identity mapped; everything else should hand New an ordinary slice.
func Map(addr uintptr) []uint16 {
	return unsafe.Slice((*uint16)(unsafe.Pointer(addr)), int(Width)*int(Height))
}
