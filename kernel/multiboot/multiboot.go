// Package multiboot holds the part of the multiboot handshake the kernel
// consumes at this stage: the bootloader magic value the entry point
// validates before trusting the boot information record.
package multiboot

// Magic is the value a multiboot compliant bootloader leaves in EAX when
// transferring control to the kernel.
const Magic uint32 = 0x2BADB002

// Valid reports whether magic matches the multiboot specification value.
// A mismatch means the boot information pointer cannot be trusted; the
// kernel reports it as a diagnostic and keeps running.
func Valid(magic uint32) bool {
	return magic == Magic
}
