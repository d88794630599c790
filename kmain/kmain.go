// Package kmain contains the kernel entry sequence invoked by the boot
// shim once the CPU runs in protected mode with a usable stack.
package kmain

import (
	"github.com/edukern/minikern/device/video/vga"
	"github.com/edukern/minikern/kernel/kfmt"
	"github.com/edukern/minikern/kernel/multiboot"
)

const (
	bannerRule  = "================================================================================"
	bannerTitle = "                     Welcome to Mini Educational Kernel!"
)

// Kmain initializes the console, prints the startup banner and reports
// the multiboot handshake. It receives magic and infoPtr exactly as the
// boot shim passes them; the console is injected so the entry sequence
// can run against emulated hardware as well as the real framebuffer.
//
// Kmain returns to its caller; halting the CPU is the boot shim's job.
func Kmain(magic uint32, infoPtr uintptr, cons *vga.Console) {
	cons.Init()

	cons.SetAttr(vga.MakeAttr(vga.LightGreen, vga.Black))
	cons.Println(bannerRule)
	cons.Println(bannerTitle)
	cons.Println(bannerRule)
	cons.Println("")

	cons.SetAttr(vga.MakeAttr(vga.LightGrey, vga.Black))

	if multiboot.Valid(magic) {
		kfmt.Fprintf(cons, "Multiboot: OK (magic = 0x%x)\n", magic)
		kfmt.Fprintf(cons, "Multiboot info at: %p\n", infoPtr)
	} else {
		// Reported as a diagnostic only; the kernel keeps running
		// without the boot information record.
		cons.SetAttr(vga.MakeAttr(vga.LightRed, vga.Black))
		kfmt.Fprintf(cons, "Warning: Invalid multiboot magic (0x%x)\n", magic)
		cons.SetAttr(vga.MakeAttr(vga.LightGrey, vga.Black))
	}

	cons.Println("")
	cons.Println("Kernel initialized successfully!")
	cons.Println("")

	cons.SetAttr(vga.MakeAttr(vga.Cyan, vga.Black))
	cons.Println("System halted. More features coming soon...")
}
