// Command vgasim runs the kernel text output path against an emulated
// VGA device and renders the framebuffer in a terminal. Keyboard input is
// fed straight into the console driver, so typing exercises the tab,
// backspace and scroll behavior of the real output path. Press ESC to
// quit.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/edukern/minikern/device/port"
	"github.com/edukern/minikern/device/video/vga"
	"github.com/edukern/minikern/kernel/multiboot"
	"github.com/edukern/minikern/kmain"
)

// bootInfoAddr is an arbitrary address standing in for the multiboot
// information record a real bootloader would provide.
const bootInfoAddr uintptr = 0x10000

// palette maps the 16 text mode color indices to tcell colors.
var palette = [16]tcell.Color{
	tcell.ColorBlack,
	tcell.ColorNavy,
	tcell.ColorGreen,
	tcell.ColorTeal,
	tcell.ColorMaroon,
	tcell.ColorPurple,
	tcell.ColorOlive,
	tcell.ColorSilver,
	tcell.ColorGray,
	tcell.ColorBlue,
	tcell.ColorLime,
	tcell.ColorAqua,
	tcell.ColorRed,
	tcell.ColorFuchsia,
	tcell.ColorYellow,
	tcell.ColorWhite,
}

type simulator struct {
	screen tcell.Screen

	fb   []uint16
	crtc *port.CRTC
	cons *vga.Console
}

func newSimulator() (*simulator, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	fb := make([]uint16, int(vga.Width)*int(vga.Height))
	crtc := new(port.CRTC)

	return &simulator{
		screen: screen,
		fb:     fb,
		crtc:   crtc,
		cons:   vga.New(fb, crtc),
	}, nil
}

func (s *simulator) run() {
	kmain.Kmain(multiboot.Magic, bootInfoAddr, s.cons)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- s.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !s.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			s.draw()
		}
	}
}

// handleEvent forwards key presses to the console driver and reports
// whether the simulator should keep running.
func (s *simulator) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			s.cons.PutChar('\n')
		case tcell.KeyTab:
			s.cons.PutChar('\t')
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			s.cons.PutChar('\b')
		case tcell.KeyRune:
			if r := ev.Rune(); r < 0x80 {
				s.cons.PutChar(byte(r))
			}
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}

	return true
}

// draw paints the framebuffer and mirrors the emulated hardware cursor.
func (s *simulator) draw() {
	for y := 0; y < int(vga.Height); y++ {
		for x := 0; x < int(vga.Width); x++ {
			cell := s.fb[y*int(vga.Width)+x]
			attr := vga.Attr(cell >> 8)

			style := tcell.StyleDefault.
				Foreground(palette[attr.Fg()]).
				Background(palette[attr.Bg()])

			s.screen.SetContent(x, y, rune(byte(cell)), nil, style)
		}
	}

	if s.crtc.CursorVisible() {
		pos := int(s.crtc.CursorOffset())
		s.screen.ShowCursor(pos%int(vga.Width), pos/int(vga.Width))
	} else {
		s.screen.HideCursor()
	}

	s.screen.Show()
}

func main() {
	sim, err := newSimulator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vgasim: %v\n", err)
		os.Exit(1)
	}
	defer sim.screen.Fini()

	sim.run()
}
