// Package vga implements the 80x25 text mode console driver. The driver
// owns the character framebuffer, the cursor position, the active color
// attribute and the CRT controller registers that shape and place the
// blinking hardware cursor.
package vga

import (
	"github.com/edukern/minikern/device/port"
	"github.com/edukern/minikern/kernel"
)

var errNoFramebuffer = &kernel.Error{Module: "vga", Message: "console has no framebuffer"}

const (
	// Width and Height are the text mode dimensions in characters; they
	// are fixed by the hardware mode.
	Width  uint16 = 80
	Height uint16 = 25

	// FrameBufferAddr is the physical address of the memory mapped text
	// framebuffer.
	FrameBufferAddr uintptr = 0xB8000

	tabStop   = 8
	clearChar = byte(' ')

	// Default cursor glyph: an underline spanning the two bottom
	// scanlines of the character cell.
	defaultCursorStart = 14
	defaultCursorEnd   = 15
)

// Console drives a text mode display. Each framebuffer cell stores the
// character code in its low byte and the color attribute in its high
// byte. The driver is the sole writer to the framebuffer and the CRT
// controller ports.
//
// Console assumes a single caller: the kernel runs it on one execution
// context with interrupts disabled. Callers that introduce concurrency
// must serialize access around it.
type Console struct {
	fb    []uint16
	ports port.ReadWriter

	curX uint16
	curY uint16
	attr Attr
}

// New returns a console backed by the given framebuffer slice and port
// capability. The slice must hold Width*Height cells; on real hardware it
// is produced by Map, while tests and the simulator pass an ordinary
// slice and an emulated port device.
func New(fb []uint16, ports port.ReadWriter) *Console {
	return &Console{fb: fb, ports: ports}
}

// Init resets the console: cursor at the origin, light grey on black
// attribute, every cell blanked and the hardware cursor enabled with its
// default underline shape.
func (c *Console) Init() {
	c.curX, c.curY = 0, 0
	c.attr = MakeAttr(LightGrey, Black)
	c.Clear()
	c.EnableCursor(defaultCursorStart, defaultCursorEnd)
}

// Clear fills every cell with a blank carrying the current attribute and
// returns the cursor to the origin.
func (c *Console) Clear() {
	kernel.FillW(c.fb, c.cell(clearChar))
	c.curX, c.curY = 0, 0
	c.syncCursor()
}

// SetAttr replaces the attribute applied to subsequently written cells.
// It affects neither cells already on screen nor the cursor.
func (c *Console) SetAttr(attr Attr) {
	c.attr = attr
}

// Attr returns the active attribute.
func (c *Console) Attr() Attr {
	return c.attr
}

// PutChar renders a single character at the cursor position and advances
// the cursor. The control characters \n, \r, \t and \b are interpreted;
// \b erases the previous cell rather than just moving the cursor. Output
// past the last row scrolls the screen.
func (c *Console) PutChar(ch byte) {
	switch ch {
	case '\n':
		c.curX = 0
		c.curY++
	case '\r':
		c.curX = 0
	case '\t':
		// Advance to the next tab stop. A tab that lands at or past
		// the right edge wraps to the next line instead of clamping.
		c.curX = (c.curX + tabStop) &^ (tabStop - 1)
		if c.curX >= Width {
			c.curX = 0
			c.curY++
		}
	case '\b':
		// Nothing to erase at column zero; backspace never wraps to
		// the previous row.
		if c.curX > 0 {
			c.curX--
			c.fb[c.curY*Width+c.curX] = c.cell(clearChar)
		}
	default:
		c.fb[c.curY*Width+c.curX] = c.cell(ch)
		c.curX++
		if c.curX == Width {
			c.curX = 0
			c.curY++
		}
	}

	// The row invariant is curY < Height no matter how far a write
	// pushed the cursor, so scrolling must loop rather than test once.
	for c.curY >= Height {
		c.scroll()
		c.curY--
	}

	c.syncCursor()
}

// Print writes each character of s through PutChar.
func (c *Console) Print(s string) {
	for i := 0; i < len(s); i++ {
		c.PutChar(s[i])
	}
}

// Println writes s followed by a newline.
func (c *Console) Println(s string) {
	c.Print(s)
	c.PutChar('\n')
}

// SetCursor moves the cursor to column x, row y. Out of range coordinates
// leave the cursor where it is.
func (c *Console) SetCursor(x, y uint16) {
	if x >= Width || y >= Height {
		return
	}

	c.curX, c.curY = x, y
	c.syncCursor()
}

// Cursor returns the cursor position as (column, row).
func (c *Console) Cursor() (uint16, uint16) {
	return c.curX, c.curY
}

// EnableCursor programs the cursor glyph to span the start to end
// scanlines of the character cell. The scanline registers share their
// upper bits with other controller fields, so only the low bits are
// replaced.
func (c *Console) EnableCursor(start, end uint8) {
	c.ports.Out(port.CRTCIndex, port.RegCursorStart)
	c.ports.Out(port.CRTCData, c.ports.In(port.CRTCData)&0xC0|start)
	c.ports.Out(port.CRTCIndex, port.RegCursorEnd)
	c.ports.Out(port.CRTCData, c.ports.In(port.CRTCData)&0xE0|end)
}

// DisableCursor hides the hardware cursor by writing the disable sentinel
// to the start scanline register.
func (c *Console) DisableCursor() {
	c.ports.Out(port.CRTCIndex, port.RegCursorStart)
	c.ports.Out(port.CRTCData, port.CursorDisable)
}

// Write implements io.Writer.
func (c *Console) Write(data []byte) (int, error) {
	if c.fb == nil {
		return 0, errNoFramebuffer
	}

	for _, b := range data {
		c.PutChar(b)
	}

	return len(data), nil
}

// WriteByte implements io.ByteWriter.
func (c *Console) WriteByte(b byte) error {
	if c.fb == nil {
		return errNoFramebuffer
	}

	c.PutChar(b)
	return nil
}

// cell combines ch with the current attribute into a framebuffer cell.
func (c *Console) cell(ch byte) uint16 {
	return uint16(c.attr)<<8 | uint16(ch)
}

// scroll moves every row one line up and blanks the last row. The blank
// fill uses the current attribute, not the attribute of the line that
// scrolled off.
func (c *Console) scroll() {
	kernel.CopyW(c.fb[:(Height-1)*Width], c.fb[Width:])
	kernel.FillW(c.fb[(Height-1)*Width:], c.cell(clearChar))
}

// syncCursor reprograms the CRT controller cursor position register pair
// with the linear offset of the cursor cell, low byte first.
func (c *Console) syncCursor() {
	pos := c.curY*Width + c.curX
	c.ports.Out(port.CRTCIndex, port.RegCursorPosLow)
	c.ports.Out(port.CRTCData, uint8(pos&0xFF))
	c.ports.Out(port.CRTCIndex, port.RegCursorPosHigh)
	c.ports.Out(port.CRTCData, uint8(pos>>8))
}
