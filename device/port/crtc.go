package port

// CRTC emulates the VGA CRT controller register file behind the 0x3D4
// (index) and 0x3D5 (data) port pair. It honors the index-select protocol
// used by real hardware: a data port access addresses whichever register
// index was last written to the index port. The zero value is a
// controller with all registers cleared.
//
// Accessors decode the cursor state so tests and the simulator frontend
// can observe what the console driver programmed without re-implementing
// the register protocol.
type CRTC struct {
	index uint8
	regs  [256]uint8
}

// In reads the index port or the currently selected data register.
func (c *CRTC) In(port uint16) uint8 {
	switch port {
	case CRTCIndex:
		return c.index
	case CRTCData:
		return c.regs[c.index]
	}

	return 0
}

// Out writes the index port or the currently selected data register.
// Writes to unrelated ports are dropped, as a real bus would route them
// to a different device.
func (c *CRTC) Out(port uint16, val uint8) {
	switch port {
	case CRTCIndex:
		c.index = val
	case CRTCData:
		c.regs[c.index] = val
	}
}

// Register returns the raw contents of the register at the given index.
func (c *CRTC) Register(index uint8) uint8 {
	return c.regs[index]
}

// CursorOffset returns the linear cursor position programmed through the
// cursor position register pair.
func (c *CRTC) CursorOffset() uint16 {
	return uint16(c.regs[RegCursorPosHigh])<<8 | uint16(c.regs[RegCursorPosLow])
}

// CursorShape returns the start and end scanlines of the cursor glyph.
func (c *CRTC) CursorShape() (start, end uint8) {
	return c.regs[RegCursorStart] & 0x1F, c.regs[RegCursorEnd] & 0x1F
}

// CursorVisible reports whether the cursor disable bit is clear in the
// start scanline register.
func (c *CRTC) CursorVisible() bool {
	return c.regs[RegCursorStart]&CursorDisable == 0
}
