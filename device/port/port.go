// Package port models byte-wide access to x86 I/O ports. The console
// driver performs all device register access through the ReadWriter
// capability so the same code can drive real hardware, a write recorder
// or the emulated CRT controller.
package port

// ReadWriter reads and writes single bytes on I/O ports. On real hardware
// the interface is implemented by the in/out instruction shims provided
// by the boot code; the implementations in this package are pure Go.
type ReadWriter interface {
	// In reads a byte from the given port.
	In(port uint16) uint8

	// Out writes a byte to the given port.
	Out(port uint16, val uint8)
}

// VGA register ports and the CRT controller register indices the console
// driver programs through them. The controller exposes its register file
// behind a single index/data pair: writing a register index to the index
// port selects which register the data port addresses.
const (
	CRTCIndex uint16 = 0x3D4
	CRTCData  uint16 = 0x3D5

	RegCursorStart   uint8 = 0x0A
	RegCursorEnd     uint8 = 0x0B
	RegCursorPosHigh uint8 = 0x0E
	RegCursorPosLow  uint8 = 0x0F

	// CursorDisable is the documented "cursor invisible" sentinel for
	// the start scanline register.
	CursorDisable uint8 = 0x20

	// DiagnosticPort is an unused ISA diagnostic port; a write to it
	// takes roughly a microsecond and reaches no device.
	DiagnosticPort uint16 = 0x80
)

// Delay paces back-to-back accesses to slow devices by writing a
// throwaway byte to the diagnostic port.
func Delay(rw ReadWriter) {
	rw.Out(DiagnosticPort, 0)
}

// Write records a single port write.
type Write struct {
	Port uint16
	Val  uint8
}

// Recorder is a ReadWriter that appends every write to Writes in order
// and serves reads from the last value written to each port. Tests use it
// to assert on exact register programming sequences.
type Recorder struct {
	Writes []Write

	regs map[uint16]uint8
}

// In returns the last value written to port, or zero if the port was
// never written.
func (r *Recorder) In(port uint16) uint8 {
	return r.regs[port]
}

// Out appends the write to the recorded sequence.
func (r *Recorder) Out(port uint16, val uint8) {
	if r.regs == nil {
		r.regs = make(map[uint16]uint8)
	}

	r.regs[port] = val
	r.Writes = append(r.Writes, Write{Port: port, Val: val})
}

// Reset discards the recorded writes and register contents.
func (r *Recorder) Reset() {
	r.Writes = nil
	r.regs = nil
}
