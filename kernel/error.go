package kernel

// Error describes an error raised by a kernel component. Errors must be
// defined as global variables pointing to an Error value; the Go allocator
// is not available this early at boot so errors.New cannot be used.
type Error struct {
	// Module is the name of the component where the error occurred.
	Module string

	// Message describes what went wrong.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
