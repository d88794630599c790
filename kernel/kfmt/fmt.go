// Package kfmt provides a minimal formatted output engine for kernel
// diagnostics. It emits through an io.ByteWriter one character at a time
// and allocates nothing beyond a fixed size numeral conversion buffer, so
// it is safe to use before any runtime services exist.
package kfmt

import "io"

// numBufSize is the capacity of the numeral conversion scratch buffer:
// room for the digits of any 32-bit value, a sign and the widest padding
// a directive can request.
const numBufSize = 32

const (
	nullArg    = "(null)"
	missingArg = "(MISSING)"
	wrongType  = "%!(WRONGTYPE)"
)

// Fprintf scans format left to right and emits it to w, expanding
// %-directives from args. The supported conversions:
//
//	%d, %i   signed 32-bit decimal
//	%u       unsigned 32-bit decimal
//	%x       unsigned 32-bit hexadecimal, lowercase
//	%p       pointer: 0x followed by exactly 8 zero-padded hex digits
//	%s       string; a nil argument prints (null)
//	%c       single character
//	%%       literal %
//
// A directive may carry an optional zero padding flag and a decimal
// width; both apply to the numeric conversions only. A % followed by an
// unrecognized character is not an error: both characters are echoed
// as-is. Fprintf returns the total number of characters emitted, padding
// and sign characters included.
func Fprintf(w io.ByteWriter, format string, args ...interface{}) int {
	var (
		count   int
		nextArg int
	)

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			w.WriteByte(c)
			count++
			continue
		}

		// A format string ending in a bare % or a truncated directive
		// emits nothing further.
		if i++; i == len(format) {
			break
		}
		c = format[i]

		pad := byte(' ')
		width := 0

		if c == '0' {
			pad = '0'
			if i++; i == len(format) {
				return count
			}
			c = format[i]
		}

		for c >= '0' && c <= '9' {
			width = width*10 + int(c-'0')
			if i++; i == len(format) {
				return count
			}
			c = format[i]
		}

		switch c {
		case 'd', 'i':
			v, n, ok := numArg(w, args, &nextArg)
			count += n
			if ok {
				count += formatNum(w, v, 10, true, width, pad)
			}
		case 'u':
			v, n, ok := numArg(w, args, &nextArg)
			count += n
			if ok {
				count += formatNum(w, v, 10, false, width, pad)
			}
		case 'x':
			v, n, ok := numArg(w, args, &nextArg)
			count += n
			if ok {
				count += formatNum(w, v, 16, false, width, pad)
			}
		case 'p':
			v, n, ok := numArg(w, args, &nextArg)
			count += n
			if ok {
				count += emitString(w, "0x")
				count += formatNum(w, v, 16, false, 8, '0')
			}
		case 's':
			count += formatString(w, args, &nextArg)
		case 'c':
			v, n, ok := numArg(w, args, &nextArg)
			count += n
			if ok {
				w.WriteByte(byte(v))
				count++
			}
		case '%':
			w.WriteByte('%')
			count++
		default:
			// Unsupported directive: echo it instead of failing.
			w.WriteByte('%')
			w.WriteByte(c)
			count += 2
		}
	}

	return count
}

// formatNum converts num in the given base into the scratch buffer,
// collecting digits least significant first, appends the sign for
// negative signed values, left-pads to width and emits the buffer in
// reverse. It returns the number of characters emitted.
//
// The magnitude of signed values is computed by 32-bit negation, so the
// minimum representable value wraps onto itself; this quirk is inherited
// behavior and kept as is (the wrapped value still prints correctly in
// two's complement).
func formatNum(w io.ByteWriter, num uint32, base uint32, signed bool, width int, pad byte) int {
	var buf [numBufSize]byte
	i := 0

	negative := false
	if signed && int32(num) < 0 {
		negative = true
		num = uint32(-int32(num))
	}

	if num == 0 {
		buf[i] = '0'
		i++
	} else {
		for num > 0 {
			digit := byte(num % base)
			if digit < 10 {
				buf[i] = '0' + digit
			} else {
				buf[i] = 'a' + digit - 10
			}
			i++
			num /= base
		}
	}

	if negative {
		buf[i] = '-'
		i++
	}

	if width > numBufSize {
		width = numBufSize
	}
	for i < width {
		buf[i] = pad
		i++
	}

	count := i
	for i > 0 {
		i--
		w.WriteByte(buf[i])
	}

	return count
}

// formatString emits a string argument; a nil argument degrades to the
// (null) placeholder rather than faulting. Width never applies to %s.
func formatString(w io.ByteWriter, args []interface{}, nextArg *int) int {
	if *nextArg >= len(args) {
		return emitString(w, missingArg)
	}

	arg := args[*nextArg]
	*nextArg++

	switch s := arg.(type) {
	case string:
		return emitString(w, s)
	case []byte:
		if s == nil {
			return emitString(w, nullArg)
		}
		for _, b := range s {
			w.WriteByte(b)
		}
		return len(s)
	case nil:
		return emitString(w, nullArg)
	}

	return emitString(w, wrongType)
}

// emitString writes s one byte at a time and returns its length.
func emitString(w io.ByteWriter, s string) int {
	for i := 0; i < len(s); i++ {
		w.WriteByte(s[i])
	}

	return len(s)
}

// numArg pulls the next argument for a numeric conversion, accepting any
// built-in integer type and reinterpreting its low 32 bits, the way a
// 32-bit varargs ABI hands integer arguments to the formatter. A missing
// or non-integer argument emits a marker instead; n reports the marker
// length and ok is false.
func numArg(w io.ByteWriter, args []interface{}, nextArg *int) (v uint32, n int, ok bool) {
	if *nextArg >= len(args) {
		return 0, emitString(w, missingArg), false
	}

	arg := args[*nextArg]
	*nextArg++

	switch v := arg.(type) {
	case int:
		return uint32(v), 0, true
	case int8:
		return uint32(v), 0, true
	case int16:
		return uint32(v), 0, true
	case int32:
		return uint32(v), 0, true
	case int64:
		return uint32(v), 0, true
	case uint:
		return uint32(v), 0, true
	case uint8:
		return uint32(v), 0, true
	case uint16:
		return uint32(v), 0, true
	case uint32:
		return v, 0, true
	case uint64:
		return uint32(v), 0, true
	case uintptr:
		return uint32(v), 0, true
	}

	return 0, emitString(w, wrongType), false
}
