package kfmt

import (
	"bytes"
	"testing"
)

func TestFprintf(t *testing.T) {
	specs := []struct {
		fn        func(*bytes.Buffer) int
		expOutput string
	}{
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "no directives") },
			"no directives",
		},
		// signed decimal
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%d", 0) },
			"0",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%d", 42) },
			"42",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%i", -42) },
			"-42",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%5d", 42) },
			"   42",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%05d", 42) },
			"00042",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%2d", 12345) },
			"12345",
		},
		// negating the minimum 32-bit value wraps onto itself; the
		// wrapped magnitude still prints the right digits
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%d", int32(-2147483648)) },
			"-2147483648",
		},
		// unsigned decimal
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%u", uint32(3000000000)) },
			"3000000000",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%u", uint32(0xFFFFFFFF)) },
			"4294967295",
		},
		// hexadecimal
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%x", 255) },
			"ff",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "0x%08x", uint32(0xBADF00D)) },
			"0x0badf00d",
		},
		// pointers are always 0x plus 8 zero-padded digits, ignoring
		// any requested width
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%p", uintptr(0)) },
			"0x00000000",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%p", uintptr(0xB8000)) },
			"0x000b8000",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%16p", uintptr(0xB8000)) },
			"0x000b8000",
		},
		// strings
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "[%s]", "hello") },
			"[hello]",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%s", nil) },
			"(null)",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%s", []byte(nil)) },
			"(null)",
		},
		// width never applies to %s or %c
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%5s", "ab") },
			"ab",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%5c", 'z') },
			"z",
		},
		// characters
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%c%c", 'o', 'k') },
			"ok",
		},
		// literal percent and unknown directive fallback
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%%") },
			"%",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "100%%") },
			"100%",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%q") },
			"%q",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%v", 1) },
			"%v",
		},
		// truncated directives emit nothing further
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "oops: %") },
			"oops: ",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "oops: %05") },
			"oops: ",
		},
		// missing and mistyped arguments degrade to markers
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%d") },
			"(MISSING)",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%d", "nope") },
			"%!(WRONGTYPE)",
		},
		// mixed
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "Multiboot: OK (magic = 0x%x)", uint32(0x2BADB002)) },
			"Multiboot: OK (magic = 0x2badb002)",
		},
		{
			func(w *bytes.Buffer) int { return Fprintf(w, "%s=%u (%d%%)", "usage", uint32(75), 75) },
			"usage=75 (75%)",
		},
	}

	for specIndex, spec := range specs {
		var buf bytes.Buffer

		count := spec.fn(&buf)

		if got := buf.String(); got != spec.expOutput {
			t.Errorf("[spec %d] expected output %q; got %q", specIndex, spec.expOutput, got)
		}

		if count != len(spec.expOutput) {
			t.Errorf("[spec %d] expected emitted count %d; got %d", specIndex, len(spec.expOutput), count)
		}
	}
}

func TestFprintfCountsPaddingAndSign(t *testing.T) {
	var buf bytes.Buffer

	if got := Fprintf(&buf, "%08d", -42); got != 8 {
		t.Fatalf("expected count 8; got %d (output %q)", got, buf.String())
	}
}

func TestFormatNumWidthClamp(t *testing.T) {
	var buf bytes.Buffer

	// Widths beyond the scratch buffer are clamped instead of
	// overflowing it.
	Fprintf(&buf, "%99d", 7)

	if got := buf.Len(); got != numBufSize {
		t.Fatalf("expected clamped width %d; got %d", numBufSize, got)
	}
}
