package kernel

// FillW sets every word of dst to v. The implementation is based on
// bytes.Repeat; after seeding the first element it doubles the filled
// region with copy calls instead of assigning one element per iteration.
func FillW(dst []uint16, v uint16) {
	if len(dst) == 0 {
		return
	}

	dst[0] = v
	for i := 1; i < len(dst); i *= 2 {
		copy(dst[i:], dst[:i])
	}
}

// CopyW copies words from src to dst, stopping at the shorter of the two,
// and returns the number of words copied. Overlapping slices are handled
// the same way the builtin copy handles them.
func CopyW(dst, src []uint16) int {
	return copy(dst, src)
}
