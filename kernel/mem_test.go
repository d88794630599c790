package kernel

import "testing"

func TestFillW(t *testing.T) {
	specs := []struct {
		size int
		val  uint16
	}{
		{0, 0xffff},
		{1, 0x0720},
		{7, 0x0720},
		{128, 0xdead},
		{80 * 25, 0x0720},
	}

	for specIndex, spec := range specs {
		buf := make([]uint16, spec.size)
		FillW(buf, spec.val)

		for i, got := range buf {
			if got != spec.val {
				t.Errorf("[spec %d] expected word %d to be %x; got %x", specIndex, i, spec.val, got)
				break
			}
		}
	}
}

func TestCopyW(t *testing.T) {
	src := []uint16{1, 2, 3, 4, 5}
	dst := make([]uint16, 3)

	if got := CopyW(dst, src); got != 3 {
		t.Fatalf("expected CopyW to copy 3 words; got %d", got)
	}

	for i, exp := range []uint16{1, 2, 3} {
		if dst[i] != exp {
			t.Fatalf("expected dst[%d] to be %d; got %d", i, exp, dst[i])
		}
	}
}

func TestCopyWOverlapping(t *testing.T) {
	// Shift a region one row up the same way the console scroll does.
	buf := []uint16{10, 20, 30, 40, 50, 60}

	CopyW(buf[:4], buf[2:])

	for i, exp := range []uint16{30, 40, 50, 60, 50, 60} {
		if buf[i] != exp {
			t.Fatalf("expected buf[%d] to be %d; got %d", i, exp, buf[i])
		}
	}
}
