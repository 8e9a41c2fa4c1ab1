package board

import (
	"io"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// decoder reads little-endian integers off a stream. The first failure is
// kept and every later read becomes a no-op returning zero, so a record
// decoder can pull all of its fields and check the error once.
type decoder struct {
	r   io.Reader
	off int64
	buf [8]byte
	err error
}

func newDecoder(r io.Reader) *decoder {
	return &decoder{r: r}
}

// get reads one fixed-width integer of type T. The width is the size of T,
// so named types over uint16 (the attribute registers) decode directly.
func get[T constraints.Integer](d *decoder) T {
	var v T
	if d.err != nil {
		return v
	}

	n := int(unsafe.Sizeof(v))
	if _, err := io.ReadFull(d.r, d.buf[:n]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			d.err = errors.Wrapf(ErrTruncatedInput, "need %d bytes at offset %d", n, d.off)
		} else {
			d.err = errors.Wrapf(err, "reading at offset %d", d.off)
		}
		return v
	}

	var u uint64
	for i := n - 1; i >= 0; i-- {
		u = u<<8 | uint64(d.buf[i])
	}
	d.off += int64(n)

	// Conversion truncates to the width of T, which restores the sign of
	// the signed types.
	return T(u)
}
