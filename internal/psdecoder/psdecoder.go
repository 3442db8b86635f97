// Package psdecoder assembles the 8-character Programme Service name
// from its four two-character segments.
package psdecoder

import (
	"errors"
	"fmt"

	"github.com/openrds/rds/bitset"
	"github.com/openrds/rds/charset"
)

const size = 8

// ErrIndexOutOfBounds is returned by PushSegment when index falls
// outside [0, 4). No caller in this module can trigger it, since
// every index is already masked to 2 bits before the call.
var ErrIndexOutOfBounds = errors.New("psdecoder: segment index out of range")

// Decoder accumulates Programme Service segments into an 8-character
// buffer. The zero value is not usable; use New.
type Decoder struct {
	buf  [size]rune
	bits bitset.Set
}

// New returns a Decoder in the blank state: buffer filled with spaces,
// no segment slots written.
func New() *Decoder {
	d := &Decoder{bits: bitset.New(4)}
	d.clear()
	return d
}

func (d *Decoder) clear() {
	for i := range d.buf {
		d.buf[i] = ' '
	}
}

// PushSegment writes the two-character segment at index (0..3). If the
// buffer is already full and the incoming pair differs from what is
// currently stored at that index, the whole buffer is cleared first —
// this is how a change of station/PS is detected and surfaced.
func (d *Decoder) PushSegment(index int, chars [2]byte) error {
	if index < 0 || index >= size/2 {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, index, size/2)
	}

	r0, r1 := translateOrSpace(chars[0]), translateOrSpace(chars[1])
	i0, i1 := 2*index, 2*index+1
	if d.bits.All() && (d.buf[i0] != r0 || d.buf[i1] != r1) {
		d.clear()
		d.bits.Reset()
	}

	d.buf[i0] = r0
	d.buf[i1] = r1
	// index is always < 4 here, so Set cannot fail.
	_ = d.bits.Set(uint(index))
	return nil
}

func translateOrSpace(b byte) rune {
	r, ok := charset.Translate(b)
	if !ok {
		return ' '
	}
	return r
}

// Confirmed returns the assembled PS once all four segment slots have
// been written since the last Reset or content change.
func (d *Decoder) Confirmed() (string, bool) {
	if !d.bits.All() {
		return "", false
	}
	return string(d.buf[:]), true
}

// Reset restores the blank state.
func (d *Decoder) Reset() {
	d.clear()
	d.bits.Reset()
}
