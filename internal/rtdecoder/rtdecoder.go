// Package rtdecoder assembles the RadioText string from up to 16
// segments, handling the A/B text-width toggle, early termination via
// carriage return, and the two most recent RadioText+ tags.
package rtdecoder

import (
	"github.com/openrds/rds/bitset"
	"github.com/openrds/rds/block"
	"github.com/openrds/rds/charset"
)

const (
	maxSize    = 64
	numSegments = 16

	segmentSizeA = 4 // characters per segment, Group 2A
	segmentSizeB = 2 // characters per segment, Group 2B
)

// Decoder accumulates RadioText segments into a 64-character buffer.
// The zero value is not usable; use New.
type Decoder struct {
	buf         [maxSize]rune
	segmentSize int  // 0 until the first segment pins a group width
	textAB      bool
	abPinned    bool
	bits        bitset.Set
	earlyIdx    int // valid iff earlySet
	earlySet    bool

	tags    [2]block.RTPlusTag
	tagsSet bool
}

// New returns a Decoder in the blank state.
func New() *Decoder {
	d := &Decoder{bits: bitset.New(numSegments)}
	d.clearBuffer()
	return d
}

func (d *Decoder) clearBuffer() {
	for i := range d.buf {
		d.buf[i] = ' '
	}
}

// PushSegmentA writes a 4-character Group 2A segment at index (0..15).
func (d *Decoder) PushSegmentA(index int, chars [4]byte, textAB bool) {
	d.pushSegment(index, chars[:], textAB, segmentSizeA)
}

// PushSegmentB writes a 2-character Group 2B segment at index (0..15).
func (d *Decoder) PushSegmentB(index int, chars [2]byte, textAB bool) {
	d.pushSegment(index, chars[:], textAB, segmentSizeB)
}

func (d *Decoder) pushSegment(index int, chars []byte, textAB bool, segmentSize int) {
	if !d.abPinned || d.textAB != textAB {
		d.clearBuffer()
		d.bits.Reset()
		d.earlySet = false
		d.textAB = textAB
		d.abPinned = true
		// The group-variant pin (segment width used by Confirmed) is set
		// only here, by the first segment of a run — not on every push.
		// A mid-run call through the other width's PushSegment* method
		// still writes at the position its own width implies; only the
		// pinned width used to judge confirmation stays fixed until the
		// next toggle change.
		d.segmentSize = segmentSize
	}

	for offset, c := range chars {
		pos := segmentSize*index + offset
		if pos < 0 || pos >= maxSize {
			continue
		}

		r, ok := charset.Translate(c)
		switch {
		case ok && r == rune(charset.CarriageReturn):
			d.earlyIdx = pos
			d.earlySet = true
			d.buf[pos] = r
		case ok:
			if d.earlySet && d.earlyIdx == pos {
				d.earlySet = false
			}
			d.buf[pos] = r
		default:
			if d.earlySet && d.earlyIdx == pos {
				d.earlySet = false
			}
			d.buf[pos] = ' '
		}
	}

	// index is always within [0, numSegments) because the caller masks
	// to 4 bits before calling in.
	_ = d.bits.Set(uint(index))
}

// PushRTPlusTags records the two most recent RadioText+ tags,
// replacing any previous pair. Tags are never merged or deduplicated.
func (d *Decoder) PushRTPlusTags(tag1, tag2 block.RTPlusTag) {
	d.tags[0] = tag1
	d.tags[1] = tag2
	d.tagsSet = true
}

// Confirmed returns the assembled RadioText once the segments covering
// its length — either up to the early-termination carriage return, or
// every segment for the group's full width — have all arrived.
func (d *Decoder) Confirmed() (text string, tags []block.RTPlusTag, ok bool) {
	if !d.abPinned {
		return "", nil, false
	}

	length := maxSize
	if d.segmentSize == segmentSizeB {
		length = maxSize / 2
	}
	if d.earlySet {
		length = d.earlyIdx
	}

	requiredSegments := length / d.segmentSize
	var requiredMask uint16
	if requiredSegments >= 16 {
		requiredMask = 0xFFFF
	} else {
		requiredMask = uint16(1<<uint(requiredSegments)) - 1
	}

	if d.bits.Value()&requiredMask != requiredMask {
		return "", nil, false
	}

	if d.tagsSet {
		return string(d.buf[:length]), append([]block.RTPlusTag(nil), d.tags[:]...), true
	}
	return string(d.buf[:length]), nil, true
}

// Reset clears all state to blank.
func (d *Decoder) Reset() {
	d.clearBuffer()
	d.segmentSize = 0
	d.abPinned = false
	d.bits.Reset()
	d.earlySet = false
	d.tagsSet = false
}
