// Package rds implements a stateful, hardware-agnostic decoder for
// the Radio Data System (RDS) / Radio Broadcast Data System (RBDS)
// protocol. A host (typically an FM tuner) feeds it one group of four
// optional 16-bit blocks at a time; the decoder maintains a
// progressively refined view of the tuned station's metadata and
// returns a snapshot on every call.
//
// The decoder does not demodulate, does not perform block-level error
// correction, and tracks exactly one station at a time: call Reset on
// retune.
package rds

import (
	"github.com/openrds/rds/block"
	"github.com/openrds/rds/internal/oda"
	"github.com/openrds/rds/internal/psdecoder"
	"github.com/openrds/rds/internal/rtdecoder"
	"github.com/openrds/rds/modefilter"
)

// defaultWindow and defaultMinCount parameterize the PI/PTY/TP mode
// filters. A field must appear at least defaultMinCount times in the
// last defaultWindow groups before the decoder surfaces it.
const (
	defaultWindow   = 6
	defaultMinCount = 5
)

// oda slot allow-list: the group-type/variant pairs the standard
// reserves for Open Data Applications. A Group 3A announcement
// targeting any other slot is ignored.
var odaAllowList = map[block.GroupType][2]bool{
	1:  {block.VariantA: false, block.VariantB: true},
	3:  {block.VariantA: false, block.VariantB: true},
	4:  {block.VariantA: false, block.VariantB: true},
	5:  {block.VariantA: true, block.VariantB: true},
	6:  {block.VariantA: true, block.VariantB: true},
	7:  {block.VariantA: true, block.VariantB: true},
	8:  {block.VariantA: true, block.VariantB: true},
	9:  {block.VariantA: true, block.VariantB: true},
	10: {block.VariantA: false, block.VariantB: true},
	11: {block.VariantA: true, block.VariantB: true},
	12: {block.VariantA: true, block.VariantB: true},
	13: {block.VariantA: true, block.VariantB: true},
}

func odaSlotAllowed(gt block.GroupType, gv block.GroupVariant) bool {
	variants, ok := odaAllowList[gt]
	if !ok {
		return false
	}
	return variants[gv]
}

// RT is the RadioText portion of a Metadata snapshot.
type RT struct {
	Text string
	Tags []block.RTPlusTag
}

// Metadata is the public snapshot produced by every call to Decode. A
// field is present iff its underlying filter or assembler reports
// confirmed.
type Metadata struct {
	PI  block.Optional[block.ProgrammeIdentifier]
	PTY block.Optional[block.ProgrammeType]
	TP  block.Optional[block.TrafficProgram]
	PS  block.Optional[string]
	RT  block.Optional[RT]
}

// Decoder accumulates RDS groups into a Metadata snapshot. The zero
// value is not usable; use New.
type Decoder struct {
	pi  *modefilter.Filter[block.ProgrammeIdentifier]
	pty *modefilter.Filter[block.ProgrammeType]
	tp  *modefilter.Filter[block.TrafficProgram]

	ps *psdecoder.Decoder
	rt *rtdecoder.Decoder

	oda *oda.Registry
}

// New returns a Decoder in the blank state: every filter empty, every
// buffer space-filled, the ODA registry empty.
func New() *Decoder {
	pi, err := modefilter.New[block.ProgrammeIdentifier](defaultWindow, defaultMinCount)
	if err != nil {
		panic(err) // defaultWindow/defaultMinCount are fixed constants
	}
	pty, err := modefilter.New[block.ProgrammeType](defaultWindow, defaultMinCount)
	if err != nil {
		panic(err)
	}
	tp, err := modefilter.New[block.TrafficProgram](defaultWindow, defaultMinCount)
	if err != nil {
		panic(err)
	}

	return &Decoder{
		pi:  pi,
		pty: pty,
		tp:  tp,
		ps:  psdecoder.New(),
		rt:  rtdecoder.New(),
		oda: oda.New(),
	}
}

// Decode ingests one RDS group and returns the resulting snapshot.
func (d *Decoder) Decode(msg block.Message) Metadata {
	if msg.Block1.Present {
		d.pi.Push(block.ProgrammeIdentifier(msg.Block1.Value))
	}

	if !msg.Block2.Present {
		return d.snapshot()
	}

	b2 := msg.Block2.Value
	shared := block.DecodeShared(b2)
	d.pty.Push(shared.PTY)
	d.tp.Push(shared.TP)

	if shared.Variant == block.VariantB && msg.Block3.Present {
		d.pi.Push(block.ProgrammeIdentifier(msg.Block3.Value))
	}

	d.dispatch(shared, msg)

	return d.snapshot()
}

func (d *Decoder) dispatch(shared block.Shared, msg block.Message) {
	switch {
	case shared.Type == 0:
		d.decodePS(b2Low(uint16(msg.Block2.Value), 2), msg)

	case shared.Type == 2 && shared.Variant == block.VariantA:
		d.decodeRTA(uint16(msg.Block2.Value), msg)

	case shared.Type == 2 && shared.Variant == block.VariantB:
		d.decodeRTB(uint16(msg.Block2.Value), msg)

	case shared.Type == 3 && shared.Variant == block.VariantA:
		d.decodeODAAnnouncement(msg)

	default:
		if app, ok := d.oda.Lookup(shared.Type, shared.Variant); ok {
			switch app {
			case oda.RTPlus:
				d.decodeRTPlus(msg)
			}
		}
	}
}

func b2Low(b2 uint16, bits uint) int {
	return int(b2 & ((1 << bits) - 1))
}

func (d *Decoder) decodePS(index int, msg block.Message) {
	if !msg.Block4.Present {
		return
	}
	chars := bigEndianPair(uint16(msg.Block4.Value))
	_ = d.ps.PushSegment(index, chars) // index always masked to 2 bits
}

func (d *Decoder) decodeRTA(b2 uint16, msg block.Message) {
	if !msg.Block3.Present || !msg.Block4.Present {
		return
	}
	index := b2Low(b2, 4)
	toggle := b2&0x0010 != 0

	var chars [4]byte
	p3 := bigEndianPair(uint16(msg.Block3.Value))
	p4 := bigEndianPair(uint16(msg.Block4.Value))
	chars[0], chars[1] = p3[0], p3[1]
	chars[2], chars[3] = p4[0], p4[1]

	d.rt.PushSegmentA(index, chars, toggle)
}

func (d *Decoder) decodeRTB(b2 uint16, msg block.Message) {
	if !msg.Block4.Present {
		return
	}
	index := b2Low(b2, 4)
	toggle := b2&0x0010 != 0
	chars := bigEndianPair(uint16(msg.Block4.Value))
	d.rt.PushSegmentB(index, chars, toggle)
}

func (d *Decoder) decodeODAAnnouncement(msg block.Message) {
	if !msg.Block2.Present || !msg.Block4.Present {
		return
	}
	b2 := uint16(msg.Block2.Value)
	targetVariant := block.VariantOf(b2&0x0001 != 0)
	targetType := block.GroupType((b2 >> 1) & 0x0F)

	if !odaSlotAllowed(targetType, targetVariant) {
		return
	}

	aid := uint16(msg.Block4.Value)
	_ = d.oda.Add(targetType, targetVariant, aid) // unknown AID / full registry: soft errors
}

func (d *Decoder) decodeRTPlus(msg block.Message) {
	if !msg.Block2.Present || !msg.Block3.Present || !msg.Block4.Present {
		return
	}
	b2 := uint16(msg.Block2.Value)
	b3 := uint16(msg.Block3.Value)
	b4 := uint16(msg.Block4.Value)

	ct1 := uint8(((b2 & 0b111) << 3) | ((b3 >> 13) & 0b111))
	start1 := uint8((b3 >> 7) & 0b111111)
	length1 := uint8((b3 >> 1) & 0b111111)

	ct2 := uint8(((b3 & 0b1) << 5) | ((b4 >> 11) & 0b11111))
	start2 := uint8((b4 >> 5) & 0b111111)
	length2 := uint8(b4 & 0b11111)

	type1, ok1 := block.RTPlusContentTypeFromByte(ct1)
	type2, ok2 := block.RTPlusContentTypeFromByte(ct2)
	if !ok1 || !ok2 {
		return
	}

	tag1 := block.RTPlusTag{ContentType: type1, Start: start1, Length: length1}
	tag2 := block.RTPlusTag{ContentType: type2, Start: start2, Length: length2}
	d.rt.PushRTPlusTags(tag1, tag2)
}

func bigEndianPair(v uint16) [2]byte {
	return [2]byte{byte(v >> 8), byte(v)}
}

func (d *Decoder) snapshot() Metadata {
	var m Metadata

	if pi, ok := d.pi.Mode(); ok {
		m.PI = block.Some(pi)
	}
	if pty, ok := d.pty.Mode(); ok {
		m.PTY = block.Some(pty)
	}
	if tp, ok := d.tp.Mode(); ok {
		m.TP = block.Some(tp)
	}
	if ps, ok := d.ps.Confirmed(); ok {
		m.PS = block.Some(ps)
	}
	if text, tags, ok := d.rt.Confirmed(); ok {
		m.RT = block.Some(RT{Text: text, Tags: tags})
	}

	return m
}

// Reset returns the decoder to its blank state.
func (d *Decoder) Reset() {
	d.pi.Reset()
	d.pty.Reset()
	d.tp.Reset()
	d.ps.Reset()
	d.rt.Reset()
	d.oda.Reset()
}
