// Package block defines the wire-level types a host passes into the
// decoder: the four 16-bit RDS blocks, the group they form, and the
// scalar/enumerated values those blocks decode to.
package block

// Optional represents a value the demodulator's error correction may
// or may not have recovered. An absent Optional carries the zero
// value of T and Present == false.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Optional wrapping v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// None returns an absent Optional of type T.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Block1 carries the Programme Identifier in Group A variants, and the
// same in Group B variants (PI repeats in Block 3 for B-variant groups).
type Block1 uint16

// Block2 carries the dispatch header: group type, variant, TP flag, PTY,
// plus 5 group-specific bits. See Shared.
type Block2 uint16

// Block3 carries group-specific payload, or a repeated PI for
// group-variant B.
type Block3 uint16

// Block4 carries group-specific payload.
type Block4 uint16

// Message is the 4-tuple of blocks the host passes to Decode once per
// received RDS group. An absent block means its error-correction
// threshold was exceeded and the block is unusable.
type Message struct {
	Block1 Optional[Block1]
	Block2 Optional[Block2]
	Block3 Optional[Block3]
	Block4 Optional[Block4]
}

// ProgrammeIdentifier is the 16-bit station identifier carried in
// Block 1 (and Block 3 of group-variant B groups).
type ProgrammeIdentifier uint16

// TrafficProgram reports whether the station broadcasts traffic
// announcements.
type TrafficProgram bool
