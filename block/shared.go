package block

// Shared is Block 2's common header, present in every group type
// regardless of its specific payload: group type (bits 15..12), group
// variant (bit 11), traffic-programme flag (bit 10) and programme type
// (bits 9..5).
type Shared struct {
	Type    GroupType
	Variant GroupVariant
	TP      TrafficProgram
	PTY     ProgrammeType
}

// DecodeShared splits Block 2's common header out of its 16 bits.
// Group-specific bits (4..0) are left to each group's own handler.
func DecodeShared(b Block2) Shared {
	return Shared{
		Type:    GroupType(b >> 12),
		Variant: VariantOf(b&0x0800 != 0),
		TP:      TrafficProgram(b&0x0400 != 0),
		PTY:     ProgrammeType((b >> 5) & 0x1F),
	}
}
