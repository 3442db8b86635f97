// Package charset translates bytes carried in RDS text segments (PS and
// RadioText) to Unicode scalar values under the Basic RDS Character Set,
// Table E.1 of the RDS standard (EN 50067 / IEC 62106).
package charset

// Control codes carried through unchanged: line feed enables display
// wrapping, carriage return signals RadioText early termination.
const (
	LineFeed      byte = 0x0A
	CarriageReturn byte = 0x0D
)

// printableMin and printableMax bound the range of codepoints that are
// valid "as-is" absent a table override.
const (
	printableMin = 0x20
	printableMax = 0xFE
)

// table holds the codepoints in [0x24, 0x5E, 0x60, 0x7E] ∪ [0x80, 0xFE]
// whose glyph differs from their raw byte value under Table E.1. Bytes
// in [0x20, 0xFE] absent from this table map to themselves.
var table = map[byte]rune{
	0x24: '¤', // currency sign
	0x5E: '―', // horizontal bar
	0x60: '║', // double vertical line
	0x7E: '¯', // overline

	0x80: 'á', 0x81: 'à', 0x82: 'é', 0x83: 'è',
	0x84: 'í', 0x85: 'ì', 0x86: 'ó', 0x87: 'ò',
	0x88: 'ú', 0x89: 'ù', 0x8A: 'Ñ', 0x8B: 'Ç',
	0x8C: 'Ş', 0x8D: 'ß', 0x8E: '¡', 0x8F: 'Ĳ',
	0x90: 'â', 0x91: 'ä', 0x92: 'ê', 0x93: 'ë',
	0x94: 'î', 0x95: 'ï', 0x96: 'ô', 0x97: 'ö',
	0x98: 'û', 0x99: 'ü', 0x9A: 'ñ', 0x9B: 'ç',
	0x9C: 'ş', 0x9D: 'ğ', 0x9E: 'ı', 0x9F: 'ĳ',
	0xA0: 'ª', 0xA1: 'α', 0xA2: '©', 0xA3: '‰',
	0xA4: 'Ğ', 0xA5: 'ĕ', 0xA6: 'ň', 0xA7: 'ő',
	0xA8: 'π', 0xA9: '€', 0xAA: '₤', 0xAB: '$',
	0xAC: '←', 0xAD: '↑', 0xAE: '→', 0xAF: '↓',
	0xB0: 'º', 0xB1: '¹', 0xB2: '²', 0xB3: '³',
	0xB4: '±', 0xB5: 'İ', 0xB6: 'ń', 0xB7: 'ű',
	0xB8: 'µ', 0xB9: '¿', 0xBA: '÷', 0xBB: '°',
	0xBC: '¼', 0xBD: '½', 0xBE: '¾', 0xBF: '§',
	0xC0: 'Á', 0xC1: 'À', 0xC2: 'É', 0xC3: 'È',
	0xC4: 'Í', 0xC5: 'Ì', 0xC6: 'Ó', 0xC7: 'Ò',
	0xC8: 'Ú', 0xC9: 'Ù', 0xCA: 'Ř', 0xCB: 'Č',
	0xCC: 'Š', 0xCD: 'Ž', 0xCE: 'Ð', 0xCF: 'Ŀ',
	0xD0: 'Â', 0xD1: 'Ä', 0xD2: 'Ê', 0xD3: 'Ë',
	0xD4: 'Î', 0xD5: 'Ï', 0xD6: 'Ô', 0xD7: 'Ö',
	0xD8: 'Û', 0xD9: 'Ü', 0xDA: 'ř', 0xDB: 'č',
	0xDC: 'š', 0xDD: 'ž', 0xDE: 'đ', 0xDF: 'ŀ',
	0xE0: 'Ã', 0xE1: 'Å', 0xE2: 'Æ', 0xE3: 'Œ',
	0xE4: 'ŷ', 0xE5: 'Ý', 0xE6: 'Õ', 0xE7: 'Ø',
	0xE8: 'Þ', 0xE9: 'Ŋ', 0xEA: 'Ŕ', 0xEB: 'Ć',
	0xEC: 'Ś', 0xED: 'Ź', 0xEE: 'Ŧ', 0xEF: 'ð',
	0xF0: 'ã', 0xF1: 'å', 0xF2: 'æ', 0xF3: 'œ',
	0xF4: 'ŵ', 0xF5: 'ý', 0xF6: 'õ', 0xF7: 'ø',
	0xF8: 'þ', 0xF9: 'ŋ', 0xFA: 'ŕ', 0xFB: 'ć',
	0xFC: 'ś', 0xFD: 'ź', 0xFE: 'ŧ',
}

// unassigned holds bytes inside [0x20, 0xFE] that the standard
// nonetheless leaves unassigned.
var unassigned = map[byte]bool{
	0x7F: true,
}

// Translate maps an RDS codepoint to its Unicode scalar value. ok is
// false for bytes the standard does not assign a glyph to: 0x00-0x09,
// 0x0B, 0x0C, 0x0E-0x1F, 0x7F and 0xFF. Callers substitute a space for
// invalid bytes rather than propagating the failure, per the RDS
// decoder's tolerance for noisy input.
func Translate(b byte) (r rune, ok bool) {
	switch b {
	case LineFeed, CarriageReturn:
		return rune(b), true
	}
	if r, found := table[b]; found {
		return r, true
	}
	if unassigned[b] {
		return 0, false
	}
	if b >= printableMin && b <= printableMax {
		return rune(b), true
	}
	return 0, false
}
