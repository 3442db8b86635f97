package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openrds/rds/charset"
)

func TestTranslatePrintableRange(t *testing.T) {
	r, ok := charset.Translate(0x20)
	assert.True(t, ok)
	assert.Equal(t, ' ', r)

	r, ok = charset.Translate(0x21)
	assert.True(t, ok)
	assert.Equal(t, '!', r)

	r, ok = charset.Translate(0x7D)
	assert.True(t, ok)
	assert.Equal(t, '}', r)
}

func TestTranslateControlCharacters(t *testing.T) {
	r, ok := charset.Translate(0x0A)
	assert.True(t, ok)
	assert.Equal(t, '\n', r)

	r, ok = charset.Translate(0x0D)
	assert.True(t, ok)
	assert.Equal(t, '\r', r)
}

func TestTranslateInvalidBytes(t *testing.T) {
	for _, b := range []byte{0x00, 0x09, 0x0B, 0x0C, 0x1F, 0x7F, 0xFF} {
		_, ok := charset.Translate(b)
		assert.Falsef(t, ok, "byte 0x%02X should be invalid", b)
	}
}

func TestTranslateSpecialMappings(t *testing.T) {
	cases := []struct {
		b    byte
		want rune
	}{
		{0x24, '¤'},
		{0x5E, '―'},
		{0x60, '║'},
		{0x7E, '¯'},
		{0xFE, 'ŧ'},
	}
	for _, c := range cases {
		r, ok := charset.Translate(c.b)
		assert.True(t, ok)
		assert.Equal(t, c.want, r)
	}
}

func TestTranslateExtendedRange(t *testing.T) {
	cases := map[byte]rune{
		0xF1: 'å',
		0xF2: 'æ',
		0xF3: 'œ',
		0xF4: 'ŵ',
		0xF9: 'ŋ',
		0xFD: 'ź',
	}
	for b, want := range cases {
		r, ok := charset.Translate(b)
		assert.True(t, ok)
		assert.Equal(t, want, r)
	}
}

func TestTranslateIsTotalOverByteRange(t *testing.T) {
	// Every byte value must terminate without panicking, which is the
	// bulk of what a fixed lookup table buys over a partial function.
	for b := 0; b <= 0xFF; b++ {
		assert.NotPanics(t, func() {
			charset.Translate(byte(b))
		})
	}
}
