package psdecoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/openrds/rds/charset"
	"github.com/openrds/rds/internal/psdecoder"
)

func TestNewDecoderIsBlank(t *testing.T) {
	d := psdecoder.New()
	_, ok := d.Confirmed()
	assert.False(t, ok)
}

func TestPushSegmentSetsBuffer(t *testing.T) {
	d := psdecoder.New()
	require.NoError(t, d.PushSegment(0, [2]byte{'A', 'B'}))
	_, ok := d.Confirmed()
	assert.False(t, ok, "one of four segments is not enough to confirm")
}

func TestConfirmedOnAllFourSegments(t *testing.T) {
	d := psdecoder.New()
	segs := [4][2]byte{{'A', 'B'}, {'C', 'D'}, {'E', 'F'}, {'G', 'H'}}
	for i, s := range segs {
		require.NoError(t, d.PushSegment(i, s))
	}
	got, ok := d.Confirmed()
	require.True(t, ok)
	assert.Equal(t, "ABCDEFGH", got)
}

func TestPushSegmentChangeResetsBuffer(t *testing.T) {
	d := psdecoder.New()
	for i, s := range [4][2]byte{{'X', 'Y'}, {'X', 'Y'}, {'X', 'Y'}, {'X', 'Y'}} {
		require.NoError(t, d.PushSegment(i, s))
	}
	_, ok := d.Confirmed()
	require.True(t, ok)

	require.NoError(t, d.PushSegment(0, [2]byte{'A', 'B'}))
	_, ok = d.Confirmed()
	assert.False(t, ok, "segment change should reset the bitmap")
}

func TestPushSegmentSameContentDoesNotReset(t *testing.T) {
	d := psdecoder.New()
	segs := [4][2]byte{{'A', 'B'}, {'C', 'D'}, {'E', 'F'}, {'G', 'H'}}
	for i, s := range segs {
		require.NoError(t, d.PushSegment(i, s))
	}
	require.NoError(t, d.PushSegment(0, [2]byte{'A', 'B'}))
	got, ok := d.Confirmed()
	require.True(t, ok)
	assert.Equal(t, "ABCDEFGH", got)
}

func TestPushSegmentOutOfRange(t *testing.T) {
	d := psdecoder.New()
	assert.ErrorIs(t, d.PushSegment(4, [2]byte{'A', 'B'}), psdecoder.ErrIndexOutOfBounds)
}

func TestPushSegmentInvalidCharacterBecomesSpace(t *testing.T) {
	d := psdecoder.New()
	require.NoError(t, d.PushSegment(0, [2]byte{0x1F, 'B'}))
	require.NoError(t, d.PushSegment(1, [2]byte{'A', 0x7F}))
	require.NoError(t, d.PushSegment(2, [2]byte{'C', 'D'}))
	require.NoError(t, d.PushSegment(3, [2]byte{'E', 'F'}))
	got, ok := d.Confirmed()
	require.True(t, ok)
	assert.Equal(t, " BA CDEF", got)
}

func TestResetClearsState(t *testing.T) {
	d := psdecoder.New()
	segs := [4][2]byte{{'A', 'B'}, {'C', 'D'}, {'E', 'F'}, {'G', 'H'}}
	for i, s := range segs {
		require.NoError(t, d.PushSegment(i, s))
	}
	d.Reset()
	_, ok := d.Confirmed()
	assert.False(t, ok)
}

// TestRoundTripFourConsistentSegments encodes the spec.md §8 round-trip
// law: PS assembly of four consistent segments returns their
// concatenation, for any valid printable input.
func TestRoundTripFourConsistentSegments(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := psdecoder.New()
		var want [8]rune
		for i := 0; i < 4; i++ {
			a := byte(rapid.IntRange(0x20, 0x7E).Draw(t, "a"))
			b := byte(rapid.IntRange(0x20, 0x7E).Draw(t, "b"))
			// Table E.1 remaps a few ASCII codepoints (e.g. 0x24 is '¤').
			want[2*i], _ = charset.Translate(a)
			want[2*i+1], _ = charset.Translate(b)
			require.NoError(t, d.PushSegment(i, [2]byte{a, b}))
		}
		got, ok := d.Confirmed()
		require.True(t, ok)
		require.Equal(t, string(want[:]), got)
	})
}
