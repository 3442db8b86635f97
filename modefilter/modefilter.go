// Package modefilter implements a majority-vote stabilization filter.
//
// RDS blocks arrive with residual bit errors even after per-block error
// correction. A Filter eliminates transient single-bit flips in a
// slowly-changing field (PI, PTY, TP) by returning the statistical mode
// over a rolling window, once the window has filled and the winning
// value's count clears a configured minimum.
package modefilter

import (
	"errors"
	"fmt"
)

// ErrMinCountExceedsWindow is returned by New when minCount exceeds
// window, since no sequence of window samples could then ever satisfy
// Mode.
var ErrMinCountExceedsWindow = errors.New("modefilter: min count exceeds window")

// Filter holds the last Window samples of type T and reports their
// mode. T need only be comparable; the filter never orders or hashes
// samples, it scans.
type Filter[T comparable] struct {
	buf      []T
	filled   []bool
	cursor   int
	minCount int
}

// New returns a Filter with the given window size and minimum winning
// count. It returns an error if minCount exceeds window, since no
// sequence of window samples could then ever satisfy Mode.
func New[T comparable](window, minCount int) (*Filter[T], error) {
	if minCount > window {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrMinCountExceedsWindow, minCount, window)
	}
	return &Filter[T]{
		buf:      make([]T, window),
		filled:   make([]bool, window),
		minCount: minCount,
	}, nil
}

// Push records a new sample, overwriting the oldest one once the
// window has filled.
func (f *Filter[T]) Push(v T) {
	f.buf[f.cursor] = v
	f.filled[f.cursor] = true
	f.cursor = (f.cursor + 1) % len(f.buf)
}

// Mode returns the most frequently occurring sample in the window,
// provided the window is fully populated and the winning count is at
// least minCount. Ties are broken in favor of whichever value was
// encountered first while scanning the window front to back.
func (f *Filter[T]) Mode() (mode T, ok bool) {
	for _, got := range f.filled {
		if !got {
			return mode, false
		}
	}

	bestCount := 0
	for _, candidate := range f.buf {
		count := 0
		for _, v := range f.buf {
			if v == candidate {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			mode = candidate
		}
	}

	if bestCount < f.minCount {
		var zero T
		return zero, false
	}
	return mode, true
}

// Reset clears every sample, returning the Filter to its just-constructed state.
func (f *Filter[T]) Reset() {
	for i := range f.buf {
		var zero T
		f.buf[i] = zero
		f.filled[i] = false
	}
	f.cursor = 0
}
