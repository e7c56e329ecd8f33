// rand/rand.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"unicode/utf16"
)

///////////////////////////////////////////////////////////////////////////
// Random numbers.

// Rand is a mulberry32 generator. Recoil previews must match other
// implementations of the editor bit-for-bit; all arithmetic is uint32
// with wraparound.
type Rand struct {
	t uint32
}

func Make(seed uint32) Rand {
	return Rand{t: seed}
}

func (r *Rand) Uint32() uint32 {
	r.t += 0x6d2b79f5
	x := r.t
	x = (x ^ x>>15) * (x | 1)
	x ^= x + (x^x>>7)*(x|61)
	return x ^ x>>14
}

// Float64 returns a value in [0,1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / 4294967296
}

// Signed returns a value in [-1,1).
func (r *Rand) Signed() float64 {
	return 2*r.Float64() - 1
}

// HashString is the classic h = h*31 + c string hash, computed over
// UTF-16 code units so that non-ASCII pattern names hash the same way
// they do in the editor's UI layer.
func HashString(s string) uint32 {
	var h uint32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + uint32(c)
	}
	return h
}
