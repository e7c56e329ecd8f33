// recoil/pattern.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package recoil previews weapon viewkick: the path the crosshair walks
// over a full magazine given a named recoil pattern and the viewkick
// properties of a weapon file. Results are deterministic for a given set
// of inputs.
package recoil

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/r5v/weaponlab/util"
)

// Bullet is one row of a pattern: the base kick for the shot and how
// much random spread is allowed on each axis.
type Bullet struct {
	Yaw         float64
	Pitch       float64
	YawRandom   float64
	PitchRandom float64
}

type Pattern struct {
	Name    string
	Bullets []Bullet
	// Shots past the end of Bullets cycle through Bullets[LoopOffset:].
	LoopOffset int
}

// BulletIndex returns the index into p.Bullets used for shot i, or -1 if
// the pattern has no bullets.
func (p Pattern) BulletIndex(i int) int {
	n := len(p.Bullets)
	if n == 0 {
		return -1
	}
	if i < n {
		return i
	}
	loop := util.Clamp(p.LoopOffset, 0, n-1)
	return loop + (i-loop)%(n-loop)
}

// Library is an immutable set of patterns, keyed by name.
type Library struct {
	patterns    map[string]Pattern
	fingerprint uint64
}

// NewLibrary returns a library holding the given patterns. If a name
// repeats, the last pattern with that name is used.
func NewLibrary(patterns ...Pattern) *Library {
	l := &Library{patterns: make(map[string]Pattern, len(patterns))}
	for _, p := range patterns {
		p.Bullets = slices.Clone(p.Bullets)
		l.patterns[p.Name] = p
	}
	l.fingerprint = l.hash()
	return l
}

// Fingerprint is a hash of the library's contents. Libraries with the
// same patterns have the same fingerprint.
func (l *Library) Fingerprint() uint64 {
	return l.fingerprint
}

func (l *Library) hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		d.Write(buf[:])
	}
	for _, name := range l.Names() {
		p := l.patterns[name]
		d.WriteString(name)
		d.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], uint64(p.LoopOffset))
		d.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(len(p.Bullets)))
		d.Write(buf[:])
		for _, b := range p.Bullets {
			putFloat(b.Yaw)
			putFloat(b.Pitch)
			putFloat(b.YawRandom)
			putFloat(b.PitchRandom)
		}
	}
	return d.Sum64()
}

func (l *Library) Lookup(name string) (Pattern, bool) {
	p, ok := l.patterns[name]
	return p, ok
}

// Names returns the pattern names in sorted order.
func (l *Library) Names() []string {
	return util.SortedMapKeys(l.patterns)
}

func (l *Library) Len() int {
	return len(l.patterns)
}

// Suggest returns up to three pattern names that name may have been
// meant as, best match first.
func (l *Library) Suggest(name string) []string {
	const maxSuggestions = 3
	names := l.Names()

	ranks := fuzzy.RankFindFold(name, names)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int { return a.Distance - b.Distance })

	var s []string
	for _, r := range ranks {
		if len(s) == maxSuggestions {
			break
		}
		s = append(s, r.Target)
	}
	if len(s) > 0 {
		return s
	}

	// No candidate contains all of name's characters in order; fall back
	// to edit distance to catch transpositions and wrong letters.
	type cand struct {
		name string
		dist int
	}
	var cands []cand
	limit := max(2, len(name)/3)
	for _, n := range names {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(n)); d <= limit {
			cands = append(cands, cand{name: n, dist: d})
		}
	}
	slices.SortStableFunc(cands, func(a, b cand) int { return a.dist - b.dist })
	for _, c := range cands[:min(len(cands), maxSuggestions)] {
		s = append(s, c.name)
	}
	return s
}

///////////////////////////////////////////////////////////////////////////
// Embedded pattern table

//go:embed patterns.json
var patternsJSON []byte

type jsonPattern struct {
	LoopOffset int          `json:"loopOffset"`
	Bullets    [][4]float64 `json:"bullets"`
}

// LoadLibrary reads a pattern table in the format of the built-in one:
// a JSON object from pattern name to {"loopOffset", "bullets"}, each
// bullet being [yaw, pitch, yawRandom, pitchRandom].
func LoadLibrary(data []byte) (*Library, error) {
	if dups := util.DuplicateObjectKeys(data); len(dups) > 0 {
		return nil, fmt.Errorf("%s: pattern repeatedly defined", strings.Join(dups, ", "))
	}

	var table map[string]jsonPattern
	if err := util.UnmarshalJSONBytes(data, &table); err != nil {
		return nil, err
	}

	var patterns []Pattern
	for _, name := range util.SortedMapKeys(table) {
		jp := table[name]
		if len(jp.Bullets) == 0 {
			return nil, fmt.Errorf("%s: pattern has no bullets", name)
		}
		if jp.LoopOffset < 0 || jp.LoopOffset >= len(jp.Bullets) {
			return nil, fmt.Errorf("%s: loopOffset %d outside [0,%d)", name, jp.LoopOffset, len(jp.Bullets))
		}
		patterns = append(patterns, Pattern{
			Name:       name,
			LoopOffset: jp.LoopOffset,
			Bullets: util.MapSlice(jp.Bullets, func(b [4]float64) Bullet {
				return Bullet{Yaw: b[0], Pitch: b[1], YawRandom: b[2], PitchRandom: b[3]}
			}),
		})
	}
	return NewLibrary(patterns...), nil
}

var defaultLibrary = sync.OnceValue(func() *Library {
	lib, err := LoadLibrary(patternsJSON)
	if err != nil {
		panic("patterns.json: " + err.Error())
	}
	return lib
})

// DefaultLibrary returns the built-in pattern table.
func DefaultLibrary() *Library {
	return defaultLibrary()
}
