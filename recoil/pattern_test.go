// recoil/pattern_test.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package recoil

import (
	"slices"
	"strings"
	"testing"
)

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()
	want := []string{"ar_vertical", "default", "lmg_sway", "marksman_kick", "pistol_snap",
		"rifle_zigzag", "shotgun_punch", "smg_climb"}
	if got := lib.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	p, ok := lib.Lookup("rifle_zigzag")
	if !ok {
		t.Fatal("rifle_zigzag missing")
	}
	if p.Name != "rifle_zigzag" || len(p.Bullets) != 6 || p.LoopOffset != 2 {
		t.Errorf("rifle_zigzag = %+v", p)
	}
	if b := p.Bullets[2]; b != (Bullet{Yaw: -0.35, Pitch: 1.1, YawRandom: 0.2, PitchRandom: 0.1}) {
		t.Errorf("bullet 2 = %+v", b)
	}
	if DefaultLibrary() != lib {
		t.Errorf("default library loaded more than once")
	}
}

func TestLoadLibraryErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		err  string
	}{
		{name: "duplicate", json: `{"a": {"bullets": [[0,1,0,0]]}, "a": {"bullets": [[0,1,0,0]]}}`, err: "repeatedly defined"},
		{name: "no bullets", json: `{"a": {"bullets": []}}`, err: "no bullets"},
		{name: "bad loop", json: `{"a": {"loopOffset": 1, "bullets": [[0,1,0,0]]}}`, err: "loopOffset"},
		{name: "syntax", json: "{\n\"a\": {\"bullets\": [[0,1,0,0]]\n", err: "line"},
		{name: "type", json: `{"a": {"bullets": "x"}}`, err: "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLibrary([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.err) {
				t.Errorf("err = %v, want mention of %q", err, tt.err)
			}
		})
	}

	lib, err := LoadLibrary([]byte(`{"x": {"loopOffset": 0, "bullets": [[1, 2, 3, 4]]}}`))
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := lib.Lookup("x"); !slices.Equal(p.Bullets, []Bullet{{1, 2, 3, 4}}) {
		t.Errorf("x = %+v", p)
	}
}

func TestNewLibraryCopies(t *testing.T) {
	bullets := []Bullet{{Pitch: 1}}
	lib := NewLibrary(Pattern{Name: "a", Bullets: bullets}, Pattern{Name: "a", Bullets: []Bullet{{Pitch: 2}}})
	bullets[0].Pitch = 9
	p, _ := lib.Lookup("a")
	if p.Bullets[0].Pitch != 2 || lib.Len() != 1 {
		t.Errorf("a = %+v", p)
	}
}

func TestLibraryFingerprint(t *testing.T) {
	base := []Pattern{
		{Name: "a", Bullets: []Bullet{{Pitch: 1}, {Pitch: 2}}},
		{Name: "b", Bullets: []Bullet{{Yaw: 1}}, LoopOffset: 0},
	}
	fp := NewLibrary(base...).Fingerprint()

	if got := NewLibrary(base[1], base[0]).Fingerprint(); got != fp {
		t.Errorf("pattern order changed the fingerprint")
	}

	tests := []struct {
		name     string
		patterns []Pattern
	}{
		{"bullet", []Pattern{{Name: "a", Bullets: []Bullet{{Pitch: 1}, {Pitch: 2.5}}}, base[1]}},
		{"loop", []Pattern{{Name: "a", Bullets: base[0].Bullets, LoopOffset: 1}, base[1]}},
		{"rename", []Pattern{{Name: "c", Bullets: base[0].Bullets}, base[1]}},
		{"missing", []Pattern{base[0]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if NewLibrary(tt.patterns...).Fingerprint() == fp {
				t.Errorf("fingerprint unchanged")
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	lib := DefaultLibrary()
	tests := []struct {
		in    string
		first string
	}{
		{"smg", "smg_climb"},
		{"SMG_CLIMB", "smg_climb"},
		{"zigzag", "rifle_zigzag"},
		{"pistol_snpa", "pistol_snap"},
		{"defualt", "default"},
	}
	for _, tt := range tests {
		s := lib.Suggest(tt.in)
		if len(s) == 0 || s[0] != tt.first {
			t.Errorf("Suggest(%q) = %v, want %q first", tt.in, s, tt.first)
		}
		if len(s) > 3 {
			t.Errorf("Suggest(%q) returned %d names", tt.in, len(s))
		}
	}
	if s := lib.Suggest("qqqqqqqqqqqq"); len(s) != 0 {
		t.Errorf("Suggest(nonsense) = %v", s)
	}
}
