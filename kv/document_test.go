// kv/document_test.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package kv

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestParseWeapon(t *testing.T) {
	doc := Parse(weaponFile)

	if got := doc.String("printname"); got != "#WPN_R101" {
		t.Errorf("printname = %q", got)
	}
	if p, _ := doc.Get("ammo_clip_size"); p.Value.IsNumber {
		t.Errorf("quoted \"28\" parsed as a number")
	}
	if got := doc.Float("ammo_clip_size", 30); got != 30 {
		t.Errorf("Float(ammo_clip_size) = %v, want default 30", got)
	}
	if got := doc.Float("viewkick_pitch_base", 1); got != -0.6 {
		t.Errorf("Float(viewkick_pitch_base) = %v", got)
	}
	if got := doc.Float("missing", 7); got != 7 {
		t.Errorf("Float(missing) = %v", got)
	}

	// The flat pass ignores nesting, so the mod's fire_rate wins.
	if p, _ := doc.Get("fire_rate"); p.Value.Raw != "*0.9" || p.Line != 19 {
		t.Errorf("fire_rate = %+v", p)
	}
	if _, ok := doc.Get("WeaponData"); ok {
		t.Errorf("section header parsed as a property")
	}

	if len(doc.Mods) != 2 {
		t.Errorf("got %d mods, want 2", len(doc.Mods))
	}
	if doc.Crosshair == nil || len(doc.Crosshair.Crosshairs) != 2 {
		t.Errorf("crosshair data = %+v", doc.Crosshair)
	}
	if !doc.UIData1 || doc.UIData2 {
		t.Errorf("UIData1 = %v, UIData2 = %v", doc.UIData1, doc.UIData2)
	}
}

func TestLastOccurrenceWins(t *testing.T) {
	text := "WeaponData\n{\n\t\"k\" \"1\"\n\t\"a\" 2\n\n\n\t\"k\" \"2\"\n}\n"
	doc := Parse(text)
	p, ok := doc.Get("k")
	if !ok || p.Value.Raw != "2" || p.Line != 7 {
		t.Errorf("k = %+v, want value 2 from line 7", p)
	}
	if doc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", doc.Len())
	}
}

func TestParseTolerant(t *testing.T) {
	tests := []struct {
		name string
		text string
		keys []string
	}{
		{name: "empty", text: "", keys: []string{}},
		{name: "unbalanced", text: "}\n}\n{\n\"a\" 1\n{\n", keys: []string{"a"}},
		{name: "junk", text: "garbage line here\n\"b\" x\n\"\" 3\n\"c\"\n", keys: []string{"b"}},
		{name: "no trailing newline", text: "\"z\" \"last\"", keys: []string{"z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.text)
			if got := doc.Keys(); !slices.Equal(got, tt.keys) {
				t.Errorf("Keys() = %v, want %v", got, tt.keys)
			}
		})
	}
}

func TestKeysSourceOrder(t *testing.T) {
	doc := Parse("\"c\" 1\n\"a\" 2\n\"b\" 3\n\"c\" 4\n")
	if got, want := doc.Keys(), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestEqualAndClone(t *testing.T) {
	a := Parse(weaponFile)
	b := Parse(weaponFile)
	if !a.Equal(b) {
		t.Fatalf("identical text parsed to unequal documents")
	}

	// Line numbers are not part of equality.
	if !Parse("\"k\" 1").Equal(Parse("\n\n\"k\" 1")) {
		t.Errorf("documents differing only by line numbers compare unequal")
	}
	if Parse("\"k\" 1").Equal(Parse("\"k\" \"1\"")) {
		t.Errorf("number and string values compare equal")
	}

	c := a.Clone()
	c.Properties["printname"] = Property{Key: "printname", Value: Value{Raw: "changed"}}
	c.Mods[0].Properties["x"] = "y"
	if a.String("printname") != "#WPN_R101" || len(a.Mods[0].Properties) != 0 {
		t.Errorf("modifying a clone changed the original")
	}
}

func TestMarshalJSON(t *testing.T) {
	doc := Parse("\"b\" 2.5\n\"a\" \"x\"\nMods\n{\n\tgold\n\t{\n\t}\n}\n")
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"properties":{"b":2.5,"a":"x"},"mods":[{"name":"gold","properties":{}}]}`
	if string(data) != want {
		t.Errorf("json = %s\nwant   %s", data, want)
	}
}
