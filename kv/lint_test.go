// kv/lint_test.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package kv

import (
	"strings"
	"testing"

	"github.com/r5v/weaponlab/util"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		errors   []string
		warnings []string
	}{
		{
			name: "duplicate keys",
			text: "{\n\"k\" 1\n\"j\" 1\n\"k\" 2\n\"k\" 3\n}\n",
			warnings: []string{"k: defined 3 times: value from line 5 is used but edits change line 2"},
		},
		{
			name:   "stray close",
			text:   "{\n}\n}\n",
			errors: []string{"line 3: unmatched \"}\""},
		},
		{
			name:   "unclosed",
			text:   "WeaponData\n{\n\tMods\n\t{\n",
			errors: []string{"2 unclosed \"{\" at end of file"},
		},
		{
			name:     "mods without brace",
			text:     "{\n\tMods\n\t// comment\n\tgold\n\t{\n\t}\n}\n",
			warnings: []string{"line 2: \"Mods\" is not followed by a line holding only \"{\""},
		},
		{
			name: "mods one line",
			text: "Mods { gold { } }\n",
		},
		{
			name: "braces in strings",
			text: "{\n\"a\" \"{\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e util.ErrorLogger
			Lint(tt.text, &e)
			if got := strings.Join(e.Errors(), "|"); got != strings.Join(tt.errors, "|") {
				t.Errorf("errors = %q, want %q", e.Errors(), tt.errors)
			}
			if got := strings.Join(e.Warnings(), "|"); got != strings.Join(tt.warnings, "|") {
				t.Errorf("warnings = %q, want %q", e.Warnings(), tt.warnings)
			}
		})
	}
}

func TestLintWeaponFile(t *testing.T) {
	var e util.ErrorLogger
	Lint(weaponFile, &e)
	if e.HaveErrors() {
		t.Errorf("unexpected errors: %v", e.Errors())
	}
	// fire_rate appears at the top level and inside a mod, ui in both
	// crosshairs.
	if w := e.Warnings(); len(w) != 2 || !strings.HasPrefix(w[0], "fire_rate: ") || !strings.HasPrefix(w[1], "ui: ") {
		t.Errorf("warnings = %v", w)
	}
}
