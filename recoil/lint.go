// recoil/lint.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package recoil

import (
	"strings"

	"github.com/r5v/weaponlab/kv"
	"github.com/r5v/weaponlab/util"
)

// Lint checks the simulator inputs in doc against lib. Problems that make
// the preview empty are errors; inputs that fall back to a default or get
// clamped are warnings.
func Lint(doc *kv.Document, lib *Library, e *util.ErrorLogger) {
	if name := doc.String(PatternKey); name == "" {
		e.WarningString("%s: not set; there is no recoil preview", PatternKey)
	} else if _, ok := lib.Lookup(name); !ok {
		msg := "%s: %q: unknown pattern"
		if s := lib.Suggest(name); len(s) > 0 {
			msg += " (did you mean " + strings.Join(s, ", ") + "?)"
		}
		e.ErrorString(msg, PatternKey, name)
	}

	for _, f := range paramFields {
		if p, ok := doc.Get(f.key); ok && !p.Value.IsNumber {
			e.WarningString("%s: %q is not a number; using %v", f.key, p.Value.Raw, f.def)
		}
	}

	if p, ok := doc.Get("fire_rate"); ok && p.Value.IsNumber && p.Value.Number <= 0 {
		e.WarningString("fire_rate: %s is not positive; assuming %v seconds between shots", p.Value.Raw, defaultShotTime)
	}
	if p, ok := doc.Get("ammo_clip_size"); ok && p.Value.IsNumber && p.Value.Number != 0 {
		if n := p.Value.Number; n < 0.5 || n >= MaxShots+0.5 {
			e.WarningString("ammo_clip_size: %s is outside [1,%d]; the preview is clamped", p.Value.Raw, MaxShots)
		}
	}
}
