// cmd/weaponlab/edit.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"strings"

	"github.com/r5v/weaponlab/kv"
)

// editList collects repeated -set flags.
type editList []kv.Edit

func (e *editList) String() string {
	var s []string
	for _, ed := range *e {
		s = append(s, ed.Key+"="+ed.Value)
	}
	return strings.Join(s, ",")
}

func (e *editList) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("%q: expected key=value", s)
	}
	*e = append(*e, kv.Edit{Key: key, Value: value})
	return nil
}

// editProblems compares the documents parsed before and after edits were
// applied. It reports edited keys that do not read back as the value
// asked for, most often because the key is repeated and a later line
// wins, and any unedited property that changed.
func editProblems(before, after *kv.Document, edits []kv.Edit) []string {
	final := make(map[string]string)
	var order []string
	for _, ed := range edits {
		if _, ok := final[ed.Key]; !ok {
			order = append(order, ed.Key)
		}
		final[ed.Key] = ed.Value
	}

	var problems []string
	rest := after.Clone()
	for _, key := range order {
		if p, ok := before.Get(key); ok {
			rest.Properties[key] = p
		} else {
			delete(rest.Properties, key)
		}

		want := final[key]
		if strings.ContainsAny(want, "\"\r\n") {
			// Written with those characters dropped.
			continue
		}
		if _, ok := before.Get(key); !ok && want == "" {
			continue
		}
		if got := after.String(key); got != want {
			p, _ := after.Get(key)
			problems = append(problems, fmt.Sprintf("%s: reads back as %q from line %d, not %q", key, got, p.Line, want))
		}
	}

	if !rest.Equal(before) {
		problems = append(problems, "edits changed properties that were not edited")
	}
	return problems
}
