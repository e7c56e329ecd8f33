// kv/lint.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package kv

import (
	"strings"

	"github.com/r5v/weaponlab/util"
)

// Lint reports structural problems in text that Parse silently
// tolerates. It does not change what Parse returns for the same text.
func Lint(text string, e *util.ErrorLogger) {
	lines := Scan(text)

	occurrences := make(map[string][]int)
	var order []string
	for _, l := range lines {
		if l.Kind != KeyValue {
			continue
		}
		if _, ok := occurrences[l.Key]; !ok {
			order = append(order, l.Key)
		}
		occurrences[l.Key] = append(occurrences[l.Key], l.Num)
	}
	for _, key := range order {
		if n := occurrences[key]; len(n) > 1 {
			e.Push(key)
			e.WarningString("defined %d times: value from line %d is used but edits change line %d",
				len(n), n[len(n)-1], n[0])
			e.Pop()
		}
	}

	depth, firstStray := 0, 0
	for _, t := range tokenize(text) {
		switch {
		case t.isOpen():
			depth++
		case t.isClose():
			if depth == 0 {
				if firstStray == 0 {
					firstStray = t.line
				}
			} else {
				depth--
			}
		}
	}
	if firstStray != 0 {
		e.ErrorString("line %d: unmatched \"}\"", firstStray)
	}
	if depth > 0 {
		e.ErrorString("%d unclosed \"{\" at end of file", depth)
	}

	for i, l := range lines {
		if l.Kind != Header || l.Name != "Mods" {
			continue
		}
		next := nextSignificant(lines[i+1:])
		if next == nil || strings.TrimSpace(next.Text) != "{" {
			e.WarningString("line %d: \"Mods\" is not followed by a line holding only \"{\"", l.Num)
		}
	}
}

func nextSignificant(lines []Line) *Line {
	for i := range lines {
		if lines[i].Kind != Blank && lines[i].Kind != Comment {
			return &lines[i]
		}
	}
	return nil
}
