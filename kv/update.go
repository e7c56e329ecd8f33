// kv/update.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package kv

import (
	"regexp"
	"strings"

	"github.com/r5v/weaponlab/util"
)

// keyColumn is the width the quoted key is padded to in rewritten lines.
const keyColumn = 40

var bareNumeralRe = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

type Edit struct {
	Key   string
	Value string
}

// The format has no escapes: a value cannot hold quotes or line breaks.
var valueCleaner = strings.NewReplacer(`"`, "", "\n", "", "\r", "")

// formatValue writes plain decimal numerals bare and everything else
// quoted, with quotes and line breaks dropped.
func formatValue(v string) string {
	if bareNumeralRe.MatchString(v) {
		return v
	}
	return `"` + valueCleaner.Replace(v) + `"`
}

func formatLine(indent, key, value string) string {
	return indent + util.PadRight(`"`+key+`"`, keyColumn) + formatValue(value)
}

// Update sets key to value in text and returns the new text. Only the
// first line carrying key is rewritten, even if later lines repeat it;
// Parse keeps the last one. If key is missing and value is non-empty, a
// line is added before the last closing brace of the file. Every other
// byte of text is returned unchanged.
func Update(text, key, value string) string {
	if key == "" {
		return text
	}

	re := regexp.MustCompile(`^(\s*)"` + regexp.QuoteMeta(key) + `"(\s+)("[^"]*"|\S+)(.*)$`)
	lines := splitLines(text)

	for i, s := range lines {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		indent, old, trailing := m[1], m[3], m[4]
		if !util.IsQuoted(old) {
			// A bare value may have a comment glued onto it.
			if j := strings.Index(old, "//"); j >= 0 {
				old, trailing = old[:j], old[j:]+trailing
			}
			if old == "" || old == "{" || old == "}" {
				continue
			}
		}

		out := formatLine(indent, key, value)
		if trailing != "" && !strings.ContainsRune(" \t\r", rune(trailing[0])) && !util.IsQuoted(formatValue(value)) {
			// Keep whatever followed from being read as part of a bare value.
			trailing = " " + trailing
		}
		lines[i] = out + trailing
		return strings.Join(lines, "\n")
	}

	if value == "" {
		return text
	}

	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "}" {
			continue
		}
		closing := lines[i]
		indent := closing[:len(closing)-len(strings.TrimLeft(closing, " \t"))]
		line := formatLine(indent+"\t", key, value)
		if strings.HasSuffix(closing, "\r") {
			line += "\r"
		}
		lines = append(lines[:i], append([]string{line}, lines[i:]...)...)
		return strings.Join(lines, "\n")
	}

	return text
}

// UpdateAll applies edits in order.
func UpdateAll(text string, edits []Edit) string {
	for _, e := range edits {
		text = Update(text, e.Key, e.Value)
	}
	return text
}
