// util/text.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"strings"
)

// Unquote removes one pair of surrounding double quotes, if present.
// There are no escape sequences in KeyValue files, so nothing else is
// interpreted.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// IsQuoted reports whether s is wrapped in double quotes.
func IsQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

func IsAllNumbers(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// PadRight pads s with spaces to width columns, always adding at least
// one space.
func PadRight(s string, width int) string {
	n := width - len(s)
	if n < 1 {
		n = 1
	}
	return s + strings.Repeat(" ", n)
}
