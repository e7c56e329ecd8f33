// kv/scan.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package kv

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/r5v/weaponlab/util"
)

type LineKind int

const (
	Blank LineKind = iota
	Comment
	Brace
	// Header is a line holding a single bare or quoted token, e.g.
	// WeaponData, "Mods", or a mod name.
	Header
	KeyValue
	Other
)

func (k LineKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Brace:
		return "brace"
	case Header:
		return "header"
	case KeyValue:
		return "keyvalue"
	default:
		return "other"
	}
}

// Line is one classified source line. Text is the raw line without its
// '\n'; a trailing '\r' stays part of Text.
type Line struct {
	Num  int // 1-based
	Text string
	Kind LineKind

	// Set for Header lines.
	Name string
	// Set for KeyValue lines.
	Key   string
	Value Value
}

var (
	kvLineRe  = regexp.MustCompile(`^"([^"]+)"\s+(?:"([^"]*)"|(\S+))`)
	decimalRe = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)
	headerRe  = regexp.MustCompile(`^(?:"[^"\s]+"|[^"\s{}]+)$`)
)

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// Scan classifies every line of text. It never fails; lines it does not
// understand are returned as Other.
func Scan(text string) []Line {
	raw := splitLines(text)
	lines := make([]Line, len(raw))
	for i, s := range raw {
		lines[i] = classify(i+1, s)
	}
	return lines
}

func classify(num int, s string) Line {
	l := Line{Num: num, Text: s, Kind: Other}
	t := strings.TrimSpace(s)

	switch {
	case t == "":
		l.Kind = Blank
	case strings.HasPrefix(t, "//"):
		l.Kind = Comment
	case t == "{" || t == "}":
		l.Kind = Brace
	case headerRe.MatchString(t):
		// Includes the WeaponData and Mods section markers, which are
		// structure rather than data.
		l.Kind = Header
		l.Name = util.Unquote(t)
	default:
		if key, v, ok := matchKeyValue(t); ok {
			l.Kind = KeyValue
			l.Key = key
			l.Value = v
		}
	}
	return l
}

// matchKeyValue matches a trimmed `"key" value` line. Bare values have
// any glued-on // comment removed before they are classified.
func matchKeyValue(t string) (string, Value, bool) {
	m := kvLineRe.FindStringSubmatchIndex(t)
	if m == nil {
		return "", Value{}, false
	}
	key := t[m[2]:m[3]]

	if m[4] >= 0 {
		return key, Value{Raw: t[m[4]:m[5]]}, true
	}

	bare := t[m[6]:m[7]]
	if i := strings.Index(bare, "//"); i >= 0 {
		bare = bare[:i]
	}
	if bare == "" || bare == "{" || bare == "}" {
		return "", Value{}, false
	}
	return key, bareValue(bare), true
}

func bareValue(s string) Value {
	v := Value{Raw: s}
	if decimalRe.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			v.Number = f
			v.IsNumber = true
		}
	}
	return v
}

///////////////////////////////////////////////////////////////////////////
// Tokens

type token struct {
	text   string // quotes removed
	quoted bool
	line   int
}

func (t token) isOpen() bool  { return !t.quoted && t.text == "{" }
func (t token) isClose() bool { return !t.quoted && t.text == "}" }

// tokenize splits text into words, quoted strings and braces, dropping //
// comments. An unterminated quote runs to the end of its line.
func tokenize(text string) []token {
	var toks []token
	for i, s := range splitLines(text) {
		num := i + 1
		for j := 0; j < len(s); {
			c := s[j]
			switch {
			case c == ' ' || c == '\t' || c == '\r':
				j++
			case c == '/' && j+1 < len(s) && s[j+1] == '/':
				j = len(s)
			case c == '{' || c == '}':
				toks = append(toks, token{text: s[j : j+1], line: num})
				j++
			case c == '"':
				end := strings.IndexByte(s[j+1:], '"')
				if end < 0 {
					toks = append(toks, token{text: strings.TrimRight(s[j+1:], "\r"), quoted: true, line: num})
					j = len(s)
				} else {
					toks = append(toks, token{text: s[j+1 : j+1+end], quoted: true, line: num})
					j += end + 2
				}
			default:
				k := j
				for k < len(s) && !strings.ContainsRune(" \t\r{}\"", rune(s[k])) &&
					!(s[k] == '/' && k+1 < len(s) && s[k+1] == '/') {
					k++
				}
				toks = append(toks, token{text: s[j:k], line: num})
				j = k
			}
		}
	}
	return toks
}
