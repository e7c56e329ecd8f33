// kv/blocks.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package kv

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/r5v/weaponlab/util"
)

// ModEntry is one mod from the Mods block. An empty Properties map is a
// mod that keeps all the weapon's defaults.
type ModEntry struct {
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties"`
}

// CrosshairEntry is one Crosshair_<N> block. UI and BaseSpread are empty
// when the block does not set them.
type CrosshairEntry struct {
	Name       string            `json:"name"`
	UI         string            `json:"ui,omitempty"`
	BaseSpread string            `json:"baseSpread,omitempty"`
	Args       map[string]string `json:"args"`
}

type CrosshairData struct {
	DefaultArgs map[string]string `json:"defaultArgs"`
	Crosshairs  []CrosshairEntry  `json:"crosshairs"`
}

///////////////////////////////////////////////////////////////////////////
// Block tree

// node is a brace-delimited block. Brace matching is only used by the
// special block parsers; the flat property pass ignores nesting.
type node struct {
	name  string // unquoted header word before the '{'; "" if none
	line  int
	items []item
}

// item holds either a group of words (the tokens of one line between
// braces) or a nested block.
type item struct {
	words []token
	block *node
}

// buildTree matches braces as best it can: a stray '}' at the top level
// is dropped and blocks still open at the end of the text are closed
// implicitly.
func buildTree(toks []token) *node {
	root := &node{}
	stack := []*node{root}
	var group []token

	flush := func() {
		if len(group) > 0 {
			top := stack[len(stack)-1]
			top.items = append(top.items, item{words: group})
			group = nil
		}
	}

	for _, t := range toks {
		switch {
		case t.isOpen():
			flush()
			top := stack[len(stack)-1]
			b := &node{line: t.line}
			// A lone word right before the brace names the block, as does
			// a word left over after key/value pairs on the brace's line.
			if n := len(top.items); n > 0 && top.items[n-1].block == nil && namesBlock(top.items[n-1].words, t.line) {
				words := top.items[n-1].words
				w := words[len(words)-1]
				b.name, b.line = w.text, w.line
				if len(words) == 1 {
					top.items = top.items[:n-1]
				} else {
					top.items[n-1].words = words[:len(words)-1]
				}
			}
			top.items = append(top.items, item{block: b})
			stack = append(stack, b)

		case t.isClose():
			flush()
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		default:
			if len(group) > 0 && group[len(group)-1].line != t.line {
				flush()
			}
			group = append(group, t)
		}
	}
	flush()

	return root
}

func namesBlock(words []token, braceLine int) bool {
	switch {
	case len(words) == 1:
		return true
	case len(words)%2 == 1:
		return words[len(words)-1].line == braceLine
	default:
		return false
	}
}

// find returns the first block named name in textual order.
func (n *node) find(name string) *node {
	for _, it := range n.items {
		if it.block == nil {
			continue
		}
		if it.block.name == name {
			return it.block
		}
		if b := it.block.find(name); b != nil {
			return b
		}
	}
	return nil
}

// HasBlock reports whether text has a block headed by name, quoted or
// not. Used for blocks such as UiData1 that are detected but not parsed.
func HasBlock(text, name string) bool {
	return buildTree(tokenize(text)).find(name) != nil
}

// addPairs stores consecutive words as key, value, key, value...
func addPairs(m map[string]string, words []token) {
	for i := 0; i+1 < len(words); i += 2 {
		m[words[i].text] = words[i+1].text
	}
}

// addArg stores the first word as the key and the remaining words,
// joined with single spaces, as its value.
func addArg(m map[string]string, words []token) {
	if len(words) == 0 {
		return
	}
	rest := make([]string, 0, len(words)-1)
	for _, w := range words[1:] {
		rest = append(rest, w.text)
	}
	m[words[0].text] = strings.Join(rest, " ")
}

///////////////////////////////////////////////////////////////////////////
// Mods

// ParseMods returns the mods of the first Mods block in text, in source
// order. It returns nil when there is no Mods block.
func ParseMods(text string) []ModEntry {
	return modsFromTree(buildTree(tokenize(text)))
}

func modsFromTree(root *node) []ModEntry {
	mb := root.find("Mods")
	if mb == nil {
		return nil
	}

	var mods []ModEntry
	for _, it := range mb.items {
		// Loose words inside Mods are neither names nor properties.
		if it.block == nil || it.block.name == "" {
			continue
		}
		m := ModEntry{Name: it.block.name, Properties: make(map[string]string)}
		for _, sub := range it.block.items {
			// Deeper blocks inside a mod are skipped.
			if sub.block == nil {
				addPairs(m.Properties, sub.words)
			}
		}
		mods = append(mods, m)
	}
	return mods
}

///////////////////////////////////////////////////////////////////////////
// RUI crosshair data

// crosshairNumber returns N for a block named Crosshair_<N>.
func crosshairNumber(name string) (int, bool) {
	digits, ok := strings.CutPrefix(name, "Crosshair_")
	if !ok || digits == "" || !util.IsAllNumbers(digits) {
		return 0, false
	}
	n, _ := strconv.Atoi(digits)
	return n, true
}

// ParseCrosshairData parses the first RUI_CrosshairData block. ok is false
// if there is none; a block without crosshairs gives an empty list.
func ParseCrosshairData(text string) (data CrosshairData, ok bool) {
	return crosshairFromTree(buildTree(tokenize(text)))
}

func crosshairFromTree(root *node) (CrosshairData, bool) {
	rb := root.find("RUI_CrosshairData")
	if rb == nil {
		return CrosshairData{}, false
	}

	cd := CrosshairData{
		DefaultArgs: make(map[string]string),
		Crosshairs:  []CrosshairEntry{},
	}

	if da := rb.find("DefaultArgs"); da != nil {
		for _, it := range da.items {
			if it.block == nil {
				addArg(cd.DefaultArgs, it.words)
			}
		}
	}

	type numbered struct {
		n     int
		entry CrosshairEntry
	}
	var found []numbered

	var walk func(n *node)
	walk = func(n *node) {
		for _, it := range n.items {
			if it.block == nil {
				continue
			}
			if num, ok := crosshairNumber(it.block.name); ok {
				found = append(found, numbered{n: num, entry: crosshairEntry(it.block)})
				continue
			}
			walk(it.block)
		}
	}
	walk(rb)

	slices.SortStableFunc(found, func(a, b numbered) int { return cmp.Compare(a.n, b.n) })
	for _, f := range found {
		cd.Crosshairs = append(cd.Crosshairs, f.entry)
	}

	return cd, true
}

func crosshairEntry(b *node) CrosshairEntry {
	e := CrosshairEntry{Name: b.name, Args: make(map[string]string)}

	var walk func(n *node, inArgs bool)
	walk = func(n *node, inArgs bool) {
		for _, it := range n.items {
			switch {
			case it.block != nil:
				walk(it.block, inArgs || it.block.name == "Args")
			case inArgs:
				addArg(e.Args, it.words)
			default:
				// Outside Args only ui and base_spread are of interest.
				for i := 0; i+1 < len(it.words); i += 2 {
					switch it.words[i].text {
					case "ui":
						e.UI = it.words[i+1].text
					case "base_spread":
						e.BaseSpread = it.words[i+1].text
					}
				}
			}
		}
	}
	walk(b, false)

	return e
}
