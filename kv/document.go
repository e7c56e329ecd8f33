// kv/document.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package kv reads and edits the brace-nested KeyValue text format used
// for weapon definitions. Parsing is forgiving: malformed input yields a
// partial Document, never an error. Editing works on the original text
// and leaves every untouched byte alone.
package kv

import (
	"cmp"
	"encoding/json"
	"slices"
	"strconv"

	"github.com/brunoga/deep"
	"github.com/iancoleman/orderedmap"
)

// Value is a property value. It is a number only if it was written
// unquoted and is a complete decimal literal; "30" in quotes is a string.
type Value struct {
	Raw      string
	Number   float64
	IsNumber bool
}

func (v Value) String() string {
	return v.Raw
}

type Property struct {
	Key   string
	Value Value
	Line  int
}

// Document is the parsed form of one weapon file. It is rebuilt from
// scratch on every load or edit.
type Document struct {
	// Properties holds the flat key/value pass over every line, nesting
	// ignored. When a key repeats, the last occurrence wins.
	Properties map[string]Property

	Mods      []ModEntry
	Crosshair *CrosshairData

	UIData1 bool
	UIData2 bool
}

func Parse(text string) *Document {
	doc := &Document{Properties: make(map[string]Property)}

	for _, l := range Scan(text) {
		if l.Kind == KeyValue {
			doc.Properties[l.Key] = Property{Key: l.Key, Value: l.Value, Line: l.Num}
		}
	}

	root := buildTree(tokenize(text))
	doc.Mods = modsFromTree(root)
	if ch, ok := crosshairFromTree(root); ok {
		doc.Crosshair = &ch
	}
	doc.UIData1 = root.find("UiData1") != nil
	doc.UIData2 = root.find("UiData2") != nil

	return doc
}

func (d *Document) Get(key string) (Property, bool) {
	p, ok := d.Properties[key]
	return p, ok
}

// String returns the raw value text for key, or "" if it is absent.
func (d *Document) String(key string) string {
	return d.Properties[key].Value.Raw
}

// Float returns the numeric value of key, or def if the key is missing
// or its value is not a number.
func (d *Document) Float(key string, def float64) float64 {
	if p, ok := d.Properties[key]; ok && p.Value.IsNumber {
		return p.Value.Number
	}
	return def
}

func (d *Document) Len() int {
	return len(d.Properties)
}

// Keys returns the property keys ordered by the source line of the
// occurrence that was kept.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.Properties))
	for k := range d.Properties {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return cmp.Or(cmp.Compare(d.Properties[a].Line, d.Properties[b].Line), cmp.Compare(a, b))
	})
	return keys
}

// Equal reports whether both documents hold the same key/value pairs.
// Source line numbers are not compared.
func (d *Document) Equal(other *Document) bool {
	if len(d.Properties) != len(other.Properties) {
		return false
	}
	for k, p := range d.Properties {
		op, ok := other.Properties[k]
		if !ok || op.Value != p.Value {
			return false
		}
	}
	return true
}

func (d *Document) Clone() *Document {
	return deep.MustCopy(d)
}

// MarshalJSON writes properties in source order, numbers as JSON
// numbers, followed by the mods and crosshair blocks.
func (d *Document) MarshalJSON() ([]byte, error) {
	props := orderedmap.New()
	for _, k := range d.Keys() {
		v := d.Properties[k].Value
		if v.IsNumber {
			props.Set(k, json.Number(strconv.FormatFloat(v.Number, 'g', -1, 64)))
		} else {
			props.Set(k, v.Raw)
		}
	}

	out := orderedmap.New()
	out.Set("properties", props)
	if len(d.Mods) > 0 {
		out.Set("mods", d.Mods)
	}
	if d.Crosshair != nil {
		out.Set("crosshair", d.Crosshair)
	}
	if d.UIData1 {
		out.Set("uiData1", true)
	}
	if d.UIData2 {
		out.Set("uiData2", true)
	}
	return json.Marshal(out)
}
