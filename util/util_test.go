// util/util_test.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestErrorLogger(t *testing.T) {
	var e ErrorLogger
	if e.HaveErrors() || e.HaveWarnings() {
		t.Fatalf("fresh ErrorLogger reports messages")
	}

	e.Push("weapon.txt")
	e.Push("Mods")
	e.ErrorString("bad %s", "brace")
	e.Pop()
	e.WarningString("duplicate key %q", "k")
	e.Error(errors.New("boom"))
	e.Pop()
	e.ErrorString("no context")

	want := []string{"weapon.txt / Mods: bad brace", "weapon.txt: boom", "no context"}
	if !slices.Equal(e.Errors(), want) {
		t.Errorf("Errors() = %q, want %q", e.Errors(), want)
	}
	if w := e.Warnings(); len(w) != 1 || w[0] != `weapon.txt: duplicate key "k"` {
		t.Errorf("Warnings() = %q", w)
	}
	if e.CurrentDepth() != 0 {
		t.Errorf("CurrentDepth() = %d, want 0", e.CurrentDepth())
	}

	var sb strings.Builder
	e.PrintErrors(&sb, nil)
	if got := strings.Count(sb.String(), "\n"); got != 4 {
		t.Errorf("PrintErrors wrote %d lines, want 4:\n%s", got, sb.String())
	}
}

func TestErrorLoggerMerge(t *testing.T) {
	var a, b ErrorLogger
	a.ErrorString("a")
	b.ErrorString("b")
	b.WarningString("w")
	a.Merge(&b)
	if !slices.Equal(a.Errors(), []string{"a", "b"}) || !slices.Equal(a.Warnings(), []string{"w"}) {
		t.Errorf("Merge: errors %q warnings %q", a.Errors(), a.Warnings())
	}
}

func TestCheckDepthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unbalanced Push")
		}
	}()

	var e ErrorLogger
	func() {
		defer e.CheckDepth(e.CurrentDepth())
		e.Push("never popped")
	}()
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want int
	}{
		{5, 1, 60, 5},
		{0, 1, 60, 1},
		{61, 1, 60, 60},
		{-3, -3, 3, -3},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := Clamp(1.5, 0.0, 1.0); got != 1 {
		t.Errorf("Clamp(1.5, 0, 1) = %v, want 1", got)
	}
}

func TestSortedMapKeys(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	if got := SortedMapKeys(m); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedMapKeys() = %v", got)
	}
	if got := MapSlice([]int{1, 2}, func(i int) int { return 2 * i }); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("MapSlice() = %v", got)
	}
}
