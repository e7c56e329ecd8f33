// util/cache_test.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"os"
	"testing"
)

func setCacheDir(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("LocalAppData", dir)
	return dir
}

func TestCacheStoreRetrieve(t *testing.T) {
	setCacheDir(t)

	type entry struct {
		Name   string
		Points []float64
	}
	in := []entry{{Name: "a", Points: []float64{1, -2.5}}, {Name: "b"}}
	if err := CacheStoreObject("test/entries.msgpack.zst", in); err != nil {
		t.Fatalf("CacheStoreObject: %v", err)
	}

	var out []entry
	if _, err := CacheRetrieveObject("test/entries.msgpack.zst", &out); err != nil {
		t.Fatalf("CacheRetrieveObject: %v", err)
	}
	if len(out) != 2 || out[0].Name != "a" || len(out[0].Points) != 2 || out[0].Points[1] != -2.5 || out[1].Name != "b" {
		t.Errorf("retrieved %+v, want %+v", out, in)
	}

	if _, err := CacheRetrieveObject("test/missing", &out); !os.IsNotExist(err) {
		t.Errorf("missing object: got err %v, want not-exist", err)
	}
}

func TestCacheCullObjects(t *testing.T) {
	setCacheDir(t)

	if err := CacheStoreObject("a", make([]byte, 4096)); err != nil {
		t.Fatal(err)
	}
	if err := CacheCullObjects(0); err != nil {
		t.Fatal(err)
	}
	path, _ := CachePath("a")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be culled, stat err %v", path, err)
	}
}
