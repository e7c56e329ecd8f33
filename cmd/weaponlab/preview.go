// cmd/weaponlab/preview.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/r5v/weaponlab/kv"
	"github.com/r5v/weaponlab/log"
	"github.com/r5v/weaponlab/recoil"
	"github.com/r5v/weaponlab/util"
)

const (
	recoilCacheFile = "recoil-cache.msgpack.zst"
	// Bump when the simulator changes.
	recoilCacheVersion = 1
)

type savedRecoilCache struct {
	Version     int
	PatternFile string
	Fingerprint uint64
	Entries     []recoil.CacheEntry
}

// current reports whether s was saved by this version from the same
// pattern table.
func (s savedRecoilCache) current(patternFile string, lib *recoil.Library) bool {
	return s.Version == recoilCacheVersion && s.PatternFile == patternFile &&
		s.Fingerprint == lib.Fingerprint()
}

func loadRecoilCache(c *recoil.Cache, lib *recoil.Library, patternFile string, lg *log.Logger) {
	var saved savedRecoilCache
	if _, err := util.CacheRetrieveObject(recoilCacheFile, &saved); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			lg.Warnf("%s: %v", recoilCacheFile, err)
		}
		return
	}
	if !saved.current(patternFile, lib) {
		lg.Infof("%s: discarding stale recoil cache", recoilCacheFile)
		return
	}
	c.Restore(saved.Entries)
}

func saveRecoilCache(c *recoil.Cache, lib *recoil.Library, patternFile string, maxBytes int64, lg *log.Logger) {
	saved := savedRecoilCache{
		Version:     recoilCacheVersion,
		PatternFile: patternFile,
		Fingerprint: lib.Fingerprint(),
		Entries:     c.Entries(),
	}
	if err := util.CacheStoreObject(recoilCacheFile, saved); err != nil {
		lg.Warnf("%s: %v", recoilCacheFile, err)
		return
	}
	if err := util.CacheCullObjects(maxBytes); err != nil {
		lg.Warnf("cache cull: %v", err)
	}
}

// previewSettings gathers the simulator arguments from the flags, the
// weapon and the config, in that order of precedence.
func previewSettings(doc *kv.Document, config *Config) (pattern string, mode recoil.ViewMode, n int, err error) {
	pattern = *patternName
	if pattern == "" {
		pattern = doc.String(recoil.PatternKey)
	}
	if pattern == "" {
		return "", "", 0, fmt.Errorf("no %s in the weapon file; use -pattern", recoil.PatternKey)
	}

	m := *viewMode
	if m == "" {
		m = config.ViewMode
	}
	if mode, err = recoil.ParseViewMode(m); err != nil {
		return "", "", 0, err
	}

	n = *variants
	if n == 0 {
		n = config.Variants
	}
	return pattern, mode, recoil.ClampVariants(n), nil
}

func previewRecoil(w io.Writer, doc *kv.Document, lib *recoil.Library, config *Config, lg *log.Logger) error {
	pattern, mode, n, err := previewSettings(doc, config)
	if err != nil {
		return err
	}

	var res recoil.Result
	if *noCache {
		res = lib.Simulate(doc, pattern, mode, *airborne, n)
	} else {
		c := recoil.NewCache(lib, config.CacheSize, 0, lg)
		loadRecoilCache(c, lib, *patternFile, lg)
		res = c.Simulate(doc, pattern, mode, *airborne, n)
		saveRecoilCache(c, lib, *patternFile, config.CacheMaxBytes, lg)
	}

	if res.Empty() {
		msg := fmt.Sprintf("%q: unknown recoil pattern", pattern)
		if s := lib.Suggest(pattern); len(s) > 0 {
			msg += fmt.Sprintf(" (did you mean %v?)", s)
		}
		return errors.New(msg)
	}

	if *jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	writePreview(w, pattern, mode, *airborne, res)
	return nil
}

func writePreview(w io.Writer, pattern string, mode recoil.ViewMode, air bool, res recoil.Result) {
	where := "ground"
	if air {
		where = "air"
	}
	fmt.Fprintf(w, "pattern %s, %s, %s: %d shots\n", pattern, mode, where, len(res.Primary.Points))

	fmt.Fprintf(w, "%5s %10s %10s", "shot", "x", "y")
	for i := range res.Variants {
		fmt.Fprintf(w, " %10s %10s", fmt.Sprintf("x%d", i+1), fmt.Sprintf("y%d", i+1))
	}
	fmt.Fprintln(w)

	for i, p := range res.Primary.Points {
		fmt.Fprintf(w, "%5d %10.4f %10.4f", i+1, p.X, p.Y)
		for _, v := range res.Variants {
			q := v.Points[i]
			fmt.Fprintf(w, " %10.4f %10.4f", q.X, q.Y)
		}
		fmt.Fprintln(w)
	}

	if b := res.Primary.Bounds; b != nil {
		fmt.Fprintf(w, "bounds x [%.4f, %.4f] y [%.4f, %.4f]\n", b.MinX, b.MaxX, b.MinY, b.MaxY)
	}
}
