// cmd/weaponlab/config.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/r5v/weaponlab/log"
	"github.com/r5v/weaponlab/recoil"
	"github.com/r5v/weaponlab/util"
)

const configVersion = 1

type Config struct {
	Version int

	// Defaults for -mode and -variants.
	ViewMode string
	Variants int

	// Number of recoil results kept in memory and the most the on-disk
	// cache directory may hold.
	CacheSize     int
	CacheMaxBytes int64

	// Optional JSON pattern table used instead of the built-in one.
	PatternFile string `json:",omitempty"`
}

func getDefaultConfig() *Config {
	return &Config{
		Version:       configVersion,
		ViewMode:      string(recoil.Hipfire),
		Variants:      3,
		CacheSize:     256,
		CacheMaxBytes: 16 << 20,
	}
}

func configFilePath(lg *log.Logger) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		lg.Errorf("Unable to find user config dir: %v", err)
		dir = "."
	}

	dir = filepath.Join(dir, "WeaponLab")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		lg.Errorf("%s: unable to make directory for config file: %v", dir, err)
	}

	return filepath.Join(dir, "config.json")
}

// LoadOrMakeDefaultConfig reads the config file, writing a default one if
// there is none. On a malformed file the defaults are returned along with
// the error.
func LoadOrMakeDefaultConfig(lg *log.Logger) (*Config, error) {
	fn := configFilePath(lg)
	lg.Infof("Loading config from: %s", fn)

	f, err := os.Open(fn)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		if err := config.Save(fn); err != nil {
			lg.Warnf("%s: %v", fn, err)
		}
		return config, nil
	} else if err != nil {
		return getDefaultConfig(), err
	}
	defer f.Close()

	config := getDefaultConfig()
	if err := util.UnmarshalJSON(f, config); err != nil {
		return getDefaultConfig(), fmt.Errorf("%s: %w", fn, err)
	}
	config.fixup(lg)

	return config, nil
}

// fixup replaces out-of-range values with defaults.
func (c *Config) fixup(lg *log.Logger) {
	def := getDefaultConfig()
	if _, err := recoil.ParseViewMode(c.ViewMode); err != nil {
		lg.Warnf("config: %v", err)
		c.ViewMode = def.ViewMode
	}
	if c.Variants < 1 || c.Variants > recoil.MaxVariants {
		lg.Warnf("config: Variants %d outside [1,%d]", c.Variants, recoil.MaxVariants)
		c.Variants = recoil.ClampVariants(c.Variants)
	}
	if c.CacheSize < 1 {
		c.CacheSize = def.CacheSize
	}
	if c.CacheMaxBytes < 0 {
		c.CacheMaxBytes = def.CacheMaxBytes
	}
	c.Version = configVersion
}

func (c *Config) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(c)
}

func (c *Config) Save(fn string) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.Encode(f); err != nil {
		return err
	}
	return f.Close()
}
