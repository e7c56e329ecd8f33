// cmd/weaponlab/main.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// weaponlab is a command-line harness around the kv and recoil packages:
// it checks weapon files, shows what the parser makes of them, applies
// edits, and prints recoil previews.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/goforj/godump"
	"github.com/r5v/weaponlab/kv"
	"github.com/r5v/weaponlab/log"
	"github.com/r5v/weaponlab/recoil"
)

var (
	logLevel      = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir        = flag.String("logdir", "", "log file directory")
	lintFlag      = flag.Bool("lint", false, "check the given weapon files and report problems")
	strictLint    = flag.Bool("strict", false, "with -lint, fail on warnings as well as errors")
	dumpDoc       = flag.Bool("dump", false, "dump the parsed document")
	jsonOut       = flag.Bool("json", false, "print the parsed document (or the recoil preview with -recoil) as JSON")
	writeBack     = flag.Bool("w", false, "with -set, write the result back to the file instead of printing it")
	recoilPreview = flag.Bool("recoil", false, "print the recoil preview for the weapon")
	patternName   = flag.String("pattern", "", "recoil pattern to use instead of the weapon's viewkick_pattern")
	viewMode      = flag.String("mode", "", "view mode for -recoil: hipfire or ads (default from config)")
	airborne      = flag.Bool("air", false, "preview recoil while airborne")
	variants      = flag.Int("variants", 0, "number of trajectories for -recoil, including the primary (default from config)")
	noCache       = flag.Bool("nocache", false, "don't read or write the recoil result cache")
	patternFile   = flag.String("patterns", "", "JSON pattern table to use instead of the built-in one")
	listPatterns  = flag.Bool("listpatterns", false, "list the available recoil patterns")
	edits         editList
)

func init() {
	flag.Var(&edits, "set", "`key=value` edit to apply; may be repeated")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: weaponlab [flags] file.txt...\nwhere [flags] may be:\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	config, err := LoadOrMakeDefaultConfig(lg)
	if err != nil {
		lg.Errorf("Error loading config: %v", err)
	}
	if *patternFile == "" {
		*patternFile = config.PatternFile
	}

	lib, err := loadLibrary(*patternFile)
	if err != nil {
		lg.Errorf("%v", err)
		os.Exit(1)
	}

	if *listPatterns {
		for _, name := range lib.Names() {
			p, _ := lib.Lookup(name)
			fmt.Printf("%-20s %3d bullets, loops from %d\n", name, len(p.Bullets), p.LoopOffset)
		}
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		usage()
	}

	if *lintFlag {
		if !lintFiles(files, lib, *strictLint, os.Stdout, lg) {
			os.Exit(1)
		}
		return
	}

	if len(files) != 1 {
		fmt.Fprintln(os.Stderr, "weaponlab: only -lint accepts more than one file")
		usage()
	}
	fn := files[0]

	contents, err := os.ReadFile(fn)
	if err != nil {
		lg.Errorf("%v", err)
		os.Exit(1)
	}
	text := string(contents)

	if len(edits) > 0 {
		text = kv.UpdateAll(text, edits)
		lg.Infof("%s: applied %d edits", fn, len(edits))
		for _, p := range editProblems(kv.Parse(string(contents)), kv.Parse(text), edits) {
			lg.Warnf("%s: %s", fn, p)
		}
		if *writeBack {
			if text == string(contents) {
				lg.Infof("%s: unchanged", fn)
			} else if err := os.WriteFile(fn, []byte(text), 0o644); err != nil {
				lg.Errorf("%v", err)
				os.Exit(1)
			}
		} else if !*dumpDoc && !*jsonOut && !*recoilPreview {
			fmt.Print(text)
		}
	}

	doc := kv.Parse(text)

	if *dumpDoc {
		godump.Dump(doc)
	}
	if *jsonOut && !*recoilPreview {
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			lg.Errorf("%v", err)
			os.Exit(1)
		}
		fmt.Println(string(b))
	}

	if *recoilPreview {
		if err := previewRecoil(os.Stdout, doc, lib, config, lg.With("file", fn)); err != nil {
			lg.Errorf("%v", err)
			os.Exit(1)
		}
	}
}

func loadLibrary(fn string) (*recoil.Library, error) {
	if fn == "" {
		return recoil.DefaultLibrary(), nil
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	lib, err := recoil.LoadLibrary(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return lib, nil
}
