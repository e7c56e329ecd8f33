// cmd/weaponlab/lint.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/r5v/weaponlab/kv"
	"github.com/r5v/weaponlab/log"
	"github.com/r5v/weaponlab/recoil"
	"github.com/r5v/weaponlab/util"
	"golang.org/x/sync/errgroup"
)

// lintFile checks the structure of text and its simulator inputs.
func lintFile(fn, text string, lib *recoil.Library, e *util.ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	e.Push(fn)
	defer e.Pop()

	kv.Lint(text, e)
	recoil.Lint(kv.Parse(text), lib, e)
}

// lintFiles checks files concurrently and reports everything found to w,
// in the order the files were given. It returns false if any file could
// not be read or had errors, or, if strict, warnings.
func lintFiles(files []string, lib *recoil.Library, strict bool, w io.Writer, lg *log.Logger) bool {
	loggers := make([]util.ErrorLogger, len(files))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i, fn := range files {
		eg.Go(func() error {
			b, err := os.ReadFile(fn)
			if err != nil {
				loggers[i].Error(err)
				return err
			}
			lintFile(fn, string(b), lib, &loggers[i])
			return nil
		})
	}
	err := eg.Wait()

	var e util.ErrorLogger
	for i := range loggers {
		e.Merge(&loggers[i])
	}
	e.PrintErrors(w, lg)
	lg.Infof("linted %d files: %d errors, %d warnings", len(files), len(e.Errors()), len(e.Warnings()))

	ok := err == nil && !e.HaveErrors() && !(strict && e.HaveWarnings())
	if ok {
		fmt.Fprintf(w, "%d files ok\n", len(files))
	}
	return ok
}
