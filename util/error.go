// util/error.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/r5v/weaponlab/log"
)

// ErrorLogger accumulates lint diagnostics. It tracks context about what
// is currently being checked (a file, a block, a key) so that messages
// can be reported after checking finishes instead of stopping at the
// first problem. Warnings are kept separately from errors; only errors
// make HaveErrors return true.
type ErrorLogger struct {
	// Tracked via Push()/Pop() calls.
	hierarchy []string
	errors    []string
	warnings  []string
}

func (e *ErrorLogger) Push(s string) {
	e.hierarchy = append(e.hierarchy, s)
}

func (e *ErrorLogger) Pop() {
	e.hierarchy = e.hierarchy[:len(e.hierarchy)-1]
}

func (e *ErrorLogger) prefix() string {
	if len(e.hierarchy) == 0 {
		return ""
	}
	return strings.Join(e.hierarchy, " / ") + ": "
}

func (e *ErrorLogger) ErrorString(s string, args ...any) {
	e.errors = append(e.errors, e.prefix()+fmt.Sprintf(s, args...))
}

func (e *ErrorLogger) Error(err error) {
	e.errors = append(e.errors, e.prefix()+err.Error())
}

func (e *ErrorLogger) WarningString(s string, args ...any) {
	e.warnings = append(e.warnings, e.prefix()+fmt.Sprintf(s, args...))
}

func (e *ErrorLogger) HaveErrors() bool {
	return len(e.errors) > 0
}

func (e *ErrorLogger) HaveWarnings() bool {
	return len(e.warnings) > 0
}

func (e *ErrorLogger) Errors() []string {
	return e.errors
}

func (e *ErrorLogger) Warnings() []string {
	return e.warnings
}

// Merge appends the messages collected by other, e.g. from a per-file
// logger filled in on another goroutine.
func (e *ErrorLogger) Merge(other *ErrorLogger) {
	e.errors = append(e.errors, other.errors...)
	e.warnings = append(e.warnings, other.warnings...)
}

// PrintErrors writes everything collected to w and, if lg is non-nil,
// to the log as well.
func (e *ErrorLogger) PrintErrors(w io.Writer, lg *log.Logger) {
	// Two loops so they aren't interleaved with logging to w
	if lg != nil {
		for _, err := range e.errors {
			lg.Errorf("%+v", err)
		}
		for _, warn := range e.warnings {
			lg.Warnf("%+v", warn)
		}
	}
	for _, err := range e.errors {
		fmt.Fprintln(w, "error: "+err)
	}
	for _, warn := range e.warnings {
		fmt.Fprintln(w, "warning: "+warn)
	}
}

func (e *ErrorLogger) String() string {
	return strings.Join(append(append([]string(nil), e.errors...), e.warnings...), "\n")
}

// CheckDepth panics if Push and Pop calls were unbalanced since the depth
// d was recorded; intended for use with defer.
func (e *ErrorLogger) CheckDepth(d int) {
	if e == nil || e.CurrentDepth() == d {
		return
	}
	if r := recover(); r != nil {
		panic(r)
	}
	panic(fmt.Sprintf("ErrorLogger: initial depth %d, final %d", d, e.CurrentDepth()))
}

func (e *ErrorLogger) CurrentDepth() int {
	if e == nil {
		return 0
	}
	return len(e.hierarchy)
}
