// log/stack.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// maxStackFrames bounds how far up the stack Callstack goes.
const maxStackFrames = 16

// StackFrame records where a log record was issued from; function names
// are given relative to the module.
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (f StackFrame) String() string {
	return fmt.Sprintf("%s:%d:%s", f.File, f.Line, f.Function)
}

func trimFunction(fn string) string {
	fn = strings.TrimPrefix(fn, "github.com/mmp/turnpath/")
	return strings.TrimPrefix(fn, "main.")
}

// Callstack returns the stack of the function that called the logging
// method, reusing the storage in fr if there's enough of it. Frames above
// main.main and test functions are omitted.
func Callstack(fr []StackFrame) []StackFrame {
	var pcs [maxStackFrames]uintptr
	n := runtime.Callers(3, pcs[:]) // skip Callers, Callstack and the logging method
	frames := runtime.CallersFrames(pcs[:n])

	fr = fr[:0]
	for frame, more := frames.Next(); ; frame, more = frames.Next() {
		fr = append(fr, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: trimFunction(frame.Function),
		})
		if !more || frame.Function == "main.main" || frame.Function == "testing.tRunner" {
			return fr
		}
	}
}
