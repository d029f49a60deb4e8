package infra

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

const maxStackDepth = 32

// Frame is a resolved call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

func (frame Frame) file() string {
	if frame.File == "" {
		return "unknownFile"
	}
	return frame.File
}

func (frame Frame) name() string {
	if frame.Function == "" {
		return "unknownFunc"
	}
	return frame.Function
}

// Format characters:
// %s - source file base name
// %d - source line
// %n - function name without the package path
// %v - equivalent to %s:%d
// %+v - <function-name> <full-path>:<line>
func (frame Frame) Format(s fmt.State, verb rune) {
	file, line := frame.file(), frame.Line
	switch verb {
	case 's':
		_, _ = io.WriteString(s, path.Base(file))
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(line))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, " ")
			_, _ = io.WriteString(s, file)
		} else {
			_, _ = io.WriteString(s, path.Base(file))
		}
		_, _ = io.WriteString(s, ":")
		_, _ = io.WriteString(s, strconv.Itoa(line))
	default:
	}
}

// CallerStack is the call stack captured at the point a broken
// invariant was detected.
type CallerStack []Frame

// Callers captures the stack of the caller. skip 0 is the caller itself.
func Callers(skip int) CallerStack {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return nil
	}
	stack := make(CallerStack, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		stack = append(stack, Frame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return stack
}

// String lists the frames one per line, innermost first.
func (stack CallerStack) String() string {
	builder := strings.Builder{}
	for i, frame := range stack {
		if i > 0 {
			_ = builder.WriteByte('\n')
		}
		_, _ = fmt.Fprintf(&builder, "%n(%v)", frame, frame)
	}
	return builder.String()
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}
