package startrace

import (
	"go.starlark.net/starlark"
)

type FrameKind int

const (
	// FrameCompiled marks a function compiled ahead-of-time against the
	// Starlark calling convention.
	FrameCompiled FrameKind = iota
	// FrameCallback marks a builtin exposed directly to the interpreter.
	// Callback frames are the boundaries Release unwinds to.
	FrameCallback
)

// Frame is one shadow-stack entry. Exactly one of Details and Callback is
// set, according to Kind. Frames are copied by value into stack slots.
type Frame struct {
	Kind     FrameKind
	Line     int
	Details  *FnDetails
	Callback *starlark.Builtin
}

func CompiledFrame(details *FnDetails) Frame {
	return Frame{
		Kind:    FrameCompiled,
		Details: details,
	}
}

func CallbackFrame(fn *starlark.Builtin) Frame {
	return Frame{
		Kind:     FrameCallback,
		Callback: fn,
	}
}
