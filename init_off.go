//go:build startrace_off

package startrace

import (
	"go.starlark.net/starlark"
)

// Enabled reports whether this build carries instrumentation. When false,
// Init returns a nil stack and callers must skip all frame operations.
const Enabled = false

// Init is a no-op in this build: the stack is nil and the guard is inert.
// Callers must check for the nil stack and skip instrumentation entirely.
func Init(thread *starlark.Thread) (*FnStack, Guard, error) {
	return nil, Guard{}, nil
}
