package startrace

import (
	"go.starlark.net/starlark"
)

// Current returns the thread's shadow stack without arming a guard, or nil
// if no Init has run on this thread. Compiled code below an instrumented
// entry point uses this to reach the stack; only entry points call Init.
func Current(thread *starlark.Thread) *FnStack {
	if v := thread.Local(ContainerLocal); v != nil {
		return v.(*FnStack)
	}
	return nil
}
