//go:build !startrace_off

package startrace

import (
	"errors"
	"runtime"

	"go.starlark.net/starlark"
)

// Enabled reports whether this build carries instrumentation. When false,
// Init returns a nil stack and callers must skip all frame operations.
const Enabled = true

// Init returns the thread's shadow stack, creating it on first use, along
// with a guard armed for the calling invocation. Call it from every builtin
// entry point and defer the guard's Release.
//
// Every Init on one thread observes the same stack; only the first call
// allocates. The backing array is reclaimed when the thread becomes
// unreachable.
func Init(thread *starlark.Thread) (*FnStack, Guard, error) {
	if thread == nil {
		return nil, Guard{}, errors.New("startrace: nil thread")
	}

	if v := thread.Local(ContainerLocal); v != nil {
		stack := v.(*FnStack)
		return stack, Guard{stack: stack}, nil
	}

	stack := newFnStack(MaxCallStack)
	thread.SetLocal(ContainerLocal, stack)
	thread.SetLocal(GuardLocal, &Guard{stack: stack})
	runtime.AddCleanup(thread, (*FnStack).release, stack)

	return stack, Guard{stack: stack}, nil
}
