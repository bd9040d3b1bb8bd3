// Package startrace maintains a shadow call stack for Go functions compiled
// ahead-of-time against the Starlark calling convention. When such a function
// fails, the Go call stack unwinds through plain error returns and leaves no
// per-frame record behind; the shadow stack keeps enough bookkeeping to
// reconstruct the call history on demand.
//
// The stack lives in the locals of the owning starlark.Thread. Entry points
// exposed to the interpreter obtain it with Init, push a boundary frame, and
// defer the returned guard's Release; compiled functions bracket their bodies
// with Enter and Exit and report progress with SetLine. Release repairs the
// stack after an error skips the Exit calls of everything above the boundary.
package startrace

// Thread-local keys. Every module sharing a thread must use these exact
// strings to observe the same stack.
const (
	ContainerLocal = "__STARTRACE_CONTAINER"
	GuardLocal     = "__STARTRACE_GUARD"
)

// MaxCallStack is the number of frames the shadow stack can store. Deeper
// call chains are still counted, but frames past this depth are not
// recorded. It is a build-time constant: every module sharing a thread
// must agree on it, and keeping it static keeps Enter allocation-free.
const MaxCallStack = 100000
