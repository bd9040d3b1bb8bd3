package startrace

// Guard ties one Init call to the dynamic extent of one builtin invocation.
// The caller must arrange for Release to run on every exit path, normal or
// error, by deferring it immediately after Init:
//
//	stack, guard, err := startrace.Init(thread)
//	...
//	stack.Enter(startrace.CallbackFrame(b))
//	defer guard.Release()
//
// A guard starts armed, fires on the first Release, and is consumed once
// recovery has run; releasing a consumed guard does nothing.
type Guard struct {
	stack    *FnStack
	released bool
}

// Release restores the stack to its depth from just before the paired Init
// call. On the normal path that pops exactly the boundary frame; after an
// error it also discards every frame whose Exit was skipped by the unwind.
func (g *Guard) Release() {
	if g.stack == nil || g.released {
		return
	}
	g.released = true
	g.stack.unwindBoundary()
}
