package startrace

// FnStack is the shadow call stack of one starlark.Thread. The backing
// array is allocated once, at capacity; count is the logical depth and may
// exceed the capacity, in which case the excess frames are counted but not
// stored. Only frames[0:min(count, cap)] hold meaningful data.
//
// All operations are single-threaded: a thread's stack is only ever touched
// from the goroutine running that thread.
type FnStack struct {
	frames []Frame
	count  int
}

func newFnStack(capacity int) *FnStack {
	return &FnStack{
		frames: make([]Frame, capacity),
	}
}

// Enter pushes a frame. Past capacity the depth still increments but the
// frame is dropped, so the reported depth stays exact under unbounded
// recursion while memory stays fixed.
func (s *FnStack) Enter(frame Frame) {
	if s.count < len(s.frames) {
		s.frames[s.count] = frame
	}
	s.count++
}

// SetLine records the current source line of the topmost frame. No-op on an
// empty stack or when the top is past storage.
func (s *FnStack) SetLine(line int) {
	if s.count > 0 && s.count <= len(s.frames) {
		s.frames[s.count-1].Line = line
	}
}

// Exit pops the topmost frame. Pairs 1:1 with Enter on normal control flow;
// when an error skips Exit calls, Release repairs the stack instead.
func (s *FnStack) Exit() {
	if s.count > 0 {
		s.count--
	}
}

// Depth reports the logical call depth, including frames past storage.
func (s *FnStack) Depth() int {
	return s.count
}

// Stored reports how many frames actually hold data.
func (s *FnStack) Stored() int {
	return min(s.count, len(s.frames))
}

// Frames returns the live stored frames, bottom first. The slice aliases
// the backing array and is invalidated by the next Enter; traceback code
// must consume it before control returns to the interpreter.
func (s *FnStack) Frames() []Frame {
	return s.frames[:s.Stored()]
}

// unwindBoundary discards everything above and including the nearest
// callback frame. After an error, the top may be past storage; the scan
// starts at the last stored slot, which is always at or above the boundary
// pushed by the failing entry point.
func (s *FnStack) unwindBoundary() {
	for idx := s.Stored() - 1; idx >= 0; idx-- {
		if s.frames[idx].Kind == FrameCallback {
			s.count = idx
			return
		}
	}
	panic("startrace: internal error: no callback frame on the stack; instrumentation is malformed")
}

// release drops the backing array. Runs when the owning thread is torn
// down; no operation can be in flight on an unreachable thread.
func (s *FnStack) release() {
	s.frames = nil
	s.count = 0
}
