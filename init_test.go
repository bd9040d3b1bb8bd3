//go:build !startrace_off

package startrace

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestInitIdempotent(t *testing.T) {
	thread := &starlark.Thread{Name: "test"}

	s1, _, err := Init(thread)
	if err != nil {
		t.Fatal(err)
	}
	s2, _, err := Init(thread)
	if err != nil {
		t.Fatal(err)
	}

	if s1 != s2 {
		t.Fatal("two Init calls returned different stacks")
	}
	if &s1.frames[0] != &s2.frames[0] {
		t.Fatal("two Init calls observe different backing arrays")
	}
	if len(s1.frames) != MaxCallStack {
		t.Fatalf("capacity = %d, want %d", len(s1.frames), MaxCallStack)
	}
}

func TestInitStoresLocals(t *testing.T) {
	thread := &starlark.Thread{Name: "test"}

	stack, _, err := Init(thread)
	if err != nil {
		t.Fatal(err)
	}

	if got := thread.Local(ContainerLocal); got != stack {
		t.Fatalf("%s holds %v, want the stack", ContainerLocal, got)
	}
	seed, ok := thread.Local(GuardLocal).(*Guard)
	if !ok {
		t.Fatalf("%s holds %T, want *Guard", GuardLocal, thread.Local(GuardLocal))
	}
	if seed.stack != stack {
		t.Fatal("stored guard is not bound to the stack")
	}
}

func TestInitNilThread(t *testing.T) {
	if _, _, err := Init(nil); err == nil {
		t.Fatal("no error for nil thread")
	}
}

func TestCurrent(t *testing.T) {
	thread := &starlark.Thread{Name: "test"}
	if Current(thread) != nil {
		t.Fatal("Current before Init is not nil")
	}
	stack, _, err := Init(thread)
	if err != nil {
		t.Fatal(err)
	}
	if Current(thread) != stack {
		t.Fatal("Current does not see the stack Init created")
	}
}

func TestInitSeparateThreads(t *testing.T) {
	t1 := &starlark.Thread{Name: "t1"}
	t2 := &starlark.Thread{Name: "t2"}
	s1, _, _ := Init(t1)
	s2, _, _ := Init(t2)
	if s1 == s2 {
		t.Fatal("two threads share one stack")
	}
}
