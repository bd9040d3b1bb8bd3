package startrace

import (
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// BuiltinFunc is the starlark builtin implementation signature.
type BuiltinFunc = func(
	thread *starlark.Thread,
	b *starlark.Builtin,
	args starlark.Tuple,
	kwargs []starlark.Tuple,
) (starlark.Value, error)

// Instrument wraps a builtin implementation so that every invocation
// initializes the thread's shadow stack, pushes a boundary frame, and
// releases the guard on every exit path. In a build without instrumentation
// it constructs a plain builtin.
func Instrument(name string, impl BuiltinFunc) *starlark.Builtin {
	if !Enabled {
		return starlark.NewBuiltin(name, impl)
	}
	return starlark.NewBuiltin(name, func(
		thread *starlark.Thread,
		b *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		stack, guard, err := Init(thread)
		if err != nil {
			return nil, err
		}
		stack.Enter(CallbackFrame(b))
		defer guard.Release()
		return impl(thread, b, args, kwargs)
	})
}

// InstrumentFunc exposes an arbitrary Go function to the interpreter, with
// the same tracking as Instrument. Argument and result conversion follows
// starlarkutil.
func InstrumentFunc(name string, fn any) *starlark.Builtin {
	inner := starlarkutil.MakeFunc(name, fn)
	return Instrument(name, func(
		thread *starlark.Thread,
		b *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		return starlark.Call(thread, inner, args, kwargs)
	})
}
