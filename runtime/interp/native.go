package interp

import (
	"time"

	"github.com/aledsdavies/golox/runtime/value"
)

// nativeFn adapts a Go function to the value.Callable interface. Natives are
// defined once in the global scope and shared for the life of the
// interpreter.
type nativeFn struct {
	arity int
	fn    func(args []value.Value) (value.Value, error)
}

func (n *nativeFn) Arity() int { return n.arity }

func (n *nativeFn) Call(args []value.Value) (value.Value, error) {
	return n.fn(args)
}

func (n *nativeFn) String() string { return "<native fn>" }

// clock returns milliseconds since the Unix epoch as a Lox number. The unit
// is fixed; successive calls within one run never go backwards on a sane
// system clock.
func clock() value.Callable {
	return &nativeFn{
		arity: 0,
		fn: func([]value.Value) (value.Value, error) {
			ms := float64(time.Now().UnixNano()) / float64(time.Millisecond)
			return value.Number(ms), nil
		},
	}
}
