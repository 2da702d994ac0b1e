package value

import "strconv"

// Kind discriminates the runtime value variants.
type Kind int

const (
	NilKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	CallableKind
)

func (k Kind) String() string {
	switch k {
	case NilKind:
		return "nil"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case CallableKind:
		return "callable"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Callable is the capability set of invokable runtime values. Implementations
// are shared by reference: the same handle may live in the environment, be
// produced by an expression, and outlive any single call frame.
type Callable interface {
	// Arity returns the number of arguments the callable expects.
	Arity() int
	// Call invokes the callable with already-evaluated arguments.
	Call(args []Value) (Value, error)
	// String is the printable tag, e.g. "<native fn>".
	String() string
}

// Value is the Lox runtime value: nil, bool, number, string or callable.
// The zero Value is nil.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	fn   Callable
}

// Nil returns the nil value.
func Nil() Value { return Value{} }

// Bool wraps a Go bool.
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Number wraps a Go float64.
func Number(n float64) Value { return Value{kind: NumberKind, n: n} }

// String wraps a Go string.
func String(s string) Value { return Value{kind: StringKind, s: s} }

// NewCallable wraps a callable handle.
func NewCallable(fn Callable) Value { return Value{kind: CallableKind, fn: fn} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether the value is nil.
func (v Value) IsNil() bool { return v.kind == NilKind }

// AsBool returns the bool payload; ok is false for other variants.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == BoolKind }

// AsNumber returns the number payload; ok is false for other variants.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == NumberKind }

// AsString returns the string payload; ok is false for other variants.
func (v Value) AsString() (string, bool) { return v.s, v.kind == StringKind }

// AsCallable returns the callable handle; ok is false for other variants.
func (v Value) AsCallable() (Callable, bool) { return v.fn, v.kind == CallableKind }

// Truthy implements Lox truthiness: only nil and false are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case NilKind:
		return false
	case BoolKind:
		return v.b
	default:
		return true
	}
}

// Equal implements Lox == semantics. Cross-variant comparisons are false,
// nil == nil is true, and callables never compare equal, not even to
// themselves. Equality never fails.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NilKind:
		return true
	case BoolKind:
		return v.b == other.b
	case NumberKind:
		return v.n == other.n
	case StringKind:
		return v.s == other.s
	default:
		return false
	}
}

// String renders the value the way print does: nil as "nil", numbers in
// minimal decimal form (no trailing ".0" on integers), strings as-is.
func (v Value) String() string {
	switch v.kind {
	case NilKind:
		return "nil"
	case BoolKind:
		return strconv.FormatBool(v.b)
	case NumberKind:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case StringKind:
		return v.s
	case CallableKind:
		return v.fn.String()
	default:
		return "nil"
	}
}
