package value

import "testing"

type fakeCallable struct{}

func (fakeCallable) Arity() int                  { return 0 }
func (fakeCallable) Call([]Value) (Value, error) { return Nil(), nil }
func (fakeCallable) String() string              { return "<native fn>" }

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil is falsy", Nil(), false},
		{"false is falsy", Bool(false), false},
		{"true is truthy", Bool(true), true},
		{"zero is truthy", Number(0), true},
		{"empty string is truthy", String(""), true},
		{"callable is truthy", NewCallable(fakeCallable{}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	fn := NewCallable(fakeCallable{})
	tests := []struct {
		name  string
		left  Value
		right Value
		want  bool
	}{
		{"nil equals nil", Nil(), Nil(), true},
		{"equal numbers", Number(1.5), Number(1.5), true},
		{"unequal numbers", Number(1), Number(2), false},
		{"equal strings", String("a"), String("a"), true},
		{"equal bools", Bool(true), Bool(true), true},
		{"cross-variant is false", String("1"), Number(1), false},
		{"nil never equals false", Nil(), Bool(false), false},
		{"callables are incomparable even to themselves", fn, fn, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.left.Equal(tt.right); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", Nil(), "nil"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integer number drops the fraction", Number(3), "3"},
		{"fractional number keeps its digits", Number(3.25), "3.25"},
		{"negative number", Number(-0.5), "-0.5"},
		{"string is rendered as-is", String("hi"), "hi"},
		{"callable tag", NewCallable(fakeCallable{}), "<native fn>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
