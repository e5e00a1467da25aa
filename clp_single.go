package clp

import "fmt"

// Single is a named parameter that consumes exactly one value per
// occurrence. The zero-argument accessors return the user value when the
// flag was supplied, else the default.
type Single[T any] struct {
	namedBase
	reader Reader[T]
	def    *T
	value  T
}

// NewValue creates a single-value flag for any type, given an explicit
// conversion function. Prefer the typed constructors below for the
// built-in types.
func NewValue[T any](short, long string, r Reader[T]) *Single[T] {
	return &Single[T]{
		namedBase: namedBase{baseParam{short: short, long: long}},
		reader:    r,
	}
}

func NewString(short, long string) *Single[string] {
	return NewValue(short, long, ReadString)
}

func NewInt(short, long string) *Single[int] {
	return NewValue(short, long, ReadInt)
}

func NewInt64(short, long string) *Single[int64] {
	return NewValue(short, long, ReadInt64)
}

func NewFloat64(short, long string) *Single[float64] {
	return NewValue(short, long, ReadFloat64)
}

func (f *Single[T]) SetDescription(d string) *Single[T] {
	f.desc = d
	return f
}

func (f *Single[T]) SetRequired(b bool) *Single[T] {
	f.required = b
	return f
}

func (f *Single[T]) SetDefault(v T) *Single[T] {
	f.def = &v
	return f
}

func (f *Single[T]) SetReader(r Reader[T]) *Single[T] {
	f.reader = r
	return f
}

// Value returns the parsed value, the default if the flag was absent, or
// the zero value if neither exists.
func (f *Single[T]) Value() T {
	if f.set {
		return f.value
	}
	if f.def != nil {
		return *f.def
	}
	var zero T
	return zero
}

// ValueOr returns the parsed value, or fallback if the flag was absent.
func (f *Single[T]) ValueOr(fallback T) T {
	if f.set {
		return f.value
	}
	return fallback
}

func (f *Single[T]) minArgCount() int { return 1 }
func (f *Single[T]) maxArgCount() int { return 1 }

func (f *Single[T]) read(tokens []string) error {
	v, err := f.reader(tokens[0])
	if err != nil {
		return parseErrorWrap(err, "Invalid value %q for flag %s: %s", tokens[0], f.displayName(), err.Error())
	}
	f.value = v
	f.set = true
	return nil
}

func (f *Single[T]) valueStrings() []string {
	if !f.set {
		return nil
	}
	return []string{fmt.Sprint(f.value)}
}
