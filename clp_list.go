package clp

import "fmt"

// List is a named parameter that consumes a variable number of values per
// occurrence, bounded by an inclusive [min, max] arity. The default arity
// is [0, Unbounded].
type List[T any] struct {
	namedBase
	reader  Reader[T]
	minVals int
	maxVals int
	def     []T
	values  []T
}

// NewValueList creates a list flag for any type, given an explicit
// conversion function.
func NewValueList[T any](short, long string, r Reader[T]) *List[T] {
	return &List[T]{
		namedBase: namedBase{baseParam{short: short, long: long}},
		reader:    r,
		minVals:   0,
		maxVals:   Unbounded,
	}
}

func NewStringList(short, long string) *List[string] {
	return NewValueList(short, long, ReadString)
}

func NewIntList(short, long string) *List[int] {
	return NewValueList(short, long, ReadInt)
}

func NewInt64List(short, long string) *List[int64] {
	return NewValueList(short, long, ReadInt64)
}

func NewFloat64List(short, long string) *List[float64] {
	return NewValueList(short, long, ReadFloat64)
}

func (f *List[T]) SetDescription(d string) *List[T] {
	f.desc = d
	return f
}

func (f *List[T]) SetRequired(b bool) *List[T] {
	f.required = b
	return f
}

// SetArity sets the inclusive bounds on how many tokens this flag
// consumes per occurrence. min == max gives a fixed-arity flag. Bounds
// are validated when the flag is added to a Parser.
func (f *List[T]) SetArity(min, max int) *List[T] {
	f.minVals = min
	f.maxVals = max
	return f
}

func (f *List[T]) SetDefault(vs ...T) *List[T] {
	f.def = vs
	return f
}

func (f *List[T]) SetReader(r Reader[T]) *List[T] {
	f.reader = r
	return f
}

// Values returns the parsed values in order, or the default values if the
// flag was never supplied. Defaults are never merged with user values.
func (f *List[T]) Values() []T {
	if f.set {
		return f.values
	}
	return f.def
}

func (f *List[T]) minArgCount() int { return f.minVals }
func (f *List[T]) maxArgCount() int { return f.maxVals }

func (f *List[T]) read(tokens []string) error {
	// Replace, never append: a repeated flag discards the values of its
	// earlier occurrence, and the first user read discards any defaults.
	vals := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, err := f.reader(tok)
		if err != nil {
			return parseErrorWrap(err, "Invalid value %q for flag %s: %s", tok, f.displayName(), err.Error())
		}
		vals = append(vals, v)
	}
	f.values = vals
	f.set = true
	return nil
}

func (f *List[T]) valueStrings() []string {
	if !f.set {
		return nil
	}
	out := make([]string, len(f.values))
	for i, v := range f.values {
		out[i] = fmt.Sprint(v)
	}
	return out
}
