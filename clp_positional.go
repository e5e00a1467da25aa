package clp

import "fmt"

// Positional is a single positional parameter, consuming exactly one
// token. It is identified in help output by its description.
type Positional[T any] struct {
	positionalBase
	reader Reader[T]
	def    *T
	value  T
}

func NewPositional[T any](description string, r Reader[T]) *Positional[T] {
	return &Positional[T]{
		positionalBase: positionalBase{baseParam{desc: description}},
		reader:         r,
	}
}

func NewStringPositional(description string) *Positional[string] {
	return NewPositional(description, ReadString)
}

func (f *Positional[T]) SetRequired(b bool) *Positional[T] {
	f.required = b
	return f
}

func (f *Positional[T]) SetDefault(v T) *Positional[T] {
	f.def = &v
	return f
}

func (f *Positional[T]) Value() T {
	if f.set {
		return f.value
	}
	if f.def != nil {
		return *f.def
	}
	var zero T
	return zero
}

func (f *Positional[T]) ValueOr(fallback T) T {
	if f.set {
		return f.value
	}
	return fallback
}

func (f *Positional[T]) minArgCount() int { return 1 }
func (f *Positional[T]) maxArgCount() int { return 1 }

func (f *Positional[T]) read(tokens []string) error {
	v, err := f.reader(tokens[0])
	if err != nil {
		return parseErrorWrap(err, "Invalid value %q for positional argument %s: %s", tokens[0], f.desc, err.Error())
	}
	f.value = v
	f.set = true
	return nil
}

func (f *Positional[T]) valueStrings() []string {
	if !f.set {
		return nil
	}
	return []string{fmt.Sprint(f.value)}
}

// PositionalList is the positional group: a single descriptor
// representing all positional parameters as one ordered sequence. The
// default arity is [0, Unbounded].
type PositionalList[T any] struct {
	positionalBase
	reader  Reader[T]
	minVals int
	maxVals int
	def     []T
	values  []T
}

func NewPositionalList[T any](description string, r Reader[T]) *PositionalList[T] {
	return &PositionalList[T]{
		positionalBase: positionalBase{baseParam{desc: description}},
		reader:         r,
		minVals:        0,
		maxVals:        Unbounded,
	}
}

func NewStringPositionalList(description string) *PositionalList[string] {
	return NewPositionalList(description, ReadString)
}

func (f *PositionalList[T]) SetRequired(b bool) *PositionalList[T] {
	f.required = b
	return f
}

func (f *PositionalList[T]) SetArity(min, max int) *PositionalList[T] {
	f.minVals = min
	f.maxVals = max
	return f
}

func (f *PositionalList[T]) SetDefault(vs ...T) *PositionalList[T] {
	f.def = vs
	return f
}

func (f *PositionalList[T]) Values() []T {
	if f.set {
		return f.values
	}
	return f.def
}

func (f *PositionalList[T]) minArgCount() int { return f.minVals }
func (f *PositionalList[T]) maxArgCount() int { return f.maxVals }

func (f *PositionalList[T]) read(tokens []string) error {
	vals := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, err := f.reader(tok)
		if err != nil {
			return parseErrorWrap(err, "Invalid value %q for positional argument %s: %s", tok, f.desc, err.Error())
		}
		vals = append(vals, v)
	}
	f.values = vals
	f.set = true
	return nil
}

func (f *PositionalList[T]) valueStrings() []string {
	if !f.set {
		return nil
	}
	out := make([]string, len(f.values))
	for i, v := range f.values {
		out[i] = fmt.Sprint(v)
	}
	return out
}
