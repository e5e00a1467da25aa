package clp

import "math"

// Unbounded is the maximum arity for list parameters that accept any
// number of values.
const Unbounded = math.MaxInt

// Parameter is the capability surface the Parser needs from a descriptor.
// The method set is deliberately unexported beyond the accessors callers
// need after parsing, so the variant set is closed: Switch, Counter,
// Single, List, Positional and PositionalList are the only
// implementations.
//
// Descriptors are borrowed, not owned: the Parser holds references, and
// the caller must keep each descriptor alive for the full Add+Parse
// sequence.
type Parameter interface {
	// read consumes the given tokens as this parameter's values and marks
	// it as set by the user. Each read replaces the values of any earlier
	// read (last occurrence wins).
	read(tokens []string) error

	minArgCount() int
	maxArgCount() int
	isPositional() bool
	isRequired() bool
	shortName() string
	longName() string
	displayName() string
	valueStrings() []string

	// SetByUser reports whether the parameter received a value during
	// parsing, distinguishing a user-supplied value from a default.
	SetByUser() bool

	// Description returns the help text for this parameter.
	Description() string
}

type baseParam struct {
	short    string
	long     string
	desc     string
	required bool
	set      bool
}

func (b *baseParam) SetByUser() bool {
	return b.set
}

func (b *baseParam) Description() string {
	return b.desc
}

func (b *baseParam) isRequired() bool {
	return b.required
}

func (b *baseParam) shortName() string {
	return b.short
}

func (b *baseParam) longName() string {
	return b.long
}

// displayName is the long name if present, else the short name, else the
// description (positionals have no flag names).
func (b *baseParam) displayName() string {
	if b.long != "" {
		return b.long
	}
	if b.short != "" {
		return b.short
	}
	return b.desc
}

type namedBase struct {
	baseParam
}

func (namedBase) isPositional() bool {
	return false
}

type positionalBase struct {
	baseParam
}

func (positionalBase) isPositional() bool {
	return true
}
