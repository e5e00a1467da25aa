// Package clp declares, registers and parses command-line parameters:
// named flags with short (-x) and long (--example) forms, each with an
// inclusive [min, max] value arity, plus at most one positional group.
// Callers build descriptors, Add them to a Parser, then Parse the
// process argument vector (minus the program name) and read typed values
// back off the descriptors.
package clp

type nameKey struct {
	short string
	long  string
}

// Parser owns the name tables and descriptor references for one
// invocation. It is intended for single-threaded use during process
// startup; registered descriptors must outlive the Parser.
type Parser struct {
	name        string
	shortToLong map[string]string
	longToShort map[string]string
	named       map[nameKey]Parameter
	order       []nameKey // registration order, for deterministic validation and help
	positional  Parameter
}

func NewParser(name string) *Parser {
	return &Parser{
		name:        name,
		shortToLong: make(map[string]string),
		longToShort: make(map[string]string),
		named:       make(map[nameKey]Parameter),
	}
}

// Add registers a descriptor. It returns a *SetupError when the
// registration set would become invalid: a second positional group, a
// named parameter with neither name, or a duplicate short or long name.
func (p *Parser) Add(param Parameter) error {
	if param.minArgCount() < 0 {
		return setupErrorf("Parameter %s has negative minimum arg count", param.displayName())
	}
	if param.minArgCount() > param.maxArgCount() {
		return setupErrorf("Parameter %s has minimum arg count %d greater than maximum %d",
			param.displayName(), param.minArgCount(), param.maxArgCount())
	}

	if param.isPositional() {
		if p.positional != nil {
			return setupErrorf("Positional arguments specified more than once")
		}
		p.positional = param
		return nil
	}

	short, long := param.shortName(), param.longName()
	if short == "" && long == "" {
		return setupErrorf("Argument type requires at least one of a short name or a long name")
	}
	if short != "" {
		if _, exists := p.shortToLong[short]; exists {
			return setupErrorf("Short name %s already specified", short)
		}
	}
	if long != "" {
		if _, exists := p.longToShort[long]; exists {
			return setupErrorf("Long name %s already specified", long)
		}
	}

	if short != "" {
		p.shortToLong[short] = long
	}
	if long != "" {
		p.longToShort[long] = short
	}

	// Empty names are stored deliberately: the key pair is (short, long)
	// with "" for whichever form is absent.
	key := nameKey{short: short, long: long}
	p.named[key] = param
	p.order = append(p.order, key)
	return nil
}

// MustAdd is Add for static registration sets, where a setup error is a
// programming bug and panicking at startup is the right outcome.
func (p *Parser) MustAdd(param Parameter) {
	if err := p.Add(param); err != nil {
		panic(err)
	}
}

func (p *Parser) lookupLong(name string) (Parameter, bool) {
	short, ok := p.longToShort[name]
	if !ok {
		return nil, false
	}
	return p.named[nameKey{short: short, long: name}], true
}

func (p *Parser) lookupShort(name string) (Parameter, bool) {
	long, ok := p.shortToLong[name]
	if !ok {
		return nil, false
	}
	return p.named[nameKey{short: name, long: long}], true
}

// namedInOrder returns the named descriptors in registration order.
func (p *Parser) namedInOrder() []Parameter {
	params := make([]Parameter, 0, len(p.order))
	for _, key := range p.order {
		params = append(params, p.named[key])
	}
	return params
}
