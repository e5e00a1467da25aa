package clp

import "strings"

// Args strips the program name from a raw argument vector, yielding the
// token stream Parse expects.
func Args(argv []string) []string {
	if len(argv) == 0 {
		return nil
	}
	return argv[1:]
}

// Parse consumes the token stream and populates the registered
// descriptors, or returns a *ParseError describing the first violation.
//
// Tokens are scanned left to right. "--" ends flag scanning and hands
// the remainder to the positional group; so does the first token with no
// leading dash. A flag's sub-argument run extends up to the next token
// beginning with "-" or the end of the stream, then gets clamped to the
// flag's maximum arity. The boundary rule is purely lexical: a leading
// dash always ends the run, even for tokens like -5 that could be
// negative numeric values. Dash-leading values have to be passed through
// the positional group after "--".
func (p *Parser) Parse(args []string) error {
	i := 0
scan:
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--":
			// Explicit boundary. An empty remainder is not an error by
			// itself; it is validated against the positional group's own
			// minimum like any other count.
			i++
			break scan
		case strings.HasPrefix(arg, "--"):
			param, ok := p.lookupLong(arg[2:])
			if !ok {
				return parseErrorf("Not a valid argument: %s", arg)
			}
			n, err := p.readSubArgs(param, args[i+1:])
			if err != nil {
				return err
			}
			i += 1 + n
		case strings.HasPrefix(arg, "-"):
			param, ok := p.lookupShort(arg[1:])
			if !ok {
				return parseErrorf("Not a valid argument: %s", arg)
			}
			n, err := p.readSubArgs(param, args[i+1:])
			if err != nil {
				return err
			}
			i += 1 + n
		default:
			// First bare token: this and everything after it belongs to
			// the positional group.
			break scan
		}
	}

	if p.positional != nil {
		if err := p.readPositionals(args[i:]); err != nil {
			return err
		}
	} else if i < len(args) {
		return parseErrorf("There are leftover arguments that could not be parsed")
	}

	return p.validateRequired()
}

// countAvailableSubArgs counts the consecutive tokens, starting just
// after a flag, that can serve as its values. Any token beginning with
// '-' ends the run.
func countAvailableSubArgs(rest []string) int {
	for i, tok := range rest {
		if strings.HasPrefix(tok, "-") {
			return i
		}
	}
	return len(rest)
}

// readSubArgs feeds a resolved flag its sub-arguments and returns how
// many tokens it consumed. Available tokens beyond the flag's maximum
// arity are left for subsequent scanning.
func (p *Parser) readSubArgs(param Parameter, rest []string) (int, error) {
	available := countAvailableSubArgs(rest)
	if min := param.minArgCount(); available < min {
		return 0, parseErrorf("Fewer arguments (%d) specified than required (%d) for flag %s",
			available, min, param.displayName())
	}

	toRead := param.maxArgCount()
	if available < toRead {
		toRead = available
	}
	if err := param.read(rest[:toRead]); err != nil {
		return 0, err
	}
	return toRead, nil
}

// readPositionals hands the entire remaining stream to the positional
// group as one contiguous block. Unlike flag sub-argument runs, a
// leading dash does not terminate anything here.
func (p *Parser) readPositionals(rest []string) error {
	n := len(rest)
	if min := p.positional.minArgCount(); n < min {
		return parseErrorf("Fewer arguments (%d) specified than required (%d) for positional arguments", n, min)
	}
	if max := p.positional.maxArgCount(); n > max {
		return parseErrorf("More arguments (%d) specified than allowed (%d) for positional arguments", n, max)
	}
	if n == 0 {
		// Leave the group unset so a required group is still reported by
		// final validation.
		return nil
	}
	return p.positional.read(rest)
}

func (p *Parser) validateRequired() error {
	for _, param := range p.namedInOrder() {
		if param.isRequired() && !param.SetByUser() {
			return parseErrorf("Required flag '%s' was not provided", param.displayName())
		}
	}
	if p.positional != nil && p.positional.isRequired() && !p.positional.SetByUser() {
		return parseErrorf("Required positional argument '%s' was not provided", p.positional.Description())
	}
	return nil
}
