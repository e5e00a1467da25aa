package clp

import "strconv"

// Switch is a presence-only boolean flag. It consumes no sub-arguments;
// its value is true iff the flag appeared on the command line.
type Switch struct {
	namedBase
	value bool
}

func NewSwitch(short, long string) *Switch {
	return &Switch{namedBase: namedBase{baseParam{short: short, long: long}}}
}

func (s *Switch) SetDescription(d string) *Switch {
	s.desc = d
	return s
}

func (s *Switch) SetRequired(b bool) *Switch {
	s.required = b
	return s
}

func (s *Switch) Value() bool {
	return s.value
}

func (s *Switch) minArgCount() int { return 0 }
func (s *Switch) maxArgCount() int { return 0 }

func (s *Switch) read(tokens []string) error {
	s.value = true
	s.set = true
	return nil
}

func (s *Switch) valueStrings() []string {
	if !s.set {
		return nil
	}
	return []string{"true"}
}

// Counter is an arity-0 flag that counts its occurrences, e.g. -v -v -v
// for increasing verbosity. Unlike value-bearing parameters, repeated
// occurrences accumulate rather than replace.
type Counter struct {
	namedBase
	count int
}

func NewCounter(short, long string) *Counter {
	return &Counter{namedBase: namedBase{baseParam{short: short, long: long}}}
}

func (c *Counter) SetDescription(d string) *Counter {
	c.desc = d
	return c
}

func (c *Counter) SetRequired(b bool) *Counter {
	c.required = b
	return c
}

func (c *Counter) Count() int {
	return c.count
}

func (c *Counter) minArgCount() int { return 0 }
func (c *Counter) maxArgCount() int { return 0 }

func (c *Counter) read(tokens []string) error {
	c.count++
	c.set = true
	return nil
}

func (c *Counter) valueStrings() []string {
	if !c.set {
		return nil
	}
	return []string{strconv.Itoa(c.count)}
}
