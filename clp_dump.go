package clp

import (
	"io"

	"gopkg.in/yaml.v3"
)

type paramDump struct {
	Short       string   `yaml:"short,omitempty"`
	Long        string   `yaml:"long,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Required    bool     `yaml:"required"`
	MinArgs     int      `yaml:"min_args"`
	MaxArgs     any      `yaml:"max_args"`
	SetByUser   bool     `yaml:"set_by_user"`
	Values      []string `yaml:"values,omitempty"`
}

type configDump struct {
	Program    string      `yaml:"program"`
	Ambiguous  bool        `yaml:"ambiguous"`
	Flags      []paramDump `yaml:"flags,omitempty"`
	Positional *paramDump  `yaml:"positional,omitempty"`
}

func dumpParam(param Parameter) paramDump {
	var max any = param.maxArgCount()
	if param.maxArgCount() == Unbounded {
		max = "unbounded"
	}
	return paramDump{
		Short:       param.shortName(),
		Long:        param.longName(),
		Description: param.Description(),
		Required:    param.isRequired(),
		MinArgs:     param.minArgCount(),
		MaxArgs:     max,
		SetByUser:   param.SetByUser(),
		Values:      param.valueStrings(),
	}
}

// DumpConfig writes a YAML rendering of the registered configuration and
// its current state, for debugging parser setups. Called after Parse it
// also shows which parameters were set and to what.
func (p *Parser) DumpConfig(w io.Writer) error {
	d := configDump{
		Program:   p.name,
		Ambiguous: p.ambiguous(),
	}
	for _, param := range p.namedInOrder() {
		d.Flags = append(d.Flags, dumpParam(param))
	}
	if p.positional != nil {
		pd := dumpParam(p.positional)
		d.Positional = &pd
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
