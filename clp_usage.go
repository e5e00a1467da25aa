package clp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	bold       = color.New(color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
	BoldS      = bold.SprintfFunc()
)

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("CLP_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// let amterp/color decide based on tty
	default:
		// invalid value - treat as auto
	}
}

// ambiguous reports whether the registered set allows tokens that cannot
// be attributed without a "--" boundary. That is the case when a
// variable-length (or optional) positional group coexists with any
// variable-length flag. It only affects the usage text, never parsing.
func (p *Parser) ambiguous() bool {
	if p.positional == nil {
		return false
	}

	// A fixed-arity required positional group spans exactly n tokens, so
	// the split point is always determined.
	if p.positional.minArgCount() == p.positional.maxArgCount() && p.positional.isRequired() {
		return false
	}

	for _, param := range p.namedInOrder() {
		if param.minArgCount() != param.maxArgCount() {
			return true
		}
	}
	return false
}

// GenerateUsage renders the usage text: one synopsis line, then the
// registered flags grouped as Required/Optional, named by long name if
// present else short name.
func (p *Parser) GenerateUsage() string {
	initializeColorFromEnv()

	var sb strings.Builder
	sb.WriteString(GreenBoldS("Usage:") + " " + BoldS(p.name))

	var hasRequired, hasOptional bool
	for _, param := range p.namedInOrder() {
		if param.isRequired() {
			hasRequired = true
		} else {
			hasOptional = true
		}
	}

	if hasRequired {
		sb.WriteString(" <required flags>")
	}
	if hasOptional {
		sb.WriteString(" [optional flags]")
	}
	if p.ambiguous() {
		sb.WriteString(" --")
	}
	if p.positional != nil {
		if p.positional.isRequired() {
			sb.WriteString(" <" + p.positional.Description() + ">")
		} else {
			sb.WriteString(" [" + p.positional.Description() + "]")
		}
	}
	sb.WriteByte('\n')

	writeGroup := func(label string, required bool) {
		for _, param := range p.namedInOrder() {
			if param.isRequired() != required {
				continue
			}
			if param.Description() != "" {
				sb.WriteString(fmt.Sprintf("%s: %-24s%s\n", label, param.displayName(), param.Description()))
			} else {
				sb.WriteString(fmt.Sprintf("%s: %s\n", label, param.displayName()))
			}
		}
	}
	writeGroup("Required", true)
	writeGroup("Optional", false)

	return sb.String()
}

// PrintHelp writes the usage text to the given sink.
func (p *Parser) PrintHelp(w io.Writer) {
	fmt.Fprint(w, p.GenerateUsage())
}
