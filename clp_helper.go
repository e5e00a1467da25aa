package clp

import (
	"errors"
	"fmt"
	"os"
)

// ExitFunc is the interface for exiting the program
type ExitFunc func(int)

// StderrWriter is the interface for writing to stderr
type StderrWriter interface {
	Write([]byte) (int, error)
}

var osExit ExitFunc = os.Exit
var stderrWriter StderrWriter = os.Stderr

// SetStderrWriter allows overriding the stderr writer for testing or custom output
func SetStderrWriter(writer StderrWriter) {
	stderrWriter = writer
}

// SetExitFunc allows overriding the exit function for testing
func SetExitFunc(exitFunc ExitFunc) {
	osExit = exitFunc
}

// ParseOrExit parses the token stream and, on failure, prints the error
// to stderr followed by the usage text and exits with status 1. Setup
// errors print without usage since they indicate a bug, not bad input.
func (p *Parser) ParseOrExit(args []string) {
	err := p.Parse(args)
	if err == nil {
		return
	}

	var setupErr *SetupError
	if errors.As(err, &setupErr) {
		fmt.Fprintln(stderrWriter, err.Error())
		osExit(1)
		return
	}

	fmt.Fprintln(stderrWriter, err.Error())
	fmt.Fprintln(stderrWriter)
	p.PrintHelp(stderrWriter)
	osExit(1)
}
