package linux

import (
	"fmt"
	"os"
)

// Console writes diagnostic lines to stdout.
type Console struct{}

// NewConsole returns a Console.
func NewConsole() Console { return Console{} }

// Write emits line followed by a newline to stdout.
func (Console) Write(line string) { fmt.Fprintln(os.Stdout, line) }
