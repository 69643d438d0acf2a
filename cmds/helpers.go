package cmds

import (
	"io"
	"os"
)

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

// Execute runs args against the commands defined with Define, exiting on error.
func Execute(args []string) {
	if err := defaultExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}
}

func PrintUsage(w io.Writer) {
	defaultExecutor.PrintUsage(w)
}

// Var defines name taking one argument, and name+"." resetting to zero.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines name setting true and "!"+name setting false.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}
