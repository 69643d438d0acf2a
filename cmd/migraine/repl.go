package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/reusee/toylangs/migraine"
)

var (
	resultColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
)

func runREPL(ctx context.Context, interp *migraine.Interpreter) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".migraine_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // interrupt or EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			break
		}
		if err := replLine(ctx, interp, line, os.Stdout); err != nil {
			errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

func replLine(ctx context.Context, interp *migraine.Interpreter, line string, out io.Writer) error {
	switch {

	case line == ":vars":
		vars := interp.Variables()
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"name", "value"})
		for _, name := range slices.Sorted(maps.Keys(vars)) {
			table.Append([]string{name, formatNumber(vars[name])})
		}
		table.Render()
		return nil

	case line == ":functions":
		functions := interp.Functions()
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"name", "parameters", "body"})
		for _, name := range slices.Sorted(maps.Keys(functions)) {
			def := functions[name]
			table.Append([]string{
				name,
				strings.Join(def.Parameters, ", "),
				migraine.Format(def.Body),
			})
		}
		table.Render()
		return nil

	case strings.HasPrefix(line, ":ast "):
		prog, err := migraine.ParseString(strings.TrimPrefix(line, ":ast "))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", migraine.Format(prog))
		return nil

	case strings.HasPrefix(line, ":"):
		return fmt.Errorf("unknown command: %s", line)

	}

	result, err := interp.Eval(ctx, line)
	if err != nil {
		return err
	}
	resultColor.Fprintln(out, formatNumber(result))
	return nil
}
