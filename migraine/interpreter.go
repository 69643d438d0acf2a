package migraine

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/reusee/toylangs/logs"
)

// Interpreter keeps a root scope and a function table across runs.
type Interpreter struct {
	logger    logs.Logger
	newSpan   logs.NewSpan
	scopes    *Scopes
	functions Functions
}

func New(logger logs.Logger) *Interpreter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Interpreter{
		logger:    logger,
		scopes:    NewScopes(),
		functions: make(Functions),
	}
}

// Run evaluates source and returns the value of its last top-level expression.
func (i *Interpreter) Run(ctx context.Context, source *Source) (ret float64, err error) {
	if i.newSpan != nil {
		ctx, _ = i.newSpan(ctx, "")
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
			}
		}()
	}

	tokens, err := TokenizeSource(source)
	if err != nil {
		return 0, err
	}
	program, err := Parse(tokens)
	if err != nil {
		return 0, err
	}
	i.logger.DebugContext(ctx, "parsed",
		"source", source.Name,
		"statements", len(program.Expressions),
	)

	functions := maps.Clone(i.functions)
	if err := Collect(program, functions); err != nil {
		return 0, err
	}
	if len(functions) != len(i.functions) {
		i.logger.DebugContext(ctx, "functions collected",
			"source", source.Name,
			"count", len(functions),
		)
	}

	// variables assigned before a failure stay bound, functions are kept only on success
	ret, err = Evaluate(program, i.scopes.Root(), functions)
	if err != nil {
		i.logger.DebugContext(ctx, "evaluation failed",
			"source", source.Name,
			"error", err,
		)
		return 0, err
	}
	i.functions = functions
	i.logger.DebugContext(ctx, "evaluated",
		"source", source.Name,
		"result", ret,
	)
	return ret, nil
}

func (i *Interpreter) Eval(ctx context.Context, src string) (float64, error) {
	return i.Run(ctx, NewSource("", src))
}

// Load runs sources in order, stopping at the first error.
func (i *Interpreter) Load(ctx context.Context, sources ...*Source) error {
	for _, source := range sources {
		if _, err := i.Run(ctx, source); err != nil {
			return fmt.Errorf("load %s: %w", source.Name, err)
		}
	}
	return nil
}

// Define binds a global variable.
func (i *Interpreter) Define(name string, value float64) {
	i.scopes.Root().Define(name, value)
}

// Call invokes a user function with already evaluated arguments.
func (i *Interpreter) Call(name string, args ...float64) (float64, error) {
	call := &FunctionCall{
		Name:      name,
		Arguments: make([]Node, 0, len(args)),
	}
	for _, arg := range args {
		call.Arguments = append(call.Arguments, &Number{
			Value: arg,
		})
	}
	return Evaluate(call, i.scopes.Root(), i.functions)
}

// Variables returns a copy of the global bindings.
func (i *Interpreter) Variables() map[string]float64 {
	root := i.scopes.Root()
	ret := make(map[string]float64)
	for _, name := range root.Names() {
		ret[name], _ = root.Resolve(name)
	}
	return ret
}

// Functions returns a copy of the function table.
func (i *Interpreter) Functions() Functions {
	return maps.Clone(i.functions)
}
