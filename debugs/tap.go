package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/toylangs/logs"
	"github.com/reusee/toylangs/migraine"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL over the interpreter's globals and functions.
type Tap func(ctx context.Context, what string, interp *migraine.Interpreter)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, interp *migraine.Interpreter) {
		globals := Globals(ctx, interp)
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
	}
}
