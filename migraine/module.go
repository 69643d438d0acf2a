package migraine

import (
	"context"
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/toylangs/configs"
	"github.com/reusee/toylangs/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
}

// NewInterpreter returns an interpreter with configured globals bound and prelude loaded.
type NewInterpreter func(ctx context.Context) (*Interpreter, error)

func (Module) NewInterpreter(
	logger logs.Logger,
	newSpan logs.NewSpan,
	globals configs.Globals,
	prelude configs.Prelude,
) NewInterpreter {
	return func(ctx context.Context) (*Interpreter, error) {
		interp := New(logger)
		interp.newSpan = newSpan
		for name, value := range globals {
			interp.Define(name, value)
		}
		for idx, src := range prelude {
			source := NewSource(fmt.Sprintf("prelude[%d]", idx), src)
			if err := interp.Load(ctx, source); err != nil {
				return nil, err
			}
		}
		return interp, nil
	}
}
