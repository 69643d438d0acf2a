package debugs

import (
	"context"
	"fmt"
	"reflect"

	"github.com/reusee/toylangs/migraine"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// Globals exposes the interpreter's root variables as floats and its functions as builtins.
// "vars" holds a snapshot dict of the variables and "eval" runs source in the interpreter.
func Globals(ctx context.Context, interp *migraine.Interpreter) starlark.StringDict {
	globals := make(starlark.StringDict)
	for name, value := range interp.Variables() {
		globals[name] = starlark.Float(value)
	}
	for name := range interp.Functions() {
		globals[name] = functionBuiltin(interp, name)
	}
	globals["vars"] = toStarlarkValue(interp.Variables())
	globals["eval"] = toStarlarkValue(func(src string) (float64, error) {
		return interp.Eval(ctx, src)
	})
	return globals
}

func functionBuiltin(interp *migraine.Interpreter, name string) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(
		thread *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword arguments", name)
		}
		floats := make([]float64, len(args))
		for i, arg := range args {
			f, ok := starlark.AsFloat(arg)
			if !ok {
				return nil, fmt.Errorf("%s: argument %d is %s, not a number", name, i, arg.Type())
			}
			floats[i] = f
		}
		ret, err := interp.Call(name, floats...)
		if err != nil {
			return nil, err
		}
		return starlark.Float(ret), nil
	})
}

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case map[string]float64:
		d := starlark.NewDict(len(v))
		for k, f := range v {
			d.SetKey(starlark.String(k), starlark.Float(f))
		}
		return d

	}

	if reflect.ValueOf(v).Kind() == reflect.Func {
		return starlarkutil.MakeFunc("", v)
	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
