package cmds

import (
	"fmt"
	"reflect"
)

// Command is a word on the command line. Func receives the following words as arguments.
type Command struct {
	Func        reflect.Value
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

var errorType = reflect.TypeFor[error]()

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()
	if fnType.NumOut() >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if fnType.NumOut() == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}
	return &Command{
		Func: fnValue,
	}
}
