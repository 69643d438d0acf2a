package migraine

import "context"

// Run evaluates src in a fresh interpreter.
func Run(src string) (float64, error) {
	return New(nil).Eval(context.Background(), src)
}
