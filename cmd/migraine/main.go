package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/toylangs/cmds"
	"github.com/reusee/toylangs/debugs"
	"github.com/reusee/toylangs/logs"
	"github.com/reusee/toylangs/migraine"
)

type Module struct {
	dscope.Module
	Migraine migraine.Module
	Debugs   debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

type job struct {
	name string
	src  string
	repl bool
}

var (
	jobs    []job
	tapFlag = cmds.Switch("-tap")
)

func init() {
	cmds.Define("run", cmds.Func(func(path string) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		jobs = append(jobs, job{
			name: path,
			src:  string(content),
		})
		return nil
	}).Desc("run a source file"))

	cmds.Define("eval", cmds.Func(func(src string) {
		jobs = append(jobs, job{
			name: "<eval>",
			src:  src,
		})
	}).Desc("evaluate source text").Alias("-e"))

	cmds.Define("repl", cmds.Func(func() {
		jobs = append(jobs, job{
			repl: true,
		})
	}).Desc("start an interactive session"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if len(jobs) == 0 {
		jobs = append(jobs, job{
			repl: true,
		})
	}

	ctx := context.Background()
	dscope.New(
		new(Module),
	).Call(func(
		newInterpreter migraine.NewInterpreter,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		interp, err := newInterpreter(ctx)
		if err != nil {
			fatal(wrap(err))
		}

		for _, job := range jobs {
			if job.repl {
				runREPL(ctx, interp)
				continue
			}
			result, err := interp.Run(ctx, migraine.NewSource(job.name, job.src))
			if err != nil {
				fatal(wrap(err))
			}
			logger.DebugContext(ctx, "job done", "name", job.name)
			fmt.Println(formatNumber(result))
		}

		if *tapFlag {
			tap(ctx, "after run", interp)
		}
	})
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fatal(err error) {
	errorColor.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
