package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/toylangs/logs"
)

type Module struct {
	dscope.Module
}

//go:embed schema.cue
var Schema string

var fileNames = []string{
	"migraine.cue",
	".migraine.cue",
}

// Loader reads config files from the working directory, the user config directory and /etc, in
// that order. Earlier files take precedence.
func (Module) Loader(
	logger logs.Logger,
) Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "migraine"))
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config files",
			"paths", paths,
		)
	}

	return NewLoader(paths, Schema)
}

// Globals are variables bound in the root scope before any program runs.
type Globals map[string]float64

func (Module) Globals(
	loader Loader,
) Globals {
	return First[Globals](loader, "globals")
}

// Prelude is source evaluated before user programs, in order.
type Prelude []string

func (Module) Prelude(
	loader Loader,
) (ret Prelude) {
	for prelude := range All[[]string](loader, "prelude") {
		ret = append(ret, prelude...)
	}
	return
}
