package pspsconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/psps/configs"
	"github.com/reusee/psps/logs"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"psps.cue",
	".psps.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	loader := configs.NewLoader(paths, Schema)
	if len(loader.Paths()) > 0 {
		logger.Info("config file",
			"paths", loader.Paths(),
		)
	}
	return loader
}
