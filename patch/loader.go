package patch

import (
	"path/filepath"

	"github.com/signadot/svdpatch/debug"
	"github.com/signadot/svdpatch/svd"
)

// Loader loads the description files named by external source
// references.
type Loader interface {
	Load(path string) (*svd.Device, error)
}

type LoaderFunc func(path string) (*svd.Device, error)

func (f LoaderFunc) Load(path string) (*svd.Device, error) {
	return f(path)
}

// FileLoader reads descriptions from disk, resolving relative paths
// against Dir.
type FileLoader struct {
	Dir string
}

func (l FileLoader) Load(path string) (*svd.Device, error) {
	if !filepath.IsAbs(path) && l.Dir != "" {
		path = filepath.Join(l.Dir, path)
	}
	if debug.Load() {
		debug.Logf("loading device %s\n", path)
	}
	return svd.ReadFile(path)
}
