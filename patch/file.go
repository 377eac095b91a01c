package patch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/svdpatch/ir"
	"github.com/signadot/svdpatch/parse"
)

// File is a patch file read from disk.
type File struct {
	Path     string
	Root     *ir.Node
	Commands *Commands
	// SVD is the description named by the file's _svd key, resolved
	// against the file's directory. Empty when not given.
	SVD string
}

func Open(path string) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return ParseFile(path, d)
}

func ParseFile(path string, d []byte) (*File, error) {
	root, err := parse.Parse(d, parse.ParseFilename(path))
	if err != nil {
		return nil, err
	}
	cmds, err := ParseCommands(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f := &File{
		Path:     path,
		Root:     root,
		Commands: cmds,
	}
	if s, ok := root.GetString("_svd"); ok {
		f.SVD = f.Resolve(s)
	}
	return f, nil
}

func (f *File) Dir() string {
	return filepath.Dir(f.Path)
}

// Resolve interprets p relative to the directory of f.
func (f *File) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(f.Dir(), p)
}

// Loader loads external references relative to f.
func (f *File) Loader() Loader {
	return FileLoader{Dir: f.Dir()}
}
