package splitter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrInputNotFound is returned when the input argument does not name an
// existing regular file.
var ErrInputNotFound = errors.New("file not found")

// Resolve turns the command line argument into the path of the netlist.
// With glob set the argument is expanded as a shell pattern and the first
// match in lexical order is used.
func Resolve(arg string, glob bool) (string, error) {
	path := arg
	if glob {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return "", fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return "", fmt.Errorf("%w: '%s'", ErrInputNotFound, arg)
		}
		path = matches[0]
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: '%s'", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: '%s' is not a regular file", ErrInputNotFound, path)
	}

	return path, nil
}
