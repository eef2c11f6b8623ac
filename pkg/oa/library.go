package oa

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/verilog2oa/pkg/verilog"
)

const (
	// NetlistFile holds the module source inside a cell view
	NetlistFile = "verilog.v"
	// TagFile names the master tag inside a cell view
	TagFile = "master.tag"
	// MasterTag is the fixed content of every TagFile. The first line keeps
	// its trailing space and there is no final newline.
	MasterTag = "-- Master.tag File, Rev:1.0 \n" + NetlistFile
)

// View names used by the two library flavours
const (
	ViewNetlist    = "netlist"
	ViewFunctional = "functional"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// ErrEmptyCellName is returned when a module has no usable name.
var ErrEmptyCellName = errors.New("oa: empty cell name")

// Library describes an OpenAccess-style library on disk: one directory per
// cell under Root, each holding a single View directory.
type Library struct {
	Root string
	View string
}

// NewLibrary returns a library rooted at root using the given view name.
func NewLibrary(root, view string) *Library {
	return &Library{Root: root, View: view}
}

// CellViewDir returns <Root>/<cell>/<View>.
func (l *Library) CellViewDir(cell string) string {
	return filepath.Join(l.Root, cell, l.View)
}

// ReplaceDir removes path recursively if it exists and creates it again,
// along with any missing parents. Anything previously stored under path is
// lost; there is no merge and no backup.
func ReplaceDir(path string) error {
	// os errors already carry the path
	if _, err := os.Lstat(path); err == nil {
		if err := os.RemoveAll(path); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return os.MkdirAll(path, dirPerm)
}

// WriteCellView replaces the cell view directory for m and writes the
// module source and the master tag into it. It returns the directory.
func (l *Library) WriteCellView(m verilog.Module) (string, error) {
	if m.Name == "" {
		return "", ErrEmptyCellName
	}

	dir := l.CellViewDir(m.Name)
	if err := ReplaceDir(dir); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(dir, NetlistFile), []byte(m.Source), filePerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, TagFile), []byte(MasterTag), filePerm); err != nil {
		return "", err
	}

	return dir, nil
}
