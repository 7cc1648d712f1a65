package simulation

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cdt2d/adjacency"
)

// FileObservable is the reference Observable implementation: one
// output file per (name, fileID) pair, truncated once by Clear and
// then appended one line per Measure call.
//
// The original source's Observable::clear() and Observable::write()
// disagree on the target filename — clear() truncates
// "<dir>/<name><ext>" while write() appends to
// "<dir>/<name>-<fileID><ext>" — so a run's first clear never actually
// touches the file its measurements accumulate in. Per the resolved
// contract, FileObservable uses one filename for both, so clear
// genuinely starts the file fresh for the fileID it is about to
// append to.
type FileObservable struct {
	name    string
	path    string
	compute func(snap *adjacency.Snapshot) (string, error)
}

// NewFileObservable returns a FileObservable that writes to
// <dir>/<name>-<fileID>.dat, computing each line with compute.
func NewFileObservable(name, dir, fileID string, compute func(*adjacency.Snapshot) (string, error)) *FileObservable {
	return &FileObservable{
		name:    name,
		path:    filepath.Join(dir, name+"-"+fileID+".dat"),
		compute: compute,
	}
}

// Name returns the observable's name.
func (f *FileObservable) Name() string { return f.name }

// Clear truncates (creating if absent) the observable's output file.
func (f *FileObservable) Clear() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrapf(err, "simulation: creating output directory for %s", f.name)
	}
	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "simulation: truncating %s", f.path)
	}
	return errors.Wrap(file.Close(), "simulation: closing truncated file")
}

// Measure computes one line from snap and appends it to the output
// file.
func (f *FileObservable) Measure(snap *adjacency.Snapshot) error {
	line, err := f.compute(snap)
	if err != nil {
		return errors.Wrapf(err, "simulation: computing %s", f.name)
	}

	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "simulation: opening %s", f.path)
	}
	defer file.Close()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return errors.Wrapf(err, "simulation: writing %s", f.path)
	}
	return nil
}
