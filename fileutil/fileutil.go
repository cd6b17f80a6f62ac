// Package fileutil contains the file system helpers used by the logger
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// AbsDir returns the absolute path of the directory containing path
func AbsDir(path string) (string, error) {
	abs, err := AbsPath(path)
	if err != nil {
		return "", err
	}
	return filepath.Dir(abs), nil
}

// AbsPath returns an absolute representation of path. Relative paths are
// resolved against the working directory.
func AbsPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "cannot resolve path %q", path)
	}
	return abs, nil
}

// Join joins any number of path elements into a single path
func Join(elem ...string) string {
	return filepath.Join(elem...)
}

// OpenForAppend opens path for appending, creating the file and any missing
// parent directory.
func OpenForAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, errors.Wrap(err, "cannot create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open log file")
	}
	return f, nil
}

// WriteRawLine appends text to path in a single open/write/close cycle.
//
// Unlike OpenForAppend it does not create missing directories.
func WriteRawLine(path, text string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return errors.Wrap(err, "cannot open file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "cannot close file")
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return errors.Wrap(err, "cannot write line")
	}
	return nil
}
