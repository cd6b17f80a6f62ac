package chromologger

import (
	"github.com/deixis/chromologger/fileutil"
)

// DefaultFileName is the log file name placed beside the caller's source
// file
const DefaultFileName = "log.log"

// resolvePath returns the absolute log file path for name.
//
// The default name lands in callerDir, the directory of the source file that
// created the Logger. Any other name is a path, resolved against the working
// directory when relative.
func resolvePath(name, callerDir string) (string, error) {
	if name == "" || name == DefaultFileName {
		return fileutil.AbsPath(fileutil.Join(callerDir, DefaultFileName))
	}
	return fileutil.AbsPath(name)
}

// callerDir returns the absolute directory of a source file reported by
// runtime.Caller. Builds with -trimpath report relative paths, which are
// resolved against the working directory.
func callerDir(file string) string {
	if file == "" {
		return "."
	}
	dir, err := fileutil.AbsDir(file)
	if err != nil {
		return "."
	}
	return dir
}
