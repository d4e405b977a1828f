package logroll

import "os"

// Labeller owns the naming of the active log file and the archiving of
// replaced ones. The writer never assumes the configured base path is
// literal; it always asks the labeller.
type Labeller interface {
	// LogPath returns the path the active file should occupy for the
	// configured base path.
	LogPath(base string) string

	// Roll archives the file at path under a name distinct from every
	// existing archive, then prunes the oldest archives so that at most
	// maxBackups remain. A maxBackups of zero or below disables pruning
	// and lets archives accumulate without bound. Roll returns the path
	// for the next active file.
	Roll(path string, maxBackups int) (string, error)
}

// fsHooks are the filesystem calls a labeller mutates state through.
// The zero value uses the os package; tests substitute failing calls.
type fsHooks struct {
	renameFn func(oldpath, newpath string) error
	removeFn func(path string) error
}

func (h *fsHooks) rename(oldpath, newpath string) error {
	if h.renameFn != nil {
		return h.renameFn(oldpath, newpath)
	}
	return os.Rename(oldpath, newpath)
}

func (h *fsHooks) remove(path string) error {
	if h.removeFn != nil {
		return h.removeFn(path)
	}
	return os.Remove(path)
}
