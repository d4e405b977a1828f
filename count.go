package logroll

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// CountLabeller archives replaced files under numeric suffixes: base.1 is
// the newest archive, base.2 the next, and so on. The active file keeps the
// base name.
type CountLabeller struct {
	fsHooks
}

var _ Labeller = (*CountLabeller)(nil)

// NewCountLabeller creates a labeller using numbered archives.
func NewCountLabeller() *CountLabeller { return &CountLabeller{} }

// LogPath implements the Labeller interface.
func (l *CountLabeller) LogPath(base string) string { return base }

// Roll implements the Labeller interface. Existing archives are shifted out
// of the way in reverse order, the replaced file becomes base.1, and
// archives beyond maxBackups are removed.
func (l *CountLabeller) Roll(path string, maxBackups int) (string, error) {
	indexes, err := numberedArchives(path)
	if err != nil {
		return "", err
	}

	for i := len(indexes) - 1; i >= 0; i-- {
		oldpath := fmt.Sprintf("%s.%d", path, indexes[i])
		newpath := fmt.Sprintf("%s.%d", path, indexes[i]+1)
		if err := l.rename(oldpath, newpath); err != nil {
			return "", renameError(oldpath, newpath, err)
		}
	}

	archive := path + ".1"
	if err := l.rename(path, archive); err != nil {
		return "", renameError(path, archive, err)
	}

	if maxBackups > 0 {
		if err := l.prune(path, maxBackups); err != nil {
			return "", err
		}
	}
	return path, nil
}

// prune removes the highest-numbered (oldest) archives until at most
// maxBackups remain.
func (l *CountLabeller) prune(path string, maxBackups int) error {
	indexes, err := numberedArchives(path)
	if err != nil {
		return err
	}
	if len(indexes) <= maxBackups {
		return nil
	}
	for _, idx := range indexes[maxBackups:] {
		name := fmt.Sprintf("%s.%d", path, idx)
		if err := l.remove(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}

// numberedArchives returns the indexes of existing base.N archives, sorted
// ascending so that the newest archive comes first. A base path without a
// directory component resolves against the working directory.
func numberedArchives(path string) ([]int, error) {
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read log directory: %w", err)
	}

	prefix := filepath.Base(path) + "."
	var indexes []int
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		idx, err := strconv.Atoi(e.Name()[len(prefix):])
		if err != nil || idx < 1 {
			continue
		}
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	return indexes, nil
}
