package logroll

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// stampLayout is the time format used in archive names. Colons are avoided
// so the names are valid on every filesystem.
const stampLayout = "2006-01-02T15-04-05"

// stampPattern matches the archive suffix produced by a TimestampLabeller,
// including the optional collision serial.
var stampPattern = regexp.MustCompile(`\.(\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2})(?:-(\d+))?$`)

// TimestampLabeller archives replaced files under the instant they were
// rotated, as base.YYYY-MM-DDTHH-MM-SS. When two rollovers land within the
// same second, a numeric serial is appended to keep the names distinct. The
// active file keeps the base name.
type TimestampLabeller struct {
	clock Clock
	fsHooks
}

var _ Labeller = (*TimestampLabeller)(nil)

// NewTimestampLabeller creates a labeller using timestamped archives.
func NewTimestampLabeller(opts ...Option) *TimestampLabeller {
	return &TimestampLabeller{clock: newOptions(opts).clock}
}

// LogPath implements the Labeller interface.
func (l *TimestampLabeller) LogPath(base string) string { return base }

// Roll implements the Labeller interface.
func (l *TimestampLabeller) Roll(path string, maxBackups int) (string, error) {
	stamped := path + "." + l.clock.Now().Format(stampLayout)

	archive := stamped
	for serial := 1; ; serial++ {
		_, err := os.Lstat(archive)
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to probe archive name %s: %w", archive, err)
		}
		archive = fmt.Sprintf("%s-%d", stamped, serial)
	}

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

// stampedArchive is one existing archive file, ordered by rotation recency.
type stampedArchive struct {
	path   string
	stamp  time.Time
	serial int
}

// prune removes the oldest archives until at most maxBackups remain. The
// just-created archive carries the newest stamp and sorts last, so it is
// never deleted.
func (l *TimestampLabeller) prune(path string, maxBackups int) error {
	archives, err := stampedArchives(path)
	if err != nil {
		return err
	}
	if len(archives) <= maxBackups {
		return nil
	}

	sort.Slice(archives, func(i, j int) bool {
		if !archives[i].stamp.Equal(archives[j].stamp) {
			return archives[i].stamp.Before(archives[j].stamp)
		}
		return archives[i].serial < archives[j].serial
	})

	for _, a := range archives[:len(archives)-maxBackups] {
		if err := l.remove(a.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", a.path, err)
		}
	}
	return nil
}

// stampedArchives enumerates existing archives for the given base path.
// Files whose suffix does not parse as a rotation stamp are ignored.
func stampedArchives(path string) ([]stampedArchive, error) {
	candidates, err := filepath.Glob(path + ".*")
	if err != nil {
		return nil, err
	}

	archives := make([]stampedArchive, 0, len(candidates))
	for _, name := range candidates {
		match := stampPattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		stamp, err := time.ParseInLocation(stampLayout, match[1], time.Local)
		if err != nil {
			continue
		}
		serial := 0
		if match[2] != "" {
			if serial, err = strconv.Atoi(match[2]); err != nil {
				continue
			}
		}
		archives = append(archives, stampedArchive{path: name, stamp: stamp, serial: serial})
	}
	return archives, nil
}
