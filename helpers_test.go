package logroll

import (
	"os"
	"testing"
	"time"
)

// fakeClock is a manually advanced Clock for deterministic tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) set(t time.Time) { c.now = t }

// at builds a local time with second and sub-second fields zeroed.
func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

// mustWriteFile creates a file with the given content.
func mustWriteFile(t *testing.T, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", filename, err)
	}
}

// mustChtimes sets a file's modification time.
func mustChtimes(t *testing.T, filename string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(filename, mtime, mtime); err != nil {
		t.Fatalf("failed to set mtime of %s: %v", filename, err)
	}
}

// mustChdir changes the working directory and restores it when the test ends.
func mustChdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change working directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

// assertFileContent is a test helper to check if a file's content matches the expected string.
func assertFileContent(t *testing.T, filename, expected string) {
	t.Helper()
	content, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", filename, err)
	}
	if expected != string(content) {
		t.Errorf("file content mismatch for %s:\ngot:  %q\nwant: %q", filename, string(content), expected)
	}
}

// assertFileExists is a test helper to check that a file exists.
func assertFileExists(t *testing.T, filename string) {
	t.Helper()
	if _, err := os.Stat(filename); err != nil {
		t.Errorf("file should exist but does not: %s (%v)", filename, err)
	}
}

// assertFileNotExists is a test helper to check that a file does not exist.
func assertFileNotExists(t *testing.T, filename string) {
	t.Helper()
	_, err := os.Stat(filename)
	if !os.IsNotExist(err) {
		if err == nil {
			t.Errorf("file should not exist but it does: %s", filename)
		} else {
			t.Errorf("expected a file-not-exist error for %s, but got: %v", filename, err)
		}
	}
}
