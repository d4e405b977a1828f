package lumberjack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/balinomad/go-logroll"
)

func TestNew(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{name: "nil_config", config: nil, wantErr: logroll.ErrEmptyFilename},
		{name: "empty_filename", config: &Config{}, wantErr: logroll.ErrEmptyFilename},
		{name: "negative_max_size", config: &Config{Filename: "app.log", MaxSize: -1}, wantErr: logroll.ErrInvalidMaxSize},
		{name: "valid_minimal", config: &Config{Filename: "app.log"}},
		{name: "valid_full", config: &Config{Filename: "app.log", MaxSize: 10, MaxAge: 7, MaxBackups: 3, Compress: true, LocalTime: true}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			logger, err := New(tc.config)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if logger.Filename != tc.config.Filename {
				t.Errorf("Filename = %q, want %q", logger.Filename, tc.config.Filename)
			}
		})
	}
}

func TestNew_RejectsNegativeRetention(t *testing.T) {
	t.Parallel()

	if _, err := New(&Config{Filename: "app.log", MaxAge: -1}); err == nil {
		t.Error("negative max age must be rejected")
	}
	if _, err := New(&Config{Filename: "app.log", MaxBackups: -1}); err == nil {
		t.Error("negative max backups must be rejected")
	}
}

func TestWriteCreatesFile(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "app.log")
	logger, err := New(&Config{Filename: filename, MaxSize: 1})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := logger.Write([]byte("hello rotation\n")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if got, want := string(data), "hello rotation\n"; got != want {
		t.Errorf("log file content = %q, want %q", got, want)
	}
}
