package logrus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/balinomad/go-logroll"
)

func newTestWriter(t *testing.T) (*logroll.Writer, string) {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "app.log")
	w, err := logroll.NewWriter(&logroll.Config{Filename: filename})
	if err != nil {
		t.Fatalf("NewWriter() failed: %v", err)
	}
	return w, filename
}

func TestNew(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); !errors.Is(err, logroll.ErrNilWriter) {
		t.Fatalf("New(nil): got %v, want ErrNilWriter", err)
	}

	w, _ := newTestWriter(t)
	if _, err := New(w, WithFormat("xml")); err == nil {
		t.Fatal("invalid format must be rejected")
	}
}

func TestLoggingToFile(t *testing.T) {
	t.Parallel()

	w, filename := newTestWriter(t)
	logger, err := New(w, WithLevel(logrus.DebugLevel), WithFormat("text"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.WithField("component", "writer").Info("hello rotation")
	logger.Trace("suppressed")

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello rotation") {
		t.Errorf("log file should contain the message, got %q", content)
	}
	if strings.Contains(content, "suppressed") {
		t.Errorf("trace message should be filtered out, got %q", content)
	}
}
