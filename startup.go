package logroll

// StartupPolicy forces a rollover on every writer start-up: an existing file
// is always archived, and writing begins in a fresh one. The current file is
// never rotated while the process runs.
type StartupPolicy struct{}

var _ Policy = (*StartupPolicy)(nil)

// NewStartupPolicy creates a policy that rotates only at start-up.
func NewStartupPolicy() *StartupPolicy { return &StartupPolicy{} }

// ContinueExistingFile implements the Policy interface. It always refuses.
func (*StartupPolicy) ContinueExistingFile(string) bool { return false }

// ContinueCurrentFile implements the Policy interface. It always agrees.
func (*StartupPolicy) ContinueCurrentFile([]byte) bool { return true }

// Reset implements the Policy interface. It is a no-op.
func (*StartupPolicy) Reset() {}
