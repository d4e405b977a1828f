package logroll

// Policy decides whether log output may keep flowing into the active file.
//
// ContinueExistingFile is a read-only probe, called once at writer start-up
// when a file already exists at path. It inspects filesystem metadata to
// judge whether the file's content belongs to the current writing period.
// A path that cannot be inspected is treated as "do not continue".
//
// ContinueCurrentFile is called on every write attempt with the pending
// payload, and once with a nil payload right after a file has been opened to
// align in-memory state with it. A false return tells the writer to rotate
// before appending.
//
// Reset re-initializes internal thresholds as if a brand-new file had just
// been opened at the current moment. The writer calls it immediately after
// every rotation.
type Policy interface {
	ContinueExistingFile(path string) bool
	ContinueCurrentFile(payload []byte) bool
	Reset()
}

// Policies combines multiple policies into one. Writing may continue only
// while every component policy agrees; a single refusal forces a rollover.
type Policies []Policy

// Ensure Policies can stand in wherever a single Policy is expected.
var _ Policy = (Policies)(nil)

// ContinueExistingFile implements the Policy interface.
func (ps Policies) ContinueExistingFile(path string) bool {
	for _, p := range ps {
		if !p.ContinueExistingFile(path) {
			return false
		}
	}
	return true
}

// ContinueCurrentFile implements the Policy interface.
func (ps Policies) ContinueCurrentFile(payload []byte) bool {
	ok := true
	for _, p := range ps {
		// Every policy sees every payload so that stateful policies keep
		// accurate bookkeeping even when another policy refuses first.
		if !p.ContinueCurrentFile(payload) {
			ok = false
		}
	}
	return ok
}

// Reset implements the Policy interface.
func (ps Policies) Reset() {
	for _, p := range ps {
		p.Reset()
	}
}
