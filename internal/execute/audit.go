package execute

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AuditEntry is one recorded command invocation.
type AuditEntry struct {
	Time     time.Time
	RunID    string
	Command  string
	Output   string
	ExitCode int
}

// AuditSink receives a verbatim record of every command the Executor runs.
type AuditSink interface {
	Record(entry AuditEntry)
}

// FileAudit appends audit entries to a plain-text file, one block per
// invocation. Write failures are swallowed after the file is opened; the
// audit trail is diagnostic, not transactional.
type FileAudit struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileAudit opens (or creates) the audit file in append mode.
func NewFileAudit(path string) (*FileAudit, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create audit directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open audit file %s: %w", path, err)
	}
	return &FileAudit{file: f}, nil
}

// Record implements AuditSink.
func (a *FileAudit) Record(entry AuditEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.file, "%s run=%s exit=%d\n$ %s\n",
		entry.Time.Format(time.RFC3339), entry.RunID, entry.ExitCode, entry.Command)
	if entry.Output != "" {
		fmt.Fprintf(a.file, "%s\n", entry.Output)
	}
}

// Close closes the underlying file.
func (a *FileAudit) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.file.Close()
}

// MemoryAudit collects entries in memory. Used by tests and by callers that
// want to render the trail at the end of a run.
type MemoryAudit struct {
	mu      sync.Mutex
	entries []AuditEntry
}

// Record implements AuditSink.
func (a *MemoryAudit) Record(entry AuditEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

// Entries returns a copy of the recorded entries in order.
func (a *MemoryAudit) Entries() []AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]AuditEntry, len(a.entries))
	copy(out, a.entries)
	return out
}
