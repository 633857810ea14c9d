package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// MaxEntries caps the stored history; older runs are dropped first.
const MaxEntries = 200

var historyFile = filepath.Join(".fsd-coach", "history", "audits.json")

var _ domain.AuditHistory = (*FileHistory)(nil)

// FileHistory keeps the audit runs of a project in a JSON array under
// .fsd-coach/history, oldest first.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

// Save appends entry and trims the log to MaxEntries. The file is replaced
// atomically, so an interrupted run leaves the previous history intact.
func (h *FileHistory) Save(projectPath string, entry domain.AuditEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if n := len(entries) - MaxEntries; n > 0 {
		entries = entries[n:]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding audit history: %w", err)
	}
	return writeAtomic(filepath.Join(projectPath, historyFile), data)
}

// Load returns the recorded runs. A project that was never audited has none.
func (h *FileHistory) Load(projectPath string) ([]domain.AuditEntry, error) {
	path := filepath.Join(projectPath, historyFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading audit history: %w", err)
	}

	var entries []domain.AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding audit history %s: %w", path, err)
	}
	return entries, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".audits-*.json")
	if err != nil {
		return fmt.Errorf("writing audit history: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing audit history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing audit history: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("writing audit history: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
