package domain

// AuditEntry is the persisted summary of one audit run.
type AuditEntry struct {
	ID         string       `json:"id"`
	Timestamp  string       `json:"timestamp"`
	CommitHash string       `json:"commit_hash,omitempty"`
	Passed     bool         `json:"passed"`
	Strict     bool         `json:"strict"`
	TotalFiles int          `json:"total_files"`
	Summary    AuditSummary `json:"summary"`
}
