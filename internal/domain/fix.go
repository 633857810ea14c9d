package domain

// FixPlan reports the fixes applied for an audit and the audit outcome
// before and after them.
type FixPlan struct {
	Applied []AppliedFix `json:"applied"`
	DryRun  bool         `json:"dry_run"`
	Before  AuditSummary `json:"before"`
	After   AuditSummary `json:"after"`
}

type AppliedFix struct {
	Type        ViolationType `json:"type"`
	Path        string        `json:"path"`
	Description string        `json:"description"`
}
