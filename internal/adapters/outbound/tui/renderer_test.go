package tui_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/tui"
	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleResult(root string) *domain.AuditResult {
	return domain.NewAuditResult(3, []domain.Violation{
		{
			Type:       domain.ViolationCrossLayerImport,
			Severity:   domain.SeverityError,
			Message:    `Layer "entities" cannot import from "features" (violates layer hierarchy)`,
			File:       filepath.Join(root, "src", "entities", "user", "model", "store.ts"),
			Line:       4,
			Suggestion: "Move the code to a lower layer or use dependency inversion",
		},
		{
			Type:     domain.ViolationMissingPublicAPI,
			Severity: domain.SeverityWarning,
			Message:  `Slice "billing" missing public API (index.ts)`,
			File:     filepath.Join(root, "src", "features", "billing"),
		},
	}, false, time.Now())
}

func TestRenderAuditResult_ContainsSummaryAndViolations(t *testing.T) {
	root := filepath.FromSlash("/project")
	out := tui.RenderAuditResult(sampleResult(root), root)

	assert.Contains(t, out, "fsd-coach")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "Files scanned")
	assert.Contains(t, out, "src/entities/user/model/store.ts")
	assert.Contains(t, out, "src/features/billing")
	assert.Contains(t, out, "line 4")
	assert.Contains(t, out, "line ?")
	assert.Contains(t, out, "dependency inversion")
	assert.Contains(t, out, "Audit failed!")
}

func TestRenderAuditResult_Clean(t *testing.T) {
	out := tui.RenderAuditResult(domain.NewAuditResult(10, nil, true, time.Now()), "")
	assert.Contains(t, out, "PASSED")
	assert.Contains(t, out, "No violations found.")
	assert.Contains(t, out, "Audit passed!")
}

func TestRenderAuditResult_GroupsInFirstSeenOrder(t *testing.T) {
	r := domain.NewAuditResult(2, []domain.Violation{
		{Severity: domain.SeverityWarning, Message: "first", File: "/p/b.ts"},
		{Severity: domain.SeverityWarning, Message: "second", File: "/p/a.ts"},
		{Severity: domain.SeverityWarning, Message: "third", File: "/p/b.ts"},
	}, false, time.Now())

	out := tui.RenderAuditResult(r, "/p")
	bIdx := strings.Index(out, "b.ts")
	aIdx := strings.Index(out, "a.ts")
	thirdIdx := strings.Index(out, "third")
	assert.Less(t, bIdx, aIdx)
	assert.Less(t, thirdIdx, aIdx, "violations of one file stay together")
}

func TestRenderHistory(t *testing.T) {
	out := tui.RenderHistory([]domain.AuditEntry{
		{Timestamp: "2026-03-01T10:00:00Z", CommitHash: "abcdef1234567", Summary: domain.AuditSummary{Errors: 3, Warnings: 2}},
		{Timestamp: "2026-03-02T10:00:00Z", Passed: true, Summary: domain.AuditSummary{Warnings: 1}},
	})

	assert.Contains(t, out, "Audit History")
	assert.Contains(t, out, "2026-03-01")
	assert.Contains(t, out, "abcdef1")
	assert.NotContains(t, out, "abcdef12")
	assert.Contains(t, out, "↓4")
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, "fail")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No audit history found.")
}
