package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderAuditResult formats an audit for the terminal. Violations are grouped
// by file in the order they were found; paths are shown relative to root.
func RenderAuditResult(result *domain.AuditResult, root string) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("fsd-coach")
	subtitle := dimStyle.Render("Feature-Sliced Design audit")
	verdict := passStyle.Bold(true).Render("PASSED")
	if !result.Passed {
		verdict = failStyle.Bold(true).Render("FAILED")
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	// ── Summary ──
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Files scanned", 15)), fmt.Sprint(result.TotalFiles))
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Errors", 15)), countStyle(result.Summary.Errors, failStyle))
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Warnings", 15)), countStyle(result.Summary.Warnings, warnStyle))
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Infos", 15)), infoTagStyle.Render(fmt.Sprint(result.Summary.Infos)))

	b.WriteString("\n  " + separatorLine + "\n")

	// ── Violations ──
	if len(result.Violations) == 0 {
		b.WriteString("\n  " + passStyle.Render("No violations found.") + "\n")
	}
	for _, group := range result.Groups() {
		b.WriteString("\n  " + fileStyle.Render(relPath(root, group.File)) + "\n")
		for _, v := range group.Violations {
			renderViolation(&b, v)
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")
	if result.Passed {
		b.WriteString("  " + passStyle.Render("Audit passed! FSD architecture is valid.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render("Audit failed! Please fix the violations above.") + "\n")
	}

	return b.String()
}

func renderViolation(b *strings.Builder, v domain.Violation) {
	line := "?"
	if v.Line > 0 {
		line = fmt.Sprint(v.Line)
	}
	fmt.Fprintf(b, "    %s %s %s\n", severityTag(v.Severity), dimStyle.Render("line "+line), v.Message)
	if v.Suggestion != "" {
		fmt.Fprintf(b, "          %s\n", hintStyle.Render(v.Suggestion))
	}
}

func severityTag(severity domain.Severity) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func countStyle(n int, style lipgloss.Style) string {
	if n == 0 {
		return passStyle.Render("0")
	}
	return style.Render(fmt.Sprint(n))
}

func relPath(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats past audit runs for terminal output.
func RenderHistory(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No audit history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Audit History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		status := passStyle.Render("pass")
		if !e.Passed {
			status = failStyle.Render("fail")
		}

		line := fmt.Sprintf("  %s  %s  %s  %s %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			status,
			errorTagStyle.Render(fmt.Sprintf("%dE", e.Summary.Errors)),
			warnTagStyle.Render(fmt.Sprintf("%dW", e.Summary.Warnings)),
		)

		if i > 0 {
			diff := e.Summary.Errors + e.Summary.Warnings -
				entries[i-1].Summary.Errors - entries[i-1].Summary.Warnings
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
