package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsdcoach/fsd-coach/internal/domain"
)

var sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

// RenderStructure lists the slices of the requested layers. No layers means all.
func RenderStructure(s domain.ProjectStructure, layers ...domain.Layer) string {
	if len(layers) == 0 {
		layers = domain.SliceLayers
	}

	var b strings.Builder
	for _, layer := range layers {
		var names []string
		switch layer {
		case domain.LayerFeatures:
			names = s.Features
		case domain.LayerEntities:
			names = s.Entities
		case domain.LayerWidgets:
			names = s.Widgets
		}

		title := string(layer)
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n",
			sectionHeaderStyle.Render(strings.ToUpper(title[:1])+title[1:]),
			dimStyle.Render(fmt.Sprintf("(%d)", len(names))),
		)
		if len(names) == 0 {
			b.WriteString("    " + dimStyle.Render("(none)") + "\n")
			continue
		}
		for _, name := range names {
			b.WriteString("    " + faintStyle.Render("-") + " " + name + "\n")
		}
	}

	b.WriteString("\n  " + dimStyle.Render(fmt.Sprintf("Total: %d slices", s.Total())) + "\n")
	return b.String()
}

// RenderScaffold reports the files created and skipped by a scaffold command.
func RenderScaffold(r domain.ScaffoldResult) string {
	var b strings.Builder

	verb := "Created"
	if r.DryRun {
		verb = "Would create"
	}

	kind := "Project"
	if r.Layer != "" {
		kind = strings.TrimSuffix(string(r.Layer), "s")
		if r.Layer == domain.LayerEntities {
			kind = "entity"
		}
	}

	fmt.Fprintf(&b, "\n  %s %s %s\n", passStyle.Render("✓"), titleStyle.Render(kind), r.Name)
	b.WriteString("    " + dimStyle.Render(r.BasePath) + "\n")

	if len(r.Created) > 0 {
		b.WriteString("\n  " + sectionHeaderStyle.Render(verb) + "\n")
		for _, p := range r.Created {
			b.WriteString("    " + passStyle.Render("+") + " " + p + "\n")
		}
	}
	if len(r.Skipped) > 0 {
		b.WriteString("\n  " + sectionHeaderStyle.Render("Skipped (already exist)") + "\n")
		for _, p := range r.Skipped {
			b.WriteString("    " + warnStyle.Render("-") + " " + p + "\n")
		}
	}

	if r.Layer != "" {
		b.WriteString("\n  " + hintStyle.Render("Open the README and answer its questions before writing code.") + "\n")
	} else {
		b.WriteString("\n  " + hintStyle.Render("Read README.fsd.md, then add your first feature with fsd-coach add:feature.") + "\n")
	}
	return b.String()
}

// RenderFixPlan reports the fixes applied after an audit.
func RenderFixPlan(p *domain.FixPlan, root string) string {
	var b strings.Builder

	title := "Applied fixes"
	if p.DryRun {
		title = "Planned fixes (dry run)"
	}
	fmt.Fprintf(&b, "\n  %s %s\n", sectionHeaderStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", len(p.Applied))))

	if len(p.Applied) == 0 {
		b.WriteString("    " + dimStyle.Render("Nothing to fix automatically.") + "\n")
		return b.String()
	}

	for _, f := range p.Applied {
		fmt.Fprintf(&b, "    %s %s  %s\n", passStyle.Render("+"), relPath(root, f.Path), faintStyle.Render(f.Description))
	}

	if !p.DryRun {
		fmt.Fprintf(&b, "\n  %s %d errors, %d warnings → %d errors, %d warnings\n",
			dimStyle.Render("Result:"),
			p.Before.Errors, p.Before.Warnings, p.After.Errors, p.After.Warnings)
	}
	return b.String()
}
