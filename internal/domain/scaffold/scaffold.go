// Package scaffold plans the files created for new slices and projects.
// Planning is pure: nothing here touches the file system.
package scaffold

import (
	"fmt"
	"path"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/domain/fsd"
	"github.com/fsdcoach/fsd-coach/internal/domain/naming"
)

// PlanSlice plans a slice named name under basePath, which must already end
// with the slice directory. Segments are assumed to be validated.
func PlanSlice(layer domain.Layer, name, basePath string, segments []domain.Segment) domain.ScaffoldPlan {
	plan := domain.ScaffoldPlan{
		Name:     name,
		Layer:    layer,
		BasePath: basePath,
		Segments: segments,
		Dirs:     []string{"."},
		Files: []domain.PlannedFile{
			{RelPath: "README.md", Content: sliceReadme(layer, name)},
			{RelPath: "index.ts", Content: PublicAPIStub(layer, name)},
		},
	}

	for _, seg := range segments {
		plan.Dirs = append(plan.Dirs, string(seg))
		plan.Files = append(plan.Files, domain.PlannedFile{
			RelPath: path.Join(string(seg), "README.md"),
			Content: segmentReadme(layer, seg),
		})
	}

	return plan
}

// PlanProject plans the seven layer directories of a new project and the
// FSD primer at its root.
func PlanProject(projectRoot string, template domain.Template) domain.ScaffoldPlan {
	plan := domain.ScaffoldPlan{
		Name:     string(template),
		BasePath: projectRoot,
	}

	for _, layer := range domain.Layers {
		dir := path.Join(fsd.SourceDir, string(layer))
		plan.Dirs = append(plan.Dirs, dir)
		plan.Files = append(plan.Files, domain.PlannedFile{RelPath: path.Join(dir, ".gitkeep")})
	}
	plan.Files = append(plan.Files, domain.PlannedFile{RelPath: "README.fsd.md", Content: primer(template)})

	return plan
}

// PublicAPIStub is the index.ts written for a slice that has none.
func PublicAPIStub(layer domain.Layer, name string) string {
	pascal := naming.ToPascal(name)
	switch layer {
	case domain.LayerEntities:
		return fmt.Sprintf(`// Public API of entity %q
// Ideas of what can live here (once you define it):
// - Entity type/interface (%s)
// - Pure entity-related helper functions
// - Simple UI components that display this entity
//
// export interface %s { id: string }
// export { %sBadge } from "./ui/%sBadge";
`, name, pascal, pascal, pascal, pascal)
	case domain.LayerWidgets:
		return fmt.Sprintf(`// Public API of widget %q.
//
// export { %s } from "./ui/%s";
`, name, pascal, pascal)
	}
	return fmt.Sprintf(`// Public API of %s %q.
//
// Export from here only what other layers can use.
// Examples (after implementing):
// export { %sWidget } from "./ui/%sWidget";
// export * from "./model/selector";
`, kind(layer), name, pascal, pascal)
}

func kind(layer domain.Layer) string {
	switch layer {
	case domain.LayerEntities:
		return "entity"
	case domain.LayerWidgets:
		return "widget"
	}
	return "feature"
}

func sliceReadme(layer domain.Layer, name string) string {
	switch layer {
	case domain.LayerEntities:
		return fmt.Sprintf(`# Entity: %s

An *entity* represents a reusable domain concept.

Answer before implementing:

- What does "%s" represent in the business?
- Which properties are mandatory? (e.g. id, name, status)
- Which invariants must ALWAYS hold? (e.g. xp is never negative)
- Does this entity know any feature? If so, invert that dependency.

Document it here as a quick reference for the team.
`, name, name)
	case domain.LayerWidgets:
		return fmt.Sprintf(`# Widget: %s

A *widget* composes features and entities into a self-contained block of a page.

- Which features and entities does it assemble?
- Which pages render it?
- What must stay configurable through props?
`, name)
	}
	return fmt.Sprintf(`# Feature: %s

Before writing code, answer:

- What concrete problem does this feature solve?
- Which user action triggers it?
- Which **entities** does it use? (e.g. User, Campaign, Session)
- What should the **public API** (index.ts) expose?
- Does it depend on another feature? If so, extract the shared part to entities or shared.
- Where is the boundary between UI (presentational) and model (state/logic)?

Fill out this README as documentation for your future self.
`, name)
}

var segmentDocs = map[domain.Layer]map[domain.Segment]string{
	domain.LayerFeatures: {
		domain.SegmentUI: `# ui/

Visual components specific to this feature.

- Keep heavy business rules out of here.
- Use props and data coming from the model.
- If something becomes generic, move it to shared/ui.
`,
		domain.SegmentModel: `# model/

State, hooks and business logic of this feature.

- May call APIs (via api/) and orchestrate data.
- Renders nothing directly.
- Must be testable without the UI.
`,
		domain.SegmentAPI: `# api/

HTTP calls and clients used only by this feature.

- Encapsulate URLs, parameters and data adaptation.
- Do not call directly from UI components.
`,
		domain.SegmentLib: `# lib/

Helpers specific to this feature.

- Reusable code **inside** the feature.
- If it becomes too generic, move it to shared/lib.
`,
	},
	domain.LayerEntities: {
		domain.SegmentModel: `# model/

Entity types, schema, validation and domain logic.

- No UI dependency.
- No direct API calls.
`,
		domain.SegmentUI: `# ui/

Visual components that represent this entity, e.g. an avatar, a status badge or a card.

- Focused on displaying entity data.
- No complex business rules here.
`,
		domain.SegmentLib: `# lib/

Helpers specific to this entity.

If it gets too generic, move it to shared/lib.
`,
	},
}

var genericSegmentDocs = map[domain.Segment]string{
	domain.SegmentUI:     "# ui/\n\nVisual components of this slice.\n",
	domain.SegmentModel:  "# model/\n\nState and business logic of this slice.\n",
	domain.SegmentAPI:    "# api/\n\nRequests and clients used by this slice.\n",
	domain.SegmentLib:    "# lib/\n\nHelpers used only inside this slice.\n",
	domain.SegmentConfig: "# config/\n\nConstants and feature flags of this slice.\n",
	domain.SegmentTypes:  "# types/\n\nType definitions shared by the segments of this slice.\n",
}

func segmentReadme(layer domain.Layer, seg domain.Segment) string {
	if doc, ok := segmentDocs[layer][seg]; ok {
		return doc
	}
	return genericSegmentDocs[seg]
}

func primer(template domain.Template) string {
	return fmt.Sprintf(`# Feature-Sliced Design

This project (template: %s) follows Feature-Sliced Design. Code lives in
src/ under seven layers, from the most specific to the most generic:

1. app       - application setup, providers, global styles
2. processes - multi-page flows (optional)
3. pages     - route-level composition
4. widgets   - self-contained page blocks
5. features  - user interactions that bring business value
6. entities  - business entities
7. shared    - reusable code with no business knowledge

A layer may only import from layers below it. Slices of features, entities
and widgets expose their public API through index.ts; import from there
instead of reaching into ui/, model/ or api/.

Run "fsd-coach audit" to check the rules.
`, template)
}
